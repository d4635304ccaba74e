// Package config provides configuration management for the file storage service.
//
// It uses Viper to read environment variables, optionally seeded from a .env file.
// Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, statistics provider (SERVER_*)
//   - Storage: bucket, key prefix, endpoint, credentials and region (STORAGE_*)
//   - Log: level and format (LOG_*)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
