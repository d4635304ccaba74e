// Package server holds the HTTP server configuration and constants.
//
// The Config struct defines the HTTP port, the API key and the statistics
// provider. It is embedded by core/config and read by the start command.
package server
