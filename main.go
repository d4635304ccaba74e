package main

import "file-storage/cmd"

//go:generate swag init -g cmd/start.go -o docs/swagger

func main() {
	cmd.Execute()
}
