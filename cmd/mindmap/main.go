package main

import (
	_ "github.com/joho/godotenv/autoload"

	"mindmap/cmd/mindmap/cmd"
)

func main() {
	cmd.Execute()
}
