package main

import (
	"github.com/joho/godotenv"

	"github.com/diogo/textagent/internal/commands"
)

func main() {
	// Pick up PROXY_API_KEY from a local .env if present; the real
	// environment wins over the file.
	_ = godotenv.Load()

	commands.Execute()
}
