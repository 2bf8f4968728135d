package main

import (
	"os"

	"github.com/pygen-dev/pygen/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
