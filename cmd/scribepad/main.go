package main

import (
	"fmt"
	"os"

	"scribepad/cmd/scribepad/cmd"
	"scribepad/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
		// Environment variables may still be set system-wide.
	}

	cmd.Execute()
}
