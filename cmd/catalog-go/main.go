package main

import (
	"errors"
	"fmt"
	"os"

	"catalog-go/internal/cmd"
	"catalog-go/internal/logging"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	err := rootCmd.Execute()
	_ = logging.Sync()

	if err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
