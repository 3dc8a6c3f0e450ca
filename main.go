package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/rwalden/clipwatch/internal/cli"
)

func main() {
	// Parse command-line arguments
	var args cli.Args
	parser := arg.MustParse(&args)

	// Create CLI instance (loads config, opens the configured store)
	cliHandler, err := cli.NewWithArgs(&args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer cliHandler.Close()

	// Execute the command (no subcommand launches the TUI browser)
	if err := cliHandler.Execute(&args); err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Println()
		parser.WriteUsage(os.Stderr)
		os.Exit(1)
	}
}
