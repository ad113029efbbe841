// Package main is the entry point for the docseal-cli application.
// It initializes the root command, registers the document signing sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/docseal/docseal/cmd/docseal-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "docseal-cli",
		Short: "Document signing CLI tool",
		Long: `docseal-cli is a command-line tool for RSA document signing.
Supports RSA key pair generation, signing files with SHA-256 and PKCS#1 v1.5,
and verifying Base64 encoded signatures.`,
	}

	// Initialize all command groups BEFORE executing
	if err := commands.InitSignCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
