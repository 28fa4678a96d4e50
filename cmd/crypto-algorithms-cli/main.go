// Package main is the entry point for the crypto-algorithms-cli application.
// It registers the classical cipher, RSA, ElGamal and demonstration commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/Shrihari123456/cryptography/cmd/crypto-algorithms-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "crypto-algorithms-cli",
		Short: "Classical and public-key cipher toolkit",
		Long: `crypto-algorithms-cli runs the affine and Vigenere substitution ciphers
and generates RSA and ElGamal key pairs to encrypt and decrypt integer messages.

Settings are read from the YAML file given with --config. Without it the
demonstration defaults apply: RSA with 512-bit primes, ElGamal over a 64-bit prime,
affine key (5, 8) and Vigenere key KEY.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(commands.ConfigFlag, "", "Path to a YAML settings file")

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitClassicalCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize classical cipher commands: %w", err)
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := commands.InitElGamalCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize ElGamal commands: %w", err)
	}

	if err := commands.InitDemoCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize demo commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
