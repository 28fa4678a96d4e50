package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// DemoCommandHandler runs every algorithm once with the configured keys.
type DemoCommandHandler struct {
	rand io.Reader
}

// NewDemoCommandHandler creates a handler. A nil reader selects crypto/rand.
func NewDemoCommandHandler(rand io.Reader) *DemoCommandHandler {
	return &DemoCommandHandler{rand: defaultRandReader(rand)}
}

// DemoCmd prints the original, encrypted and decrypted value of each algorithm.
func (commandHandler *DemoCommandHandler) DemoCmd(cmd *cobra.Command, _ []string) error {
	algorithms, err := newCryptoAlgorithms(cmd, commandHandler.rand)
	if err != nil {
		return err
	}

	text, err := cmd.Flags().GetString("text")
	if err != nil {
		return fmt.Errorf("invalid text flag: %w", err)
	}
	rawMessage, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}
	message, err := parseMessage(rawMessage)
	if err != nil {
		return err
	}

	report, err := algorithms.RunDemo(text, message)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), report.String())
	return err
}

// InitDemoCommands registers the demo command.
func InitDemoCommands(rootCmd *cobra.Command) error {
	return initDemoCommands(rootCmd, NewDemoCommandHandler(nil))
}

func initDemoCommands(rootCmd *cobra.Command, handler *DemoCommandHandler) error {
	var demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Run every cipher once and print the round trips",
		RunE:  handler.DemoCmd,
	}
	demoCmd.Flags().StringP("text", "", "HELLO", "Text for the classical ciphers")
	demoCmd.Flags().StringP("message", "", "123", "Integer message for RSA and ElGamal")
	rootCmd.AddCommand(demoCmd)
	return nil
}
