package commands

import (
	"fmt"
	"io"

	"github.com/Shrihari123456/cryptography/internal/pkg/validators"

	"github.com/spf13/cobra"
)

// ElGamalCommandHandler encapsulates logic for the ElGamal round-trip command.
type ElGamalCommandHandler struct {
	rand io.Reader
}

// NewElGamalCommandHandler creates a handler. A nil reader selects crypto/rand.
func NewElGamalCommandHandler(rand io.Reader) *ElGamalCommandHandler {
	return &ElGamalCommandHandler{rand: defaultRandReader(rand)}
}

// ElGamalCmd generates a key pair, encrypts --message and decrypts the result.
func (commandHandler *ElGamalCommandHandler) ElGamalCmd(cmd *cobra.Command, _ []string) error {
	algorithms, err := newCryptoAlgorithms(cmd, commandHandler.rand)
	if err != nil {
		return err
	}

	bitLength, err := bitLengthFlag(cmd, validators.AlgorithmElGamal, algorithms.Settings().ElGamal.BitLength)
	if err != nil {
		return err
	}
	rawMessage, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}
	message, err := parseMessage(rawMessage)
	if err != nil {
		return err
	}

	engine, err := algorithms.NewElGamal(bitLength)
	if err != nil {
		return err
	}

	ciphertext, err := engine.Encrypt(message)
	if err != nil {
		return err
	}
	decrypted, err := engine.Decrypt(ciphertext)
	if err != nil {
		return err
	}

	publicKey := engine.PublicKey()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Key ID: %s\n", engine.ID())
	fmt.Fprintf(out, "Public key: (p=%s, g=%s, y=%s)\n", publicKey.P, publicKey.G, publicKey.Y)
	fmt.Fprintf(out, "Original: %s\n", message)
	fmt.Fprintf(out, "Encrypted: (c1=%s, c2=%s)\n", ciphertext.C1, ciphertext.C2)
	_, err = fmt.Fprintf(out, "Decrypted: %s\n", decrypted)
	return err
}

// InitElGamalCommands registers the ElGamal command.
func InitElGamalCommands(rootCmd *cobra.Command) error {
	return initElGamalCommands(rootCmd, NewElGamalCommandHandler(nil))
}

func initElGamalCommands(rootCmd *cobra.Command, handler *ElGamalCommandHandler) error {
	var elGamalCmd = &cobra.Command{
		Use:   "elgamal",
		Short: "Generate an ElGamal key pair and round-trip an integer message",
		RunE:  handler.ElGamalCmd,
	}
	elGamalCmd.Flags().IntP("bits", "", 0, "Bit length of the prime modulus (defaults to settings, 16 to 4096)")
	elGamalCmd.Flags().StringP("message", "", "123", "Non-negative decimal message smaller than the prime")
	rootCmd.AddCommand(elGamalCmd)
	return nil
}
