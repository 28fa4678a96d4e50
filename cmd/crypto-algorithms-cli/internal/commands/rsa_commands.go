package commands

import (
	"fmt"
	"io"

	"github.com/Shrihari123456/cryptography/internal/pkg/validators"

	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for the RSA round-trip command.
type RSACommandHandler struct {
	rand io.Reader
}

// NewRSACommandHandler creates a handler. A nil reader selects crypto/rand.
func NewRSACommandHandler(rand io.Reader) *RSACommandHandler {
	return &RSACommandHandler{rand: defaultRandReader(rand)}
}

// RSACmd generates a key pair, encrypts --message and decrypts the result.
func (commandHandler *RSACommandHandler) RSACmd(cmd *cobra.Command, _ []string) error {
	algorithms, err := newCryptoAlgorithms(cmd, commandHandler.rand)
	if err != nil {
		return err
	}

	bitLength, err := bitLengthFlag(cmd, validators.AlgorithmRSA, algorithms.Settings().RSA.BitLength)
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

	engine, err := algorithms.NewRSA(bitLength)
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
	fmt.Fprintf(out, "Public key: (e=%s, n=%s)\n", publicKey.E, publicKey.N)
	fmt.Fprintf(out, "Original: %s\n", message)
	fmt.Fprintf(out, "Encrypted: %s\n", ciphertext)
	_, err = fmt.Fprintf(out, "Decrypted: %s\n", decrypted)
	return err
}

// InitRSACommands registers the RSA command.
func InitRSACommands(rootCmd *cobra.Command) error {
	return initRSACommands(rootCmd, NewRSACommandHandler(nil))
}

func initRSACommands(rootCmd *cobra.Command, handler *RSACommandHandler) error {
	var rsaCmd = &cobra.Command{
		Use:   "rsa",
		Short: "Generate an RSA key pair and round-trip an integer message",
		RunE:  handler.RSACmd,
	}
	rsaCmd.Flags().IntP("bits", "", 0, "Bit length of each prime factor (defaults to settings, 16 to 4096)")
	rsaCmd.Flags().StringP("message", "", "123", "Non-negative decimal message smaller than the modulus")
	rootCmd.AddCommand(rsaCmd)
	return nil
}
