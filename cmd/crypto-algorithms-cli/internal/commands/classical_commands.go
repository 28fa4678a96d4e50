package commands

import (
	"fmt"
	"io"

	"github.com/Shrihari123456/cryptography/internal/domain/cryptoalg"

	"github.com/spf13/cobra"
)

// ClassicalCommandHandler encapsulates logic for the affine and Vigenere cipher commands.
type ClassicalCommandHandler struct {
	rand io.Reader
}

// NewClassicalCommandHandler creates a handler. A nil reader selects crypto/rand.
func NewClassicalCommandHandler(rand io.Reader) *ClassicalCommandHandler {
	return &ClassicalCommandHandler{rand: defaultRandReader(rand)}
}

func (commandHandler *ClassicalCommandHandler) affineKey(cmd *cobra.Command, a, b int) (cryptoalg.AffineKey, error) {
	a, err := intFlagOr(cmd, "multiplier", a)
	if err != nil {
		return cryptoalg.AffineKey{}, err
	}
	b, err = intFlagOr(cmd, "shift", b)
	if err != nil {
		return cryptoalg.AffineKey{}, err
	}
	return cryptoalg.AffineKey{A: a, B: b}, nil
}

// AffineEncryptCmd encrypts --text with the affine cipher.
func (commandHandler *ClassicalCommandHandler) AffineEncryptCmd(cmd *cobra.Command, _ []string) error {
	return commandHandler.runAffine(cmd, true)
}

// AffineDecryptCmd decrypts --text with the affine cipher.
func (commandHandler *ClassicalCommandHandler) AffineDecryptCmd(cmd *cobra.Command, _ []string) error {
	return commandHandler.runAffine(cmd, false)
}

func (commandHandler *ClassicalCommandHandler) runAffine(cmd *cobra.Command, encrypt bool) error {
	algorithms, err := newCryptoAlgorithms(cmd, commandHandler.rand)
	if err != nil {
		return err
	}

	text, err := cmd.Flags().GetString("text")
	if err != nil {
		return fmt.Errorf("invalid text flag: %w", err)
	}

	settings := algorithms.Settings()
	key, err := commandHandler.affineKey(cmd, settings.AffineA, settings.AffineB)
	if err != nil {
		return err
	}

	var result string
	if encrypt {
		result, err = algorithms.AffineEncrypt(text, key)
	} else {
		result, err = algorithms.AffineDecrypt(text, key)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}

// VigenereEncryptCmd encrypts --text with the Vigenere cipher.
func (commandHandler *ClassicalCommandHandler) VigenereEncryptCmd(cmd *cobra.Command, _ []string) error {
	return commandHandler.runVigenere(cmd, true)
}

// VigenereDecryptCmd decrypts --text with the Vigenere cipher.
func (commandHandler *ClassicalCommandHandler) VigenereDecryptCmd(cmd *cobra.Command, _ []string) error {
	return commandHandler.runVigenere(cmd, false)
}

func (commandHandler *ClassicalCommandHandler) runVigenere(cmd *cobra.Command, encrypt bool) error {
	algorithms, err := newCryptoAlgorithms(cmd, commandHandler.rand)
	if err != nil {
		return err
	}

	text, err := cmd.Flags().GetString("text")
	if err != nil {
		return fmt.Errorf("invalid text flag: %w", err)
	}

	key, err := stringFlagOr(cmd, "key", algorithms.Settings().VigenereKey)
	if err != nil {
		return err
	}

	var result string
	if encrypt {
		result, err = algorithms.VigenereEncrypt(text, key)
	} else {
		result, err = algorithms.VigenereDecrypt(text, key)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}

// InitClassicalCommands registers the affine and Vigenere commands.
func InitClassicalCommands(rootCmd *cobra.Command) error {
	return initClassicalCommands(rootCmd, NewClassicalCommandHandler(nil))
}

func initClassicalCommands(rootCmd *cobra.Command, handler *ClassicalCommandHandler) error {
	affineCommands := []*cobra.Command{
		{Use: "affine-encrypt", Short: "Encrypt text with the affine cipher", RunE: handler.AffineEncryptCmd},
		{Use: "affine-decrypt", Short: "Decrypt text with the affine cipher", RunE: handler.AffineDecryptCmd},
	}
	for _, cmd := range affineCommands {
		cmd.Flags().StringP("text", "", "", "Text to transform")
		cmd.Flags().IntP("multiplier", "", 0, "Multiplicative key, coprime with 26 (defaults to settings)")
		cmd.Flags().IntP("shift", "", 0, "Additive key (defaults to settings)")
		if err := cmd.MarkFlagRequired("text"); err != nil {
			return err
		}
		rootCmd.AddCommand(cmd)
	}

	vigenereCommands := []*cobra.Command{
		{Use: "vigenere-encrypt", Short: "Encrypt text with the Vigenere cipher", RunE: handler.VigenereEncryptCmd},
		{Use: "vigenere-decrypt", Short: "Decrypt text with the Vigenere cipher", RunE: handler.VigenereDecryptCmd},
	}
	for _, cmd := range vigenereCommands {
		cmd.Flags().StringP("text", "", "", "Text to transform")
		cmd.Flags().StringP("key", "", "", "Alphabetic key (defaults to settings)")
		if err := cmd.MarkFlagRequired("text"); err != nil {
			return err
		}
		rootCmd.AddCommand(cmd)
	}

	return nil
}
