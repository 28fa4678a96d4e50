package cryptography

import (
	"fmt"
	"strings"

	"github.com/Shrihari123456/cryptography/internal/domain/cryptoalg"
	"github.com/Shrihari123456/cryptography/internal/pkg/logger"
)

// vigenereProcessor struct that implements the VigenereProcessor interface
type vigenereProcessor struct {
	logger logger.Logger
}

// NewVigenereProcessor creates and returns a new instance of vigenereProcessor
func NewVigenereProcessor(logger logger.Logger) (cryptoalg.VigenereProcessor, error) {
	return &vigenereProcessor{
		logger: logger,
	}, nil
}

// Encrypt shifts the letter at position i forward by key[i mod len(key)].
func (p *vigenereProcessor) Encrypt(text, key string) (string, error) {
	shifts, err := keyShifts(key)
	if err != nil {
		return "", err
	}

	result := transformLetters(text, func(pos, x int) int {
		return (x + shifts[pos%len(shifts)]) % cryptoalg.AlphabetSize
	})

	p.logger.Debug("Vigenere encryption succeeded")
	return result, nil
}

// Decrypt shifts the letter at position i back by key[i mod len(key)].
func (p *vigenereProcessor) Decrypt(text, key string) (string, error) {
	shifts, err := keyShifts(key)
	if err != nil {
		return "", err
	}

	result := transformLetters(text, func(pos, x int) int {
		return mod26(x - shifts[pos%len(shifts)])
	})

	p.logger.Debug("Vigenere decryption succeeded")
	return result, nil
}

// keyShifts converts the uppercased key into letter values.
func keyShifts(key string) ([]int, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: Vigenere key cannot be empty", cryptoalg.ErrInvalidKey)
	}

	shifts := make([]int, 0, len(key))
	for _, r := range strings.ToUpper(key) {
		if r < 'A' || r > 'Z' {
			return nil, fmt.Errorf("%w: Vigenere key must only contain letters A-Z, got %q", cryptoalg.ErrInvalidKey, r)
		}
		shifts = append(shifts, int(r-'A'))
	}

	return shifts, nil
}
