package cryptography

import (
	"fmt"

	"github.com/Shrihari123456/cryptography/internal/domain/cryptoalg"
	"github.com/Shrihari123456/cryptography/internal/pkg/logger"
	"github.com/Shrihari123456/cryptography/internal/pkg/numtheory"
)

// affineProcessor struct that implements the AffineProcessor interface
type affineProcessor struct {
	logger logger.Logger
}

// NewAffineProcessor creates and returns a new instance of affineProcessor
func NewAffineProcessor(logger logger.Logger) (cryptoalg.AffineProcessor, error) {
	return &affineProcessor{
		logger: logger,
	}, nil
}

// Encrypt maps each letter x to (a*x + b) mod 26.
func (p *affineProcessor) Encrypt(text string, key cryptoalg.AffineKey) (string, error) {
	a, b, err := normalizeAffineKey(key)
	if err != nil {
		return "", err
	}

	result := transformLetters(text, func(_, x int) int {
		return (a*x + b) % cryptoalg.AlphabetSize
	})

	p.logger.Debug("Affine encryption succeeded")
	return result, nil
}

// Decrypt maps each letter x to a^-1 * (x - b) mod 26.
func (p *affineProcessor) Decrypt(text string, key cryptoalg.AffineKey) (string, error) {
	a, b, err := normalizeAffineKey(key)
	if err != nil {
		return "", err
	}

	aInverse, err := numtheory.ModInverse(int64(a), cryptoalg.AlphabetSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", cryptoalg.ErrInvalidKey, err)
	}

	result := transformLetters(text, func(_, x int) int {
		return int(aInverse) * mod26(x-b) % cryptoalg.AlphabetSize
	})

	p.logger.Debug("Affine decryption succeeded")
	return result, nil
}

// normalizeAffineKey reduces a and b into [0, 26) and rejects multipliers not coprime with 26.
func normalizeAffineKey(key cryptoalg.AffineKey) (int, int, error) {
	a := mod26(key.A)
	if numtheory.GCD(int64(a), cryptoalg.AlphabetSize) != 1 {
		return 0, 0, fmt.Errorf("%w: 'a' must be coprime with 26, got %d", cryptoalg.ErrInvalidKey, key.A)
	}
	return a, mod26(key.B), nil
}
