package cryptoalg

import (
	"errors"

	"github.com/Shrihari123456/cryptography/internal/pkg/numtheory"
)

var (
	// ErrInvalidKey indicates a symmetric key that cannot be used, e.g. an affine multiplier not coprime with 26.
	ErrInvalidKey = errors.New("invalid key")

	// ErrNoInverse indicates a modular inverse was requested for non-coprime arguments.
	ErrNoInverse = numtheory.ErrNoInverse

	// ErrKeyGeneration indicates a bounded search during key generation was exhausted
	// or a drawn value stayed outside its valid range.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrInvalidBitLength indicates a requested key size the engines cannot produce.
	ErrInvalidBitLength = numtheory.ErrInvalidBitLength

	// ErrMessageOutOfRange indicates a plaintext outside [0, modulus).
	ErrMessageOutOfRange = errors.New("message out of range")

	// ErrInvalidCiphertext indicates a ciphertext outside the range its key can produce.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
)
