package config

import (
	"fmt"

	"github.com/Shrihari123456/cryptography/internal/pkg/numtheory"
	"github.com/Shrihari123456/cryptography/internal/pkg/validators"
)

// Defaults mirror the demonstration run: RSA with 512-bit primes, ElGamal over a 64-bit prime.
const (
	DefaultRSABitLength     = 512
	DefaultElGamalBitLength = 64
	DefaultPrimeRounds      = 20
	DefaultAffineA          = 5
	DefaultAffineB          = 8
	DefaultVigenereKey      = "KEY"
)

// KeySpec describes the key size requested for an asymmetric scheme.
type KeySpec struct {
	Algorithm string `yaml:"algorithm" validate:"required,oneof=RSA ElGamal"`
	BitLength int    `yaml:"bit_length" validate:"bitlength"`
}

// AlgorithmSettings holds the parameters used by the algorithm facade and the CLI demo.
type AlgorithmSettings struct {
	RSA         KeySpec `yaml:"rsa"`
	ElGamal     KeySpec `yaml:"elgamal"`
	PrimeRounds int     `yaml:"prime_rounds" validate:"min=1,max=128"`
	AffineA     int     `yaml:"affine_a"`
	AffineB     int     `yaml:"affine_b" validate:"min=0,max=25"`
	VigenereKey string  `yaml:"vigenere_key" validate:"required,alpha"`
}

// DefaultAlgorithmSettings returns the settings of the demonstration run.
func DefaultAlgorithmSettings() AlgorithmSettings {
	return AlgorithmSettings{
		RSA:         KeySpec{Algorithm: validators.AlgorithmRSA, BitLength: DefaultRSABitLength},
		ElGamal:     KeySpec{Algorithm: validators.AlgorithmElGamal, BitLength: DefaultElGamalBitLength},
		PrimeRounds: DefaultPrimeRounds,
		AffineA:     DefaultAffineA,
		AffineB:     DefaultAffineB,
		VigenereKey: DefaultVigenereKey,
	}
}

// Validate checks that all fields in AlgorithmSettings are valid
func (s *AlgorithmSettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return describeValidationError("AlgorithmSettings", err)
	}

	if s.RSA.Algorithm != validators.AlgorithmRSA {
		return fmt.Errorf("rsa key spec must use algorithm %s", validators.AlgorithmRSA)
	}
	if s.ElGamal.Algorithm != validators.AlgorithmElGamal {
		return fmt.Errorf("elgamal key spec must use algorithm %s", validators.AlgorithmElGamal)
	}

	if numtheory.GCD(int64(s.AffineA), 26) != 1 {
		return fmt.Errorf("affine multiplier %d must be coprime with 26", s.AffineA)
	}

	return nil
}
