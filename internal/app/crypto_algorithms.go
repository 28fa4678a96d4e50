package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/Shrihari123456/cryptography/internal/domain/cryptoalg"
	"github.com/Shrihari123456/cryptography/internal/pkg/config"
	"github.com/Shrihari123456/cryptography/internal/pkg/logger"
)

// RSAEngineFactory builds an RSA engine; cryptography.NewRSAEngine satisfies it.
type RSAEngineFactory func(rand io.Reader, bitLength, primeRounds int, logger logger.Logger) (cryptoalg.RSAEngine, error)

// ElGamalEngineFactory builds an ElGamal engine; cryptography.NewElGamalEngine satisfies it.
type ElGamalEngineFactory func(rand io.Reader, bitLength, primeRounds int, logger logger.Logger) (cryptoalg.ElGamalEngine, error)

// ErrRoundTripMismatch is returned by RunDemo when a decrypted value differs from its original.
var ErrRoundTripMismatch = errors.New("decrypted value does not match original")

// CryptoAlgorithms aggregates the classical ciphers and the public-key engines behind one entry point.
type CryptoAlgorithms struct {
	affine     cryptoalg.AffineProcessor
	vigenere   cryptoalg.VigenereProcessor
	newRSA     RSAEngineFactory
	newElGamal ElGamalEngineFactory
	rand       io.Reader
	settings   config.AlgorithmSettings
	logger     logger.Logger
}

// NewCryptoAlgorithms creates a new CryptoAlgorithms instance.
// rand feeds every key generation and ElGamal encryption; use crypto/rand.Reader outside tests.
// Reads are serialized across all engines the facade creates, so rand need not be safe for concurrent use.
func NewCryptoAlgorithms(
	rand io.Reader,
	settings *config.AlgorithmSettings,
	affine cryptoalg.AffineProcessor,
	vigenere cryptoalg.VigenereProcessor,
	newRSA RSAEngineFactory,
	newElGamal ElGamalEngineFactory,
	logger logger.Logger,
) (*CryptoAlgorithms, error) {
	if rand == nil {
		return nil, errors.New("randomness source cannot be nil")
	}
	if settings == nil {
		return nil, errors.New("algorithm settings cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid algorithm settings: %w", err)
	}

	return &CryptoAlgorithms{
		affine:     affine,
		vigenere:   vigenere,
		newRSA:     newRSA,
		newElGamal: newElGamal,
		rand:       &lockedReader{r: rand},
		settings:   *settings,
		logger:     logger,
	}, nil
}

// Settings returns the algorithm settings the facade was built with.
func (c *CryptoAlgorithms) Settings() config.AlgorithmSettings {
	return c.settings
}

// AffineEncrypt encrypts text with the affine cipher.
func (c *CryptoAlgorithms) AffineEncrypt(text string, key cryptoalg.AffineKey) (string, error) {
	return c.affine.Encrypt(text, key)
}

// AffineDecrypt decrypts text with the affine cipher.
func (c *CryptoAlgorithms) AffineDecrypt(text string, key cryptoalg.AffineKey) (string, error) {
	return c.affine.Decrypt(text, key)
}

// VigenereEncrypt encrypts text with the Vigenère cipher.
func (c *CryptoAlgorithms) VigenereEncrypt(text, key string) (string, error) {
	return c.vigenere.Encrypt(text, key)
}

// VigenereDecrypt decrypts text with the Vigenère cipher.
func (c *CryptoAlgorithms) VigenereDecrypt(text, key string) (string, error) {
	return c.vigenere.Decrypt(text, key)
}

// NewRSA generates an RSA engine with primes of bitLength bits.
func (c *CryptoAlgorithms) NewRSA(bitLength int) (cryptoalg.RSAEngine, error) {
	engine, err := c.newRSA(c.rand, bitLength, c.settings.PrimeRounds, c.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA engine: %w", err)
	}
	return engine, nil
}

// NewElGamal generates an ElGamal engine over a prime of bitLength bits.
func (c *CryptoAlgorithms) NewElGamal(bitLength int) (cryptoalg.ElGamalEngine, error) {
	engine, err := c.newElGamal(c.rand, bitLength, c.settings.PrimeRounds, c.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create ElGamal engine: %w", err)
	}
	return engine, nil
}
