package app

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Shrihari123456/cryptography/internal/domain/cryptoalg"
)

// Demo section titles.
const (
	DemoAffine   = "Affine Cipher"
	DemoVigenere = "Vigenere Cipher"
	DemoRSA      = "RSA"
	DemoElGamal  = "ElGamal"
)

// CipherResult records one encrypt/decrypt round trip.
type CipherResult struct {
	Algorithm string
	Original  string
	Encrypted string
	Decrypted string
}

// DemoReport collects the round trips of a demonstration run in execution order.
type DemoReport struct {
	Results []CipherResult
}

// String renders the report as one block per algorithm.
func (r *DemoReport) String() string {
	var sb strings.Builder
	for i, result := range r.Results {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s Test:\n", result.Algorithm)
		fmt.Fprintf(&sb, "Original: %s\n", result.Original)
		fmt.Fprintf(&sb, "Encrypted: %s\n", result.Encrypted)
		fmt.Fprintf(&sb, "Decrypted: %s\n", result.Decrypted)
	}
	return sb.String()
}

// RunDemo encrypts and decrypts text with both classical ciphers and message with both
// public-key schemes, using the configured keys and bit lengths.
// Every round trip is checked; a mismatch fails with ErrRoundTripMismatch.
func (c *CryptoAlgorithms) RunDemo(text string, message *big.Int) (*DemoReport, error) {
	report := &DemoReport{}

	steps := []func() (CipherResult, error){
		func() (CipherResult, error) { return c.demoAffine(text) },
		func() (CipherResult, error) { return c.demoVigenere(text) },
		func() (CipherResult, error) { return c.demoRSA(message) },
		func() (CipherResult, error) { return c.demoElGamal(message) },
	}

	for _, step := range steps {
		result, err := step()
		if err != nil {
			return nil, err
		}
		if result.Decrypted != result.Original {
			return nil, fmt.Errorf("%w: %s returned %q for %q", ErrRoundTripMismatch, result.Algorithm, result.Decrypted, result.Original)
		}
		report.Results = append(report.Results, result)
	}

	c.logger.Info("Demonstration run completed for ", len(report.Results), " algorithms")
	return report, nil
}

func (c *CryptoAlgorithms) demoAffine(text string) (CipherResult, error) {
	key := cryptoalg.AffineKey{A: c.settings.AffineA, B: c.settings.AffineB}

	encrypted, err := c.AffineEncrypt(text, key)
	if err != nil {
		return CipherResult{}, fmt.Errorf("affine encryption failed: %w", err)
	}
	decrypted, err := c.AffineDecrypt(encrypted, key)
	if err != nil {
		return CipherResult{}, fmt.Errorf("affine decryption failed: %w", err)
	}

	return CipherResult{Algorithm: DemoAffine, Original: strings.ToUpper(text), Encrypted: encrypted, Decrypted: decrypted}, nil
}

func (c *CryptoAlgorithms) demoVigenere(text string) (CipherResult, error) {
	encrypted, err := c.VigenereEncrypt(text, c.settings.VigenereKey)
	if err != nil {
		return CipherResult{}, fmt.Errorf("vigenere encryption failed: %w", err)
	}
	decrypted, err := c.VigenereDecrypt(encrypted, c.settings.VigenereKey)
	if err != nil {
		return CipherResult{}, fmt.Errorf("vigenere decryption failed: %w", err)
	}

	return CipherResult{Algorithm: DemoVigenere, Original: strings.ToUpper(text), Encrypted: encrypted, Decrypted: decrypted}, nil
}

func (c *CryptoAlgorithms) demoRSA(message *big.Int) (CipherResult, error) {
	engine, err := c.NewRSA(c.settings.RSA.BitLength)
	if err != nil {
		return CipherResult{}, err
	}

	ciphertext, err := engine.Encrypt(message)
	if err != nil {
		return CipherResult{}, fmt.Errorf("RSA encryption failed: %w", err)
	}
	decrypted, err := engine.Decrypt(ciphertext)
	if err != nil {
		return CipherResult{}, fmt.Errorf("RSA decryption failed: %w", err)
	}

	return CipherResult{Algorithm: DemoRSA, Original: message.String(), Encrypted: ciphertext.String(), Decrypted: decrypted.String()}, nil
}

func (c *CryptoAlgorithms) demoElGamal(message *big.Int) (CipherResult, error) {
	engine, err := c.NewElGamal(c.settings.ElGamal.BitLength)
	if err != nil {
		return CipherResult{}, err
	}

	ciphertext, err := engine.Encrypt(message)
	if err != nil {
		return CipherResult{}, fmt.Errorf("ElGamal encryption failed: %w", err)
	}
	decrypted, err := engine.Decrypt(ciphertext)
	if err != nil {
		return CipherResult{}, fmt.Errorf("ElGamal decryption failed: %w", err)
	}

	return CipherResult{
		Algorithm: DemoElGamal,
		Original:  message.String(),
		Encrypted: fmt.Sprintf("(c1=%s, c2=%s)", ciphertext.C1, ciphertext.C2),
		Decrypted: decrypted.String(),
	}, nil
}
