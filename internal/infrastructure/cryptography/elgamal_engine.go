package cryptography

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"

	"github.com/Shrihari123456/cryptography/internal/domain/cryptoalg"
	"github.com/Shrihari123456/cryptography/internal/pkg/logger"
	"github.com/Shrihari123456/cryptography/internal/pkg/numtheory"
	"github.com/google/uuid"
)

const (
	// maxPrivateKeyDraws bounds redraws of x while it is zero or not below p-1.
	maxPrivateKeyDraws = 64

	// maxEphemeralDraws bounds redraws of k while it is zero.
	maxEphemeralDraws = 64
)

// elGamalEngine implements cryptoalg.ElGamalEngine. Key fields are written once by NewElGamalEngine;
// only reads from rand are serialized.
type elGamalEngine struct {
	id        string
	publicKey cryptoalg.ElGamalPublicKey
	x         *big.Int
	logger    logger.Logger

	randMu sync.Mutex
	rand   io.Reader
}

// NewElGamalEngine generates an ElGamal key pair over a bitLength-bit probable prime drawn from rand.
// The engine keeps rand to draw a fresh ephemeral exponent on every encryption; when the engine is
// shared between goroutines, reads from rand are serialized.
func NewElGamalEngine(rand io.Reader, bitLength, primeRounds int, logger logger.Logger) (cryptoalg.ElGamalEngine, error) {
	if rand == nil {
		return nil, errors.New("randomness source cannot be nil")
	}
	if bitLength < 2 {
		return nil, fmt.Errorf("%w: ElGamal primes need at least 2 bits, got %d", cryptoalg.ErrInvalidBitLength, bitLength)
	}

	p, err := numtheory.NewPrimeGenerator(rand, primeRounds).Generate(bitLength)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate prime p: %w", cryptoalg.ErrKeyGeneration, err)
	}

	g, err := findGenerator(p)
	if err != nil {
		return nil, err
	}
	logger.Debug("Selected ElGamal generator ", g, " for ", p.BitLen(), "-bit prime")

	x, err := drawPrivateExponent(rand, bitLength, p)
	if err != nil {
		return nil, err
	}

	engine := &elGamalEngine{
		id: uuid.NewString(),
		publicKey: cryptoalg.ElGamalPublicKey{
			P: p,
			G: g,
			Y: new(big.Int).Exp(g, x, p),
		},
		x:      x,
		logger: logger,
		rand:   rand,
	}

	logger.Info("Generated ElGamal key pair ", engine.id, " over ", p.BitLen(), "-bit prime")
	return engine, nil
}

// isGenerator reports whether g^((p-1)/2) mod p != 1, i.e. g is a quadratic non-residue mod p.
func isGenerator(g, p *big.Int) bool {
	exponent := new(big.Int).Rsh(new(big.Int).Sub(p, one), 1)
	return new(big.Int).Exp(g, exponent, p).Cmp(one) != 0
}

// findGenerator returns the smallest g in [2, p) passing isGenerator.
func findGenerator(p *big.Int) (*big.Int, error) {
	for g := big.NewInt(2); g.Cmp(p) < 0; g.Add(g, one) {
		if isGenerator(g, p) {
			return g, nil
		}
	}

	return nil, fmt.Errorf("%w: no generator found below p", cryptoalg.ErrKeyGeneration)
}

// drawPrivateExponent draws x from [0, 2^(bitLength-1)) until 1 <= x < p-1.
func drawPrivateExponent(rand io.Reader, bitLength int, p *big.Int) (*big.Int, error) {
	pMinusOne := new(big.Int).Sub(p, one)

	for i := 0; i < maxPrivateKeyDraws; i++ {
		x, err := numtheory.RandomBits(rand, bitLength-1)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to draw private key: %w", cryptoalg.ErrKeyGeneration, err)
		}
		if x.Sign() > 0 && x.Cmp(pMinusOne) < 0 {
			return x, nil
		}
	}

	return nil, fmt.Errorf("%w: private key out of range after %d draws", cryptoalg.ErrKeyGeneration, maxPrivateKeyDraws)
}

// ID returns the unique identifier assigned at key generation.
func (e *elGamalEngine) ID() string {
	return e.id
}

// PublicKey returns a copy of (p, g, y).
func (e *elGamalEngine) PublicKey() cryptoalg.ElGamalPublicKey {
	return cryptoalg.ElGamalPublicKey{
		P: new(big.Int).Set(e.publicKey.P),
		G: new(big.Int).Set(e.publicKey.G),
		Y: new(big.Int).Set(e.publicKey.Y),
	}
}

// Encrypt returns (g^k mod p, message * y^k mod p) for a fresh nonzero k < 2^(bitlen(p)-1).
func (e *elGamalEngine) Encrypt(message *big.Int) (*cryptoalg.ElGamalCiphertext, error) {
	p := e.publicKey.P
	if !inRange(message, p) {
		return nil, fmt.Errorf("%w: ElGamal message must be in [0, p)", cryptoalg.ErrMessageOutOfRange)
	}

	k, err := e.drawEphemeral()
	if err != nil {
		return nil, err
	}

	c1 := new(big.Int).Exp(e.publicKey.G, k, p)
	c2 := new(big.Int).Exp(e.publicKey.Y, k, p)
	c2.Mul(c2, message).Mod(c2, p)

	e.logger.Debug("ElGamal encryption succeeded for key ", e.id)
	return &cryptoalg.ElGamalCiphertext{C1: c1, C2: c2}, nil
}

// Decrypt returns c2 * s^-1 mod p with shared secret s = c1^x mod p.
func (e *elGamalEngine) Decrypt(ciphertext *cryptoalg.ElGamalCiphertext) (*big.Int, error) {
	p := e.publicKey.P
	if ciphertext == nil || !inRange(ciphertext.C1, p) || ciphertext.C1.Sign() == 0 || !inRange(ciphertext.C2, p) {
		return nil, fmt.Errorf("%w: ElGamal components must satisfy 0 < c1 < p and 0 <= c2 < p", cryptoalg.ErrInvalidCiphertext)
	}

	s := new(big.Int).Exp(ciphertext.C1, e.x, p)
	sInv, err := numtheory.ModInverseBig(s, p)
	if err != nil {
		return nil, fmt.Errorf("failed to invert shared secret: %w", err)
	}

	message := sInv.Mul(sInv, ciphertext.C2)
	message.Mod(message, p)

	e.logger.Debug("ElGamal decryption succeeded for key ", e.id)
	return message, nil
}

// drawEphemeral draws a nonzero k from [0, 2^(bitlen(p)-1)).
func (e *elGamalEngine) drawEphemeral() (*big.Int, error) {
	bits := e.publicKey.P.BitLen() - 1

	for i := 0; i < maxEphemeralDraws; i++ {
		e.randMu.Lock()
		k, err := numtheory.RandomBits(e.rand, bits)
		e.randMu.Unlock()
		if err != nil {
			return nil, fmt.Errorf("failed to draw ephemeral key: %w", err)
		}
		if k.Sign() > 0 {
			return k, nil
		}
	}

	return nil, fmt.Errorf("%w: ephemeral key stayed zero after %d draws", cryptoalg.ErrKeyGeneration, maxEphemeralDraws)
}
