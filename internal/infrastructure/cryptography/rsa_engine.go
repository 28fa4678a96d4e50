package cryptography

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/Shrihari123456/cryptography/internal/domain/cryptoalg"
	"github.com/Shrihari123456/cryptography/internal/pkg/logger"
	"github.com/Shrihari123456/cryptography/internal/pkg/numtheory"
	"github.com/google/uuid"
)

// maxPrimeRedraws bounds how often q is redrawn when it collides with p.
const maxPrimeRedraws = 64

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// rsaEngine implements cryptoalg.RSAEngine. Fields are written once by NewRSAEngine.
type rsaEngine struct {
	id         string
	publicKey  cryptoalg.RSAPublicKey
	privateKey cryptoalg.RSAPrivateKey
	logger     logger.Logger
}

// NewRSAEngine generates an RSA key pair from two distinct bitLength-bit probable primes
// drawn from rand, each tested with primeRounds Miller-Rabin rounds.
// Either a fully initialized engine or an error is returned.
// The smallest usable bitLength is 3; the only 2-bit prime is 3, so p and q can never differ.
func NewRSAEngine(rand io.Reader, bitLength, primeRounds int, logger logger.Logger) (cryptoalg.RSAEngine, error) {
	if rand == nil {
		return nil, errors.New("randomness source cannot be nil")
	}
	if bitLength < 2 {
		return nil, fmt.Errorf("%w: RSA primes need at least 2 bits, got %d", cryptoalg.ErrInvalidBitLength, bitLength)
	}

	primes := numtheory.NewPrimeGenerator(rand, primeRounds)

	p, err := primes.Generate(bitLength)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate prime p: %w", cryptoalg.ErrKeyGeneration, err)
	}

	q, err := generateDistinctPrime(primes, bitLength, p)
	if err != nil {
		return nil, err
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	e, err := selectPublicExponent(phi)
	if err != nil {
		return nil, err
	}

	d, err := numtheory.ModInverseBig(e, phi)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute private exponent: %w", cryptoalg.ErrKeyGeneration, err)
	}

	engine := &rsaEngine{
		id:         uuid.NewString(),
		publicKey:  cryptoalg.RSAPublicKey{E: e, N: n},
		privateKey: cryptoalg.RSAPrivateKey{D: d, N: new(big.Int).Set(n)},
		logger:     logger,
	}

	logger.Info("Generated RSA key pair ", engine.id, " with ", n.BitLen(), "-bit modulus")
	return engine, nil
}

// generateDistinctPrime draws primes until one differs from p.
func generateDistinctPrime(primes *numtheory.PrimeGenerator, bitLength int, p *big.Int) (*big.Int, error) {
	for i := 0; i < maxPrimeRedraws; i++ {
		q, err := primes.Generate(bitLength)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to generate prime q: %w", cryptoalg.ErrKeyGeneration, err)
		}
		if q.Cmp(p) != 0 {
			return q, nil
		}
	}
	return nil, fmt.Errorf("%w: prime q equal to p after %d draws", cryptoalg.ErrKeyGeneration, maxPrimeRedraws)
}

// selectPublicExponent returns 65537, or the next odd value coprime with phi.
// The search gives up once the candidate reaches phi.
func selectPublicExponent(phi *big.Int) (*big.Int, error) {
	e := big.NewInt(cryptoalg.RSAPublicExponent)
	gcd := new(big.Int)

	for gcd.GCD(nil, nil, e, phi).Cmp(one) != 0 {
		if e.Cmp(phi) >= 0 {
			return nil, fmt.Errorf("%w: no public exponent coprime with phi", cryptoalg.ErrKeyGeneration)
		}
		e.Add(e, two)
	}

	return e, nil
}

// ID returns the unique identifier assigned at key generation.
func (r *rsaEngine) ID() string {
	return r.id
}

// PublicKey returns a copy of (e, n).
func (r *rsaEngine) PublicKey() cryptoalg.RSAPublicKey {
	return cryptoalg.RSAPublicKey{
		E: new(big.Int).Set(r.publicKey.E),
		N: new(big.Int).Set(r.publicKey.N),
	}
}

// PrivateKey returns a copy of (d, n).
func (r *rsaEngine) PrivateKey() cryptoalg.RSAPrivateKey {
	return cryptoalg.RSAPrivateKey{
		D: new(big.Int).Set(r.privateKey.D),
		N: new(big.Int).Set(r.privateKey.N),
	}
}

// Encrypt returns message^e mod n for 0 <= message < n.
func (r *rsaEngine) Encrypt(message *big.Int) (*big.Int, error) {
	if !inRange(message, r.publicKey.N) {
		return nil, fmt.Errorf("%w: RSA message must be in [0, n)", cryptoalg.ErrMessageOutOfRange)
	}

	ciphertext := new(big.Int).Exp(message, r.publicKey.E, r.publicKey.N)
	r.logger.Debug("RSA encryption succeeded for key ", r.id)
	return ciphertext, nil
}

// Decrypt returns ciphertext^d mod n for 0 <= ciphertext < n.
func (r *rsaEngine) Decrypt(ciphertext *big.Int) (*big.Int, error) {
	if !inRange(ciphertext, r.privateKey.N) {
		return nil, fmt.Errorf("%w: RSA ciphertext must be in [0, n)", cryptoalg.ErrInvalidCiphertext)
	}

	message := new(big.Int).Exp(ciphertext, r.privateKey.D, r.privateKey.N)
	r.logger.Debug("RSA decryption succeeded for key ", r.id)
	return message, nil
}

// inRange reports whether 0 <= x < bound.
func inRange(x, bound *big.Int) bool {
	return x != nil && x.Sign() >= 0 && x.Cmp(bound) < 0
}
