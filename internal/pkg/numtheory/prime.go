package numtheory

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

// DefaultPrimeRounds is the Miller-Rabin round count used when none is configured.
const DefaultPrimeRounds = 20

const maxPrimeAttempts = 1 << 16

var (
	// ErrInvalidBitLength is returned for bit lengths a prime or draw cannot have.
	ErrInvalidBitLength = errors.New("invalid bit length")

	// ErrPrimeSearchExhausted is returned when no probable prime was found within the attempt bound.
	ErrPrimeSearchExhausted = errors.New("prime search exhausted")
)

// PrimeGenerator draws probable primes of an exact bit length from a randomness source.
type PrimeGenerator struct {
	rand   io.Reader
	rounds int
}

// NewPrimeGenerator returns a generator reading from rand and testing candidates with
// the given number of Miller-Rabin rounds (DefaultPrimeRounds when rounds <= 0).
func NewPrimeGenerator(rand io.Reader, rounds int) *PrimeGenerator {
	if rounds <= 0 {
		rounds = DefaultPrimeRounds
	}
	return &PrimeGenerator{rand: rand, rounds: rounds}
}

// Rounds returns the Miller-Rabin round count.
func (g *PrimeGenerator) Rounds() int {
	return g.rounds
}

// Generate returns a probable prime with exactly bits bits.
// From 8 bits upward the two most significant bits are set, so the product of two such primes
// has exactly 2*bits bits. Below 8 bits only the top bit is set; forcing two bits would leave
// a single prime at 3 and 4 bits (7 and 13).
func (g *PrimeGenerator) Generate(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: primes need at least 2 bits, got %d", ErrInvalidBitLength, bits)
	}

	b := uint(bits % 8)
	if b == 0 {
		b = 8
	}

	bytes := make([]byte, (bits+7)/8)
	p := new(big.Int)

	for attempt := 0; attempt < maxPrimeAttempts; attempt++ {
		if _, err := io.ReadFull(g.rand, bytes); err != nil {
			return nil, fmt.Errorf("failed to read random bytes: %w", err)
		}

		bytes[0] &= uint8(int(1<<b) - 1)
		if bits < 8 {
			bytes[0] |= 1 << (b - 1)
		} else if b >= 2 {
			bytes[0] |= 3 << (b - 2)
		} else {
			bytes[0] |= 1
			if len(bytes) > 1 {
				bytes[1] |= 0x80
			}
		}
		bytes[len(bytes)-1] |= 1

		p.SetBytes(bytes)
		if p.ProbablyPrime(g.rounds) {
			return p, nil
		}
	}

	return nil, fmt.Errorf("%w: no %d-bit prime after %d attempts", ErrPrimeSearchExhausted, bits, maxPrimeAttempts)
}

// RandomBits returns a uniformly distributed value in [0, 2^bits).
func RandomBits(rand io.Reader, bits int) (*big.Int, error) {
	if bits < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBitLength, bits)
	}
	if bits == 0 {
		return new(big.Int), nil
	}

	bytes := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(rand, bytes); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}

	if rem := bits % 8; rem != 0 {
		bytes[0] &= uint8(int(1<<rem) - 1)
	}

	return new(big.Int).SetBytes(bytes), nil
}
