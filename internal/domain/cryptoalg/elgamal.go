package cryptoalg

import "math/big"

// ElGamalPublicKey is the public part (p, g, y = g^x mod p) of an ElGamal key pair.
type ElGamalPublicKey struct {
	P *big.Int
	G *big.Int
	Y *big.Int
}

// ElGamalCiphertext is the pair produced by a single encryption.
// Each encryption draws a fresh ephemeral exponent, so equal messages yield different pairs.
type ElGamalCiphertext struct {
	C1 *big.Int
	C2 *big.Int
}

// ElGamalEngine owns an ElGamal key pair generated once at construction.
//
// The generator g is chosen as the smallest g >= 2 with g^((p-1)/2) mod p != 1.
// This only guarantees a generator of the large subgroup when p = 2q+1 for a prime q,
// and p is not checked for that form.
type ElGamalEngine interface {
	// ID returns the unique identifier assigned at key generation.
	ID() string

	// PublicKey returns a copy of (p, g, y).
	PublicKey() ElGamalPublicKey

	// Encrypt encrypts 0 <= message < p under a freshly drawn ephemeral exponent.
	Encrypt(message *big.Int) (*ElGamalCiphertext, error)

	// Decrypt recovers the message as c2 * (c1^x)^-1 mod p.
	Decrypt(ciphertext *ElGamalCiphertext) (*big.Int, error)
}
