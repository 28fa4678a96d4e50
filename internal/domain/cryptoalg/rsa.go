package cryptoalg

import "math/big"

// RSAPublicExponent is the preferred public exponent.
const RSAPublicExponent = 65537

// RSAPublicKey is the public half (e, n) of an RSA key pair.
type RSAPublicKey struct {
	E *big.Int
	N *big.Int
}

// RSAPrivateKey is the private half (d, n) of an RSA key pair.
type RSAPrivateKey struct {
	D *big.Int
	N *big.Int
}

// RSAEngine owns an RSA key pair generated once at construction.
// The prime factors and phi(n) are discarded after key generation.
// Implementations are immutable and safe for concurrent use.
type RSAEngine interface {
	// ID returns the unique identifier assigned at key generation.
	ID() string

	// PublicKey returns a copy of (e, n).
	PublicKey() RSAPublicKey

	// PrivateKey returns a copy of (d, n).
	PrivateKey() RSAPrivateKey

	// Encrypt returns message^e mod n.
	// The message must satisfy 0 <= message < n; anything else fails with ErrMessageOutOfRange
	// instead of silently wrapping modulo n.
	Encrypt(message *big.Int) (*big.Int, error)

	// Decrypt returns ciphertext^d mod n. The ciphertext must satisfy 0 <= ciphertext < n.
	Decrypt(ciphertext *big.Int) (*big.Int, error)
}
