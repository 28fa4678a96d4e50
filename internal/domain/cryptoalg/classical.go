package cryptoalg

// AlphabetSize is the modulus of the classical ciphers (A-Z).
const AlphabetSize = 26

// AffineKey is the (a, b) pair of the affine cipher x -> (a*x + b) mod 26.
type AffineKey struct {
	A int
	B int
}

// AffineProcessor handles affine cipher operations.
// Input is uppercased; characters outside A-Z are copied unchanged.
type AffineProcessor interface {
	// Encrypt maps each letter x to (a*x + b) mod 26. Fails with ErrInvalidKey when gcd(a, 26) != 1.
	Encrypt(text string, key AffineKey) (string, error)

	// Decrypt maps each letter x to a^-1 * (x - b) mod 26. Fails with ErrInvalidKey when gcd(a, 26) != 1.
	Decrypt(text string, key AffineKey) (string, error)
}

// VigenereProcessor handles Vigenère cipher operations.
// Text and key are uppercased; characters outside A-Z are copied unchanged but still
// consume a key position.
type VigenereProcessor interface {
	// Encrypt shifts the letter at position i forward by key[i mod len(key)].
	Encrypt(text, key string) (string, error)

	// Decrypt shifts the letter at position i back by key[i mod len(key)].
	Decrypt(text, key string) (string, error)
}
