// Package cryptoalg defines the core interfaces and structures of the cipher toolkit:
// key and ciphertext records for RSA and ElGamal, the engine contracts that own
// generated key material, the classical substitution cipher contracts and the
// error kinds shared by all implementations.
package cryptoalg
