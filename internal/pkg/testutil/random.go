package testutil

import (
	"io"
	"math/rand/v2"
)

// SeededReader returns a deterministic byte stream for reproducible key generation.
// It must never be used outside tests.
func SeededReader(seed byte) io.Reader {
	var key [32]byte
	for i := range key {
		key[i] = seed + byte(i)
	}
	return rand.NewChaCha8(key)
}
