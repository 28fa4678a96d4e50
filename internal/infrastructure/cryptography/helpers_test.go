//go:build unit
// +build unit

package cryptography

import (
	"testing"

	"github.com/Shrihari123456/cryptography/internal/domain/cryptoalg"
	"github.com/Shrihari123456/cryptography/internal/pkg/testutil"
	"github.com/stretchr/testify/require"
)

const (
	TestPrimeRounds = 20
	TestBitLength32 = 32
	TestBitLength64 = 64
)

// constantReader yields the same byte forever.
type constantReader struct {
	b byte
}

func (r constantReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b
	}
	return len(p), nil
}

func setupRSAEngine(t *testing.T, seed byte, bitLength int) cryptoalg.RSAEngine {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	engine, err := NewRSAEngine(testutil.SeededReader(seed), bitLength, TestPrimeRounds, logger)
	require.NoError(t, err)
	return engine
}

func setupElGamalEngine(t *testing.T, seed byte, bitLength int) cryptoalg.ElGamalEngine {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	engine, err := NewElGamalEngine(testutil.SeededReader(seed), bitLength, TestPrimeRounds, logger)
	require.NoError(t, err)
	return engine
}
