//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/Shrihari123456/cryptography/internal/domain/cryptoalg"
	"github.com/Shrihari123456/cryptography/internal/pkg/config"
	"github.com/Shrihari123456/cryptography/internal/pkg/logger"
	"github.com/Shrihari123456/cryptography/internal/pkg/testutil"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRSAEngine(t *testing.T) {
	engine := setupRSAEngine(t, 1, TestBitLength32)

	t.Run("GenerateKeys", func(t *testing.T) {
		publicKey := engine.PublicKey()
		privateKey := engine.PrivateKey()

		assert.NotEmpty(t, engine.ID())
		assert.Equal(t, 2*TestBitLength32, publicKey.N.BitLen())
		assert.Equal(t, 0, publicKey.N.Cmp(privateKey.N))
		assert.Equal(t, int64(cryptoalg.RSAPublicExponent), publicKey.E.Int64())
		assert.True(t, privateKey.D.Sign() > 0)
		assert.False(t, publicKey.N.ProbablyPrime(20), "n must be composite")
	})

	t.Run("EncryptDecrypt", func(t *testing.T) {
		message := big.NewInt(123)

		ciphertext, err := engine.Encrypt(message)
		require.NoError(t, err)
		assert.NotEqual(t, 0, message.Cmp(ciphertext))

		decrypted, err := engine.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, int64(123), decrypted.Int64())
	})

	t.Run("EncryptBoundaryMessages", func(t *testing.T) {
		nMinusOne := new(big.Int).Sub(engine.PublicKey().N, big.NewInt(1))
		for _, m := range []*big.Int{big.NewInt(0), big.NewInt(1), nMinusOne} {
			ciphertext, err := engine.Encrypt(m)
			require.NoError(t, err)
			decrypted, err := engine.Decrypt(ciphertext)
			require.NoError(t, err)
			assert.Equal(t, 0, m.Cmp(decrypted), "message %s", m)
		}
	})

	t.Run("EncryptOutOfRange", func(t *testing.T) {
		for _, m := range []*big.Int{nil, big.NewInt(-1), engine.PublicKey().N} {
			_, err := engine.Encrypt(m)
			assert.ErrorIs(t, err, cryptoalg.ErrMessageOutOfRange)
		}
	})

	t.Run("DecryptOutOfRange", func(t *testing.T) {
		for _, c := range []*big.Int{nil, big.NewInt(-5), engine.PrivateKey().N} {
			_, err := engine.Decrypt(c)
			assert.ErrorIs(t, err, cryptoalg.ErrInvalidCiphertext)
		}
	})

	t.Run("KeysAreDefensiveCopies", func(t *testing.T) {
		publicKey := engine.PublicKey()
		privateKey := engine.PrivateKey()
		originalN := new(big.Int).Set(publicKey.N)

		publicKey.N.SetInt64(7)
		publicKey.E.SetInt64(3)
		privateKey.D.SetInt64(5)

		assert.Equal(t, 0, originalN.Cmp(engine.PublicKey().N))
		assert.Equal(t, int64(cryptoalg.RSAPublicExponent), engine.PublicKey().E.Int64())

		ciphertext, err := engine.Encrypt(big.NewInt(42))
		require.NoError(t, err)
		decrypted, err := engine.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, int64(42), decrypted.Int64())
	})

	t.Run("DecryptWithOtherKey", func(t *testing.T) {
		other := setupRSAEngine(t, 2, TestBitLength32)

		ciphertext, err := engine.Encrypt(big.NewInt(123))
		require.NoError(t, err)

		if ciphertext.Cmp(other.PrivateKey().N) >= 0 {
			_, err = other.Decrypt(ciphertext)
			assert.ErrorIs(t, err, cryptoalg.ErrInvalidCiphertext)
			return
		}
		decrypted, err := other.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.NotEqual(t, int64(123), decrypted.Int64())
	})
}

func TestRSAEngine_LargerKeys(t *testing.T) {
	engine := setupRSAEngine(t, 3, 256)
	assert.Equal(t, 512, engine.PublicKey().N.BitLen())

	ciphertext, err := engine.Encrypt(big.NewInt(123))
	require.NoError(t, err)
	decrypted, err := engine.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, int64(123), decrypted.Int64())
}

func TestRSAEngine_Deterministic(t *testing.T) {
	first := setupRSAEngine(t, 9, TestBitLength64)
	second := setupRSAEngine(t, 9, TestBitLength64)

	assert.Equal(t, 0, first.PublicKey().N.Cmp(second.PublicKey().N))
	assert.Equal(t, 0, first.PrivateKey().D.Cmp(second.PrivateKey().D))
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestRSAEngine_ExponentInverse(t *testing.T) {
	engine := setupRSAEngine(t, 4, TestBitLength32)
	publicKey := engine.PublicKey()
	privateKey := engine.PrivateKey()

	// m^(e*d) = m (mod n) for several bases
	ed := new(big.Int).Mul(publicKey.E, privateKey.D)
	for _, base := range []int64{2, 3, 5, 65536, 123456789} {
		m := big.NewInt(base)
		assert.Equal(t, 0, m.Cmp(new(big.Int).Exp(m, ed, publicKey.N)), "base %d", base)
	}
}

func TestRSAEngine_Errors(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	t.Run("NilRandomness", func(t *testing.T) {
		_, err := NewRSAEngine(nil, TestBitLength32, TestPrimeRounds, logger)
		assert.Error(t, err)
	})

	t.Run("InvalidBitLength", func(t *testing.T) {
		_, err := NewRSAEngine(testutil.SeededReader(1), 1, TestPrimeRounds, logger)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidBitLength)
	})

	t.Run("EqualPrimes", func(t *testing.T) {
		// 0xC1 always yields the 8-bit prime 193, so q can never differ from p.
		_, err := NewRSAEngine(constantReader{b: 0xC1}, 8, TestPrimeRounds, logger)
		assert.ErrorIs(t, err, cryptoalg.ErrKeyGeneration)
	})

	t.Run("ExhaustedRandomness", func(t *testing.T) {
		_, err := NewRSAEngine(strings.NewReader("short"), TestBitLength64, TestPrimeRounds, logger)
		assert.ErrorIs(t, err, cryptoalg.ErrKeyGeneration)
	})
}

func TestRSAEngine_SmallPrimes(t *testing.T) {
	tests := []struct {
		bits  int
		wantN int64
	}{
		{3, 35},
		{4, 143},
	}

	for _, tt := range tests {
		for seed := byte(0); seed < 16; seed++ {
			engine := setupRSAEngine(t, seed, tt.bits)
			n := engine.PublicKey().N
			assert.Equal(t, tt.wantN, n.Int64(), "bits=%d seed=%d", tt.bits, seed)

			for m := int64(0); m < tt.wantN; m++ {
				ciphertext, err := engine.Encrypt(big.NewInt(m))
				require.NoError(t, err)
				decrypted, err := engine.Decrypt(ciphertext)
				require.NoError(t, err)
				assert.Equal(t, m, decrypted.Int64(), "bits=%d seed=%d m=%d", tt.bits, seed, m)
			}
		}
	}
}

func TestSelectPublicExponent(t *testing.T) {
	t.Run("DefaultExponent", func(t *testing.T) {
		e, err := selectPublicExponent(big.NewInt(3120))
		require.NoError(t, err)
		assert.Equal(t, int64(65537), e.Int64())
	})

	t.Run("ExponentLargerThanPhiButCoprime", func(t *testing.T) {
		e, err := selectPublicExponent(big.NewInt(65536))
		require.NoError(t, err)
		assert.Equal(t, int64(65537), e.Int64())
	})

	t.Run("SkipsNonCoprimeExponent", func(t *testing.T) {
		e, err := selectPublicExponent(big.NewInt(4 * 65537))
		require.NoError(t, err)
		assert.Equal(t, int64(65539), e.Int64())
	})

	t.Run("SearchExhausted", func(t *testing.T) {
		_, err := selectPublicExponent(big.NewInt(65537))
		assert.ErrorIs(t, err, cryptoalg.ErrKeyGeneration)
	})
}

func TestRSAEngine_LogsKeyGeneration(t *testing.T) {
	logger := &testutil.MockLogger{}
	logger.On("Info", mock.MatchedBy(func(msg string) bool {
		return strings.HasPrefix(msg, "Generated RSA key pair ")
	})).Once()

	_, err := NewRSAEngine(testutil.SeededReader(5), TestBitLength32, TestPrimeRounds, logger)
	require.NoError(t, err)

	logger.AssertExpectations(t)
}

func TestRSAEngine_KeyGenerationRecordInLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "engines.log")
	fileLog, err := logger.New(&config.LoggerSettings{
		LogLevel:   config.LogLevelInfo,
		LogType:    config.LogTypeFile,
		FilePath:   logPath,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	}, &bytes.Buffer{})
	require.NoError(t, err)

	engine, err := NewRSAEngine(testutil.SeededReader(6), TestBitLength32, TestPrimeRounds, fileLog)
	require.NoError(t, err)

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	var record struct {
		Level string `json:"level"`
		Msg   string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(content), &record))
	assert.Equal(t, "INFO", record.Level)
	assert.Equal(t, "Generated RSA key pair "+engine.ID()+" with 64-bit modulus", record.Msg)
}

func TestRSAEngine_ConcurrentUse(t *testing.T) {
	engine := setupRSAEngine(t, 6, TestBitLength64)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(m int64) {
			defer wg.Done()
			ciphertext, err := engine.Encrypt(big.NewInt(m))
			assert.NoError(t, err)
			decrypted, err := engine.Decrypt(ciphertext)
			assert.NoError(t, err)
			assert.Equal(t, m, decrypted.Int64())
		}(int64(1000 + i))
	}
	wg.Wait()
}

func TestRSAEngine_RoundTripProperty(t *testing.T) {
	engine := setupRSAEngine(t, 7, TestBitLength32)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	// 32-bit primes with their top two bits set give n > 2^63, so every int64 is a valid message.
	properties.Property("decrypt(encrypt(m)) == m", prop.ForAll(
		func(m int64) bool {
			message := big.NewInt(m)
			ciphertext, err := engine.Encrypt(message)
			if err != nil {
				return false
			}
			decrypted, err := engine.Decrypt(ciphertext)
			return err == nil && decrypted.Cmp(message) == 0
		},
		gen.Int64Range(0, math.MaxInt64),
	))

	properties.TestingRun(t)
}
