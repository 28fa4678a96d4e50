package commands

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/Shrihari123456/cryptography/internal/app"
	"github.com/Shrihari123456/cryptography/internal/domain/cryptoalg"
	"github.com/Shrihari123456/cryptography/internal/infrastructure/cryptography"
	"github.com/Shrihari123456/cryptography/internal/pkg/config"
	"github.com/Shrihari123456/cryptography/internal/pkg/logger"
	"github.com/Shrihari123456/cryptography/internal/pkg/validators"

	"github.com/spf13/cobra"
)

// ConfigFlag is the persistent root flag naming the YAML settings file.
const ConfigFlag = "config"

// loadSettings reads the file named by --config, or falls back to the defaults.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	path, err := cmd.Flags().GetString(ConfigFlag)
	if err != nil || path == "" {
		return config.Default(), nil
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// newCryptoAlgorithms wires the processors and engine constructors into the facade.
func newCryptoAlgorithms(cmd *cobra.Command, randReader io.Reader) (*app.CryptoAlgorithms, error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	loggerInstance, err := setupLogger(&settings.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	affine, err := cryptography.NewAffineProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create affine processor: %w", err)
	}

	vigenere, err := cryptography.NewVigenereProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vigenere processor: %w", err)
	}

	return app.NewCryptoAlgorithms(
		randReader,
		&settings.Algorithms,
		affine,
		vigenere,
		cryptography.NewRSAEngine,
		cryptography.NewElGamalEngine,
		loggerInstance,
	)
}

func defaultRandReader(r io.Reader) io.Reader {
	if r == nil {
		return rand.Reader
	}
	return r
}

// parseMessage parses a non-negative decimal integer message.
func parseMessage(value string) (*big.Int, error) {
	message, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("message %q is not a decimal integer", value)
	}
	if message.Sign() < 0 {
		return nil, fmt.Errorf("message %q must not be negative", value)
	}
	return message, nil
}

// bitLengthFlag reads --bits, falling back to the configured length, and applies the same
// bounds the settings file is validated against.
func bitLengthFlag(cmd *cobra.Command, algorithm string, fallback int) (int, error) {
	bitLength, err := intFlagOr(cmd, "bits", fallback)
	if err != nil {
		return 0, err
	}
	if !validators.ValidBitLength(algorithm, int64(bitLength)) {
		return 0, fmt.Errorf("%w: %s bit length %d is outside the supported range", cryptoalg.ErrInvalidBitLength, algorithm, bitLength)
	}
	return bitLength, nil
}

// intFlagOr returns the flag value when it was set explicitly, otherwise fallback.
func intFlagOr(cmd *cobra.Command, name string, fallback int) (int, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("invalid %s flag: %w", name, err)
	}
	return value, nil
}

// stringFlagOr returns the flag value when it was set explicitly, otherwise fallback.
func stringFlagOr(cmd *cobra.Command, name, fallback string) (string, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", name, err)
	}
	return value, nil
}
