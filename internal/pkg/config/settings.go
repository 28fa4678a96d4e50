package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the root of the configuration file.
type Settings struct {
	Logger     LoggerSettings    `yaml:"logger"`
	Algorithms AlgorithmSettings `yaml:"algorithms"`
}

// Default returns console logging at info level and the demonstration algorithm settings.
func Default() *Settings {
	return &Settings{
		Logger: LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeConsole,
		},
		Algorithms: DefaultAlgorithmSettings(),
	}
}

// Load reads settings from a YAML file. Keys missing from the file keep their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("unable to read settings file: %w", err)
	}

	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks the logger and algorithm sections.
func (s *Settings) Validate() error {
	if err := s.Logger.Validate(); err != nil {
		return err
	}
	return s.Algorithms.Validate()
}
