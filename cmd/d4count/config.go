// Config loading for the d4count CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyPrimeLimit = "prime_limit"
	cfgKeyBounds     = "bounds"
	cfgKeyLatex      = "latex"

	// defaultPrimeLimit bounds the sieve, and hence the largest conductor
	// bound a sweep can reach without raising the limit.
	defaultPrimeLimit = 10000
)

// defaultBounds is the sweep reported when no bounds are configured or
// given on the command line.
var defaultBounds = []int{10, 100, 1000, 10000}

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# d4count CLI configuration

# Sieve limit: primes and conductor bounds must stay below this.
prime_limit: 10000

# Conductor bounds for the expectation sweep (strictly ascending).
bounds: [10, 100, 1000, 10000]

# Render tables as LaTeX instead of plain text.
latex: false
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run; a missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyPrimeLimit, defaultPrimeLimit)
	v.SetDefault(cfgKeyBounds, defaultBounds)
	v.SetDefault(cfgKeyLatex, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
