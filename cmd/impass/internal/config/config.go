// Package config loads the impass command configuration from the environment and an optional .env file.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/saylorsolutions/impass/pkg/keys"
)

const (
	EnvFileName    = "IMPASS_ENV_FILE"
	DefaultEnvFile = ".env"
)

// Config is the resolved configuration for a single run.
type Config struct {
	// Password protects the secret when encoding, or is the candidate when decoding.
	// Env: IMPASS_PASSWORD
	Password string `env:"IMPASS_PASSWORD"`

	// EnvFile is the .env file that cipher keys are read from, and written to by key generation.
	// Env: IMPASS_ENV_FILE
	EnvFile string `env:"IMPASS_ENV_FILE" envDefault:".env"`

	// Answers are the accepted affirmative answers to confirmation prompts.
	// Env: ANSWERS
	Answers []string `env:"ANSWERS" envDefault:"y,yes"`

	// BcryptCost is the work factor used when hashing passwords.
	// Env: IMPASS_BCRYPT_COST
	BcryptCost int `env:"IMPASS_BCRYPT_COST" envDefault:"15"`

	// Keys are derived from SHIFT, GODNUM, and XOR.
	Keys keys.CipherKeys `env:"-"`
}

// Load builds a Config from environ, formatted like os.Environ.
// Values from the .env file named by IMPASS_ENV_FILE are used for anything not already set in environ.
func Load(environ []string) (*Config, error) {
	merged, err := mergedEnv(environ)
	if err != nil {
		return nil, err
	}
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: merged})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	cfg.Keys, err = keys.Resolve(merged)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func mergedEnv(environ []string) (map[string]string, error) {
	procEnv := env.ToMap(environ)
	path, ok := procEnv[EnvFileName]
	if !ok || len(path) == 0 {
		path = DefaultEnvFile
	}
	merged, err := keys.LoadEnvFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file '%s': %w", path, err)
	}
	for k, v := range procEnv {
		merged[k] = v
	}
	return merged, nil
}

// IsAffirmative reports whether answer is one of the configured Answers, ignoring case and surrounding space.
func (c *Config) IsAffirmative(answer string) bool {
	for _, a := range c.Answers {
		if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(answer)) {
			return true
		}
	}
	return false
}
