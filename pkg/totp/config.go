package totp

import (
	"sync"

	"github.com/segfo/ootp/pkg/hotp"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg  Config
	once sync.Once
)

// Config carries generator settings sourced from the environment. Secret is
// used as raw bytes; encoding or decoding it is up to the deployment.
type Config struct {
	Secret    string `env:"TOTP_SECRET,required"`
	Digits    int    `env:"TOTP_DIGITS" envDefault:"6"`
	Period    int    `env:"TOTP_PERIOD" envDefault:"30"` // seconds
	Algorithm string `env:"TOTP_ALGORITHM" envDefault:"SHA1"`
}

// LoadConfig parses the TOTP_* environment variables once per process and
// returns the resulting Config. Subsequent calls return the cached value.
func LoadConfig() (Config, error) {
	configLoadFunc := func() (Config, error) {
		var cfg Config
		if err := env.Parse(&cfg); err != nil {
			return Config{}, err
		}
		if cfg.Secret == "" {
			return Config{}, ErrSecretNotSet
		}
		return cfg, nil
	}

	var err error
	once.Do(func() {
		cfg, err = configLoadFunc()
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a generator from a Config, parsing the algorithm
// name and applying the same defaults and precondition checks as New.
func NewFromConfig(cfg Config) (*TOTP, error) {
	if cfg.Secret == "" {
		return nil, ErrSecretNotSet
	}
	algorithm, err := hotp.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	return New([]byte(cfg.Secret), Opts{
		Digits:    cfg.Digits,
		Period:    cfg.Period,
		Algorithm: algorithm,
	})
}
