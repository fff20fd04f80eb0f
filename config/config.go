// Package config loads the settings of the vendas tool from defaults, an
// optional .env file and VENDAS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "VENDAS"

type Config struct {
	Store  Store  `mapstructure:",squash"`
	Log    Log    `mapstructure:",squash"`
	Server Server `mapstructure:",squash"`

	// Currency is the ISO code used to format amounts.
	Currency string `mapstructure:"currency"`
	// Passcode gates the commands when not empty.
	Passcode string `mapstructure:"passcode"`
	// Timezone decides which calendar day "today" is.
	Timezone string `mapstructure:"timezone"`
}

type Store struct {
	Driver     string `mapstructure:"store"`
	DataDir    string `mapstructure:"data_dir"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type Log struct {
	Level  string `mapstructure:"log_level"`
	Format string `mapstructure:"log_format"`
}

type Server struct {
	Addr            string        `mapstructure:"addr"`
	Metrics         bool          `mapstructure:"metrics"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("STORE", "dir")
	v.SetDefault("DATA_DIR", ".vendas")
	v.SetDefault("SQLITE_PATH", "vendas.db")

	v.SetDefault("CURRENCY", "BRL")
	v.SetDefault("PASSCODE", "")
	v.SetDefault("TIMEZONE", "Local")

	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "text")

	v.SetDefault("ADDR", "127.0.0.1:8080")
	v.SetDefault("METRICS", true)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
}

// Load reads the configuration. envFile is loaded first when it exists; real
// environment variables always win over it.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load %q: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	cfg := &Config{}
	err := v.Unmarshal(cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("could not decode configuration: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location returns the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
