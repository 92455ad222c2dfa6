// Package config loads process settings and owns the database handle setup.
// The handle is returned to the caller, never stored globally; everything
// downstream receives it (and a context) explicitly.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// Port the HTTP server listens on.
	Port string `koanf:"port"`

	// DatabaseURL is the postgres DSN, e.g.
	// "host=localhost user=bgt password=bgt dbname=bgt port=5432".
	DatabaseURL string `koanf:"database_url"`

	// AllowOrigins feeds the CORS middleware. "*" allows everything.
	AllowOrigins []string `koanf:"allow_origins"`

	// LogSQL enables gorm query logging.
	LogSQL bool `koanf:"log_sql"`
}

func defaults() *Config {
	return &Config{
		Port:         "8080",
		AllowOrigins: []string{"*"},
	}
}

// Load layers settings: defaults, then an optional YAML file named by
// BGT_CONFIG, then BGT_-prefixed environment variables (highest).
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("BGT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// BGT_DATABASE_URL -> database_url, matching the koanf struct tags.
	envProvider := env.Provider("BGT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "bgt_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("database_url must be set (BGT_DATABASE_URL)")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return &cfg, nil
}
