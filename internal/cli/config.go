package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Defaults for configuration values.
const (
	DefaultConfigFile = "sqlpart.yaml"
	DefaultModelsFile = "models.yaml"
	DefaultDialect    = "ansi"
	DefaultOutput     = "text"
	envPrefix         = "SQLPART_"
)

// Config holds the CLI configuration.
type Config struct {
	Models   string `koanf:"models"`
	Dialect  string `koanf:"dialect"`
	Output   string `koanf:"output"`
	Database string `koanf:"database"`
	Verbose  bool   `koanf:"verbose"`
}

// Validate checks the dialect and output format.
func (c *Config) Validate() error {
	if _, ok := dialects[strings.ToLower(c.Dialect)]; !ok {
		return fmt.Errorf("unknown dialect %q (expected one of %s)", c.Dialect, strings.Join(DialectNames(), ", "))
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format %q (expected text or json)", c.Output)
	}
	return nil
}

// LoadConfig loads configuration from defaults, the config file, SQLPART_
// environment variables and explicitly set flags, in increasing order of
// precedence.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"models":  DefaultModelsFile,
		"dialect": DefaultDialect,
		"output":  DefaultOutput,
		"verbose": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			cfgFile = DefaultConfigFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// SQLPART_DIALECT -> dialect
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
