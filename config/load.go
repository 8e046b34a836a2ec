package config

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// EnvPrefix namespaces environment overrides
const EnvPrefix = "BLINDMAZE_"

// Load builds a Config from defaults, the TOML file at path, then the environment
// Empty path skips the file; a missing .env is not an error
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "config: read %s", path)
		}
		if err := Decode(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "config: parse %s", path)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return cfg, errors.Wrapf(err, "config: load %s", envFile)
		}
	}

	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "config: validate")
	}
	return cfg, nil
}

// Decode unmarshals TOML over the values already in cfg
// Unknown keys are rejected to surface typos
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Encode marshals cfg as TOML
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides cfg fields from BLINDMAZE_* variables
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	floats := []struct {
		key string
		dst *float64
	}{
		{"SIZE", &cfg.Size},
		{"CELL_SIZE", &cfg.CellSize},
		{"SPEED", &cfg.Speed},
		{"FRICTION", &cfg.Friction},
		{"RADIUS", &cfg.Radius},
	}
	for _, f := range floats {
		if v, ok := lookup(EnvPrefix + f.key); ok {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return errors.Wrapf(err, "config: env %s%s", EnvPrefix, f.key)
			}
			*f.dst = parsed
		}
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return errors.Wrapf(err, "config: env %sSEED", EnvPrefix)
		}
		cfg.Seed = parsed
	}

	if v, ok := lookup(EnvPrefix + "KEY_HOLD_MS"); ok {
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "config: env %sKEY_HOLD_MS", EnvPrefix)
		}
		cfg.KeyHoldMs = parsed
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"BLIND", &cfg.Blind},
		{"MUTE", &cfg.Mute},
		{"DEBUG", &cfg.Debug},
	}
	for _, b := range bools {
		if v, ok := lookup(EnvPrefix + b.key); ok {
			parsed, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return errors.Wrapf(err, "config: env %s%s", EnvPrefix, b.key)
			}
			*b.dst = parsed
		}
	}

	return nil
}
