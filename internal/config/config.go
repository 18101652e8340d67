package config

import (
	"fmt"
	"log/slog"

	platform "github.com/beaconlabs/beacon/internal/platform/config"
	"go-simpler.org/env"
)

// schema is the total set of environment variables this application reads.
// Every key consumed anywhere in the codebase is declared here; there is no
// other way to reach the environment.
var schema = platform.NewSchema(
	platform.String("API_URL").Require(),
	platform.Number("PORT").WithDefault("8080"),
	platform.Enum("LOG_LEVEL", "debug", "info", "warn", "error").WithDefault("info"),
	platform.Enum("LOG_FORMAT", "text", "json").WithDefault("text"),
	platform.Bool("DEBUG").WithDefault("false"),
	platform.String("ANALYTICS_KEY").Masked(),
)

// Config is the process-wide configuration: the active variant, the static
// bundle derived from it, and every schema variable in its coerced type.
type Config struct {
	Variant platform.Variant
	Static  Static

	APIURL       string `env:"API_URL"`
	Port         int    `env:"PORT"`
	LogLevel     string `env:"LOG_LEVEL"`
	LogFormat    string `env:"LOG_FORMAT"`
	Debug        bool   `env:"DEBUG"`
	AnalyticsKey string `env:"ANALYTICS_KEY"`

	values platform.Values
}

// Load resolves the active variant from the process environment, loads the
// variant's dotenv file if one exists, and validates the merged result. It
// runs once, synchronously, at process start; any validation failure must be
// treated as fatal by the caller.
func Load() (Config, error) {
	variant, err := platform.CurrentVariant(platform.OS())
	if err != nil {
		return Config{}, platform.ValidationErrors{{
			Name:   platform.SelectorVar,
			Reason: platform.ReasonNotInEnum,
			Detail: err.Error(),
		}}
	}

	path := platform.EnvFile(variant)
	file, err := platform.FileSource(path)
	if err != nil {
		slog.Info("No env file found, using process environment only", "path", path)
	}

	return LoadFrom(variant, platform.Merge(file, platform.OS()))
}

// LoadFrom validates src against the schema and builds the Config for the
// given variant. It touches no process state, which is what makes the loader
// testable: tests hand it a map source and a variant directly.
func LoadFrom(variant platform.Variant, src platform.Source) (Config, error) {
	vals, err := platform.Validate(schema, src)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Variant: variant,
		Static:  StaticFor(variant),
		values:  vals,
	}
	if err := env.Load(&cfg, &env.Options{Source: vals}); err != nil {
		return Config{}, fmt.Errorf("binding validated environment: %w", err)
	}
	return cfg, nil
}

// Keys returns every declared variable name, in declaration order.
func Keys() []string {
	return schema.Names()
}

// Redacted renders the configuration for logs and debug output. Masked
// variables are replaced with a placeholder; the returned map is a fresh
// copy on every call.
func (c Config) Redacted() map[string]string {
	m := schema.Redact(c.values)
	m[platform.SelectorVar] = string(c.Variant)
	return m
}
