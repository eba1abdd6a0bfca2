// Package config loads the settings of the paymentsfiles command.
//
// Values are layered, later sources overriding earlier ones:
//
//  1. built-in defaults
//  2. a YAML file (paymentsfiles.yaml in the working directory, or --config)
//  3. PAYMENTSFILES_ environment variables, with __ between nested keys,
//     e.g. PAYMENTSFILES_REMITTANCE__FILE_CLASS=dlocal
//  4. overrides from command line flags
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/robinvdvleuten/paymentsfiles/remittance"
)

// DefaultFile is read when no file is named explicitly and it exists.
const DefaultFile = "paymentsfiles.yaml"

// EnvPrefix prefixes the environment variables that are read.
const EnvPrefix = "PAYMENTSFILES_"

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds every setting.
type Config struct {
	Remittance Remittance `koanf:"remittance"`
	Report     Report     `koanf:"report"`
	Log        Log        `koanf:"log"`

	// File is the configuration file that was read, if any.
	File string `koanf:"-"`
}

// Remittance configures remittance validation and generation.
type Remittance struct {
	Quotes    bool   `koanf:"quotes"`
	FileClass string `koanf:"file_class"`
	FX        string `koanf:"fx"`
}

// Report configures how results are written.
type Report struct {
	Verbose bool   `koanf:"verbose"`
	Format  string `koanf:"format"`
}

// Log configures diagnostics on standard error.
type Log struct {
	Level string `koanf:"level"`
}

func defaults() map[string]any {
	return map[string]any{
		"remittance.quotes":     true,
		"remittance.file_class": string(remittance.ClassStandard),
		"remittance.fx":         string(remittance.FXNone),
		"report.verbose":        false,
		"report.format":         FormatText,
		"log.level":             "warn",
	}
}

// Load reads the configuration. An explicitly named file must exist.
// Override keys use dots between nested names, e.g. "remittance.fx".
func Load(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used, err := findFile(path)
	if err != nil {
		return nil, err
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps PAYMENTSFILES_REMITTANCE__FILE_CLASS to remittance.file_class.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func findFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile, nil
	}
	return "", nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	var errs []error
	if _, err := remittance.ParseFileClass(c.Remittance.FileClass); err != nil {
		errs = append(errs, fmt.Errorf("remittance.file_class: %w", err))
	}
	if _, err := remittance.ParseFXPolicy(c.Remittance.FX); err != nil {
		errs = append(errs, fmt.Errorf("remittance.fx: %w", err))
	}
	switch c.Report.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("report.format: unknown format %q (valid: text, json)", c.Report.Format))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// RemittanceOptions returns the options of remittance validators and
// writers. The configuration must be valid.
func (c *Config) RemittanceOptions() []remittance.Option {
	class, _ := remittance.ParseFileClass(c.Remittance.FileClass)
	fx, _ := remittance.ParseFXPolicy(c.Remittance.FX)
	return []remittance.Option{
		remittance.WithQuotes(c.Remittance.Quotes),
		remittance.WithFileClass(class),
		remittance.WithFX(fx),
	}
}

// SlogLevel parses the level name.
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("unknown level %q (valid: debug, info, warn, error)", l.Level)
	}
	return level, nil
}
