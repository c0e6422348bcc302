package config

import (
	"github.com/arthur-debert/dotaudit/pkg/errors"
	"github.com/arthur-debert/dotaudit/pkg/report"
	"github.com/arthur-debert/dotaudit/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// Config keys
const (
	KeyProgramsDir     = "programs_dir"
	KeyPattern         = "pattern"
	KeySkipOK          = "skip_ok"
	KeySkipUnsupported = "skip_unsupported"
	KeyFormat          = "format"
	KeyAdvisory        = "advisory"
	KeyLogVerbosity    = "log_verbosity"
)

// Config is the effective configuration for one run
type Config struct {
	ProgramsDir     string `koanf:"programs_dir" toml:"programs_dir"`
	Pattern         string `koanf:"pattern" toml:"pattern"`
	SkipOK          bool   `koanf:"skip_ok" toml:"skip_ok"`
	SkipUnsupported bool   `koanf:"skip_unsupported" toml:"skip_unsupported"`
	Format          string `koanf:"format" toml:"format"`
	Advisory        bool   `koanf:"advisory" toml:"advisory"`
	LogVerbosity    int    `koanf:"log_verbosity" toml:"log_verbosity"`

	// Source is the user config file that was loaded, if any
	Source string `koanf:"-" toml:"-"`
}

// Filter returns the classification switches
func (c *Config) Filter() types.FilterConfig {
	return types.FilterConfig{
		SkipOK:          c.SkipOK,
		SkipUnsupported: c.SkipUnsupported,
	}
}

// OutputFormat returns the parsed report format
func (c *Config) OutputFormat() report.Format {
	f, _ := report.ParseFormat(c.Format)
	return f
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return errors.New(errors.ErrConfigValid, "pattern must not be empty").
			WithDetail("key", KeyPattern)
	}
	if c.ProgramsDir == "" {
		return errors.New(errors.ErrConfigValid, "programs_dir must not be empty").
			WithDetail("key", KeyProgramsDir)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid %s", KeyFormat).
			WithDetail("key", KeyFormat).
			WithDetail("allowed", report.Formats())
	}
	if c.LogVerbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "%s must not be negative", KeyLogVerbosity).
			WithDetail("key", KeyLogVerbosity)
	}
	return nil
}

// TOML renders the configuration as a TOML document
func (c *Config) TOML() ([]byte, error) {
	return toml.Marshal(c)
}
