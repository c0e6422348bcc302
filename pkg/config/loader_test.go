package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotaudit/pkg/errors"
	"github.com/arthur-debert/dotaudit/pkg/report"
	"github.com/arthur-debert/dotaudit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG config search at an empty temp directory and
// returns the dotaudit config directory inside it.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(home, "etc"))
	dir := filepath.Join(home, "config", AppDirName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "./programs", cfg.ProgramsDir)
	assert.Equal(t, "*.json", cfg.Pattern)
	assert.False(t, cfg.SkipOK)
	assert.False(t, cfg.SkipUnsupported)
	assert.Equal(t, "text", cfg.Format)
	assert.True(t, cfg.Advisory)
	assert.Equal(t, 0, cfg.LogVerbosity)
	assert.Empty(t, cfg.Source)
	assert.Equal(t, types.FilterConfig{}, cfg.Filter())
	assert.Equal(t, report.FormatText, cfg.OutputFormat())
}

func TestLoadLayering(t *testing.T) {
	t.Run("user_toml_overrides_defaults", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
programs_dir = "/usr/share/dotaudit/programs"
skip_unsupported = true
`), 0644))

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "/usr/share/dotaudit/programs", cfg.ProgramsDir)
		assert.True(t, cfg.SkipUnsupported)
		assert.Equal(t, path, cfg.Source)
	})

	t.Run("user_yaml_is_supported", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("format: json\nadvisory: false\n"), 0644))

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, report.FormatJSON, cfg.OutputFormat())
		assert.False(t, cfg.Advisory)
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`skip_ok = false`), 0644))
		t.Setenv("DOTAUDIT_SKIP_OK", "true")
		t.Setenv("DOTAUDIT_LOG_VERBOSITY", "2")

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.True(t, cfg.SkipOK)
		assert.Equal(t, 2, cfg.LogVerbosity)
	})

	t.Run("flags_override_env", func(t *testing.T) {
		isolate(t)
		t.Setenv("DOTAUDIT_PROGRAMS_DIR", "/from/env")

		cfg, err := Load(LoadOptions{Flags: map[string]interface{}{
			KeyProgramsDir: "/from/flag",
			KeySkipOK:      true,
		}})
		require.NoError(t, err)
		assert.Equal(t, "/from/flag", cfg.ProgramsDir)
		assert.Equal(t, types.FilterConfig{SkipOK: true}, cfg.Filter())
	})

	t.Run("explicit_file", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "custom.toml")
		require.NoError(t, os.WriteFile(path, []byte(`pattern = "*.jsonc"`), 0644))

		cfg, err := Load(LoadOptions{ConfigFile: path})
		require.NoError(t, err)
		assert.Equal(t, "*.jsonc", cfg.Pattern)
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing_explicit_file", func(t *testing.T) {
		isolate(t)
		_, err := Load(LoadOptions{ConfigFile: "/nonexistent/dotaudit.toml"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "config.ini")
		require.NoError(t, os.WriteFile(path, []byte("x=1"), 0644))
		_, err := Load(LoadOptions{ConfigFile: path})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed_toml", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("programs_dir = "), 0644))
		_, err := Load(LoadOptions{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("unknown_format", func(t *testing.T) {
		isolate(t)
		_, err := Load(LoadOptions{Flags: map[string]interface{}{KeyFormat: "xml"}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("empty_pattern", func(t *testing.T) {
		isolate(t)
		_, err := Load(LoadOptions{Flags: map[string]interface{}{KeyPattern: ""}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestTOML(t *testing.T) {
	isolate(t)
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	out, err := cfg.TOML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "programs_dir = './programs'")
	assert.Contains(t, string(out), "skip_ok = false")
	assert.NotContains(t, string(out), "Source")
}

func TestDefaultContent(t *testing.T) {
	assert.Contains(t, DefaultContent(), `programs_dir = "./programs"`)
}
