package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/dotaudit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func entry(name, path, help string) Entry {
	return Entry{
		Program: "demo",
		Line:    types.Line{Name: name, Path: path, Help: help},
		Movable: true,
		Probe:   types.Exists,
		Rule:    types.RuleSupported,
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no markers", "Export HISTFILE in your shell.", "Export HISTFILE in your shell."},
		{"empty", "", ""},
		{
			"bash block",
			"Add this:\n```bash\nexport X=1\n```\nDone",
			"Add this:\nexport X=1\nDone",
		},
		{"plain fence", "```\ncode\n```\n", "code\n"},
		{"marker without newline is kept", "see ```bash and ```", "see ```bash and ```"},
		{"other language kept", "```sh\nx\n```\n", "```sh\nx\n"},
		{"marker produced by removal", "```bas```\nh\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripFences(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, StripFences(got), "stripping is idempotent")
		})
	}
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf)

	r.Emit(entry("A", "/does/not/exist", "h"))
	r.Emit(entry("zsh", "/home/alice/.zshrc", "```bash\nexport ZDOTDIR=\"$HOME\"/.config/zsh\n```\n"))
	require.NoError(t, r.Close())

	want := "[A] /does/not/exist\n\nh\n\n" +
		"[zsh] /home/alice/.zshrc\n\nexport ZDOTDIR=\"$HOME\"/.config/zsh\n\n\n"
	assert.Equal(t, want, buf.String())
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	r := New(FormatJSON, &buf)

	r.Emit(entry("A", "/a", "```\nx\n```\n"))
	require.NoError(t, r.Close())

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "demo", got[0]["program"])
	assert.Equal(t, "A", got[0]["name"])
	assert.Equal(t, "/a", got[0]["path"])
	assert.Equal(t, "x\n", got[0]["help"])
	assert.Equal(t, true, got[0]["exists"])
	assert.Equal(t, "supported", got[0]["rule"])
}

func TestJSONReporterEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := New(FormatJSON, &buf)
	require.NoError(t, r.Close())
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAMLReporter(t *testing.T) {
	var buf bytes.Buffer
	r := New(FormatYAML, &buf)

	r.Emit(entry("A", "/a", "h"))
	missing := entry("B", "/b", "h2")
	missing.Probe = types.Absent
	missing.Rule = types.RuleMissing
	r.Emit(missing)
	require.NoError(t, r.Close())

	var got []record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.False(t, got[1].Exists)
	assert.Equal(t, "missing", got[1].Rule)
}

func TestTerminalReporterPlainOnNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := New(FormatTerminal, &buf)

	r.Emit(entry("git", "/home/alice/.gitconfig", "Move it to `$XDG_CONFIG_HOME/git/config`."))
	require.NoError(t, r.Close())

	out := buf.String()
	assert.Contains(t, out, "[git] /home/alice/.gitconfig\n")
	assert.Contains(t, out, "XDG_CONFIG_HOME/git/config")
}

func TestParseFormat(t *testing.T) {
	for _, name := range Formats() {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}

	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
