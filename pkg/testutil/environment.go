// pkg/testutil/environment.go
// DEPENDENCIES: filesystem, paths
// PURPOSE: Build isolated program directories and home directories for tests

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotaudit/pkg/filesystem"
	"github.com/arthur-debert/dotaudit/pkg/paths"
	"github.com/arthur-debert/dotaudit/pkg/types"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a programs directory, a home directory and an
// environment map for path expansion.
type TestEnvironment struct {
	ProgramsDir string
	HomeDir     string

	FS   types.FS
	Vars map[string]string

	Type EnvType

	t   *testing.T
	afs afero.Fs
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:    t,
		Type: envType,
		Vars: map[string]string{},
	}

	switch envType {
	case EnvMemoryOnly:
		env.ProgramsDir = "/virtual/programs"
		env.HomeDir = "/virtual/home"
		env.afs = afero.NewMemMapFs()
	case EnvIsolated:
		tempDir := t.TempDir()
		env.ProgramsDir = filepath.Join(tempDir, "programs")
		env.HomeDir = filepath.Join(tempDir, "home")
		env.afs = afero.NewOsFs()
	}
	env.FS = filesystem.NewAferoFS(env.afs)

	env.mkdir(env.ProgramsDir)
	env.mkdir(env.HomeDir)
	env.Vars["HOME"] = env.HomeDir

	return env
}

// Program writes a program document named <name>.json and returns its path.
func (env *TestEnvironment) Program(name, content string) string {
	env.t.Helper()
	path := filepath.Join(env.ProgramsDir, name+".json")
	env.write(path, content)
	return path
}

// File creates a file relative to the home directory and returns its
// absolute path.
func (env *TestEnvironment) File(rel string) string {
	env.t.Helper()
	path := filepath.Join(env.HomeDir, rel)
	env.mkdir(filepath.Dir(path))
	env.write(path, "")
	return path
}

// Dir creates a directory inside the programs directory, for example to
// produce a glob match that is not a regular file.
func (env *TestEnvironment) Dir(rel string) string {
	env.t.Helper()
	path := filepath.Join(env.ProgramsDir, rel)
	env.mkdir(path)
	return path
}

// Setenv sets a variable visible to Expander().
func (env *TestEnvironment) Setenv(name, value string) {
	env.Vars[name] = value
}

// Expander returns an expander reading Vars instead of the process
// environment.
func (env *TestEnvironment) Expander() *paths.Expander {
	return &paths.Expander{
		LookupEnv: func(name string) (string, bool) {
			v, ok := env.Vars[name]
			return v, ok
		},
		HomeDir: func() (string, error) {
			return env.HomeDir, nil
		},
	}
}

// Resolver returns a resolver over the environment's filesystem and vars.
func (env *TestEnvironment) Resolver() *paths.Resolver {
	return paths.NewResolverWithExpander(env.FS, env.Expander())
}

func (env *TestEnvironment) mkdir(path string) {
	env.t.Helper()
	if err := env.afs.MkdirAll(path, 0755); err != nil {
		env.t.Fatalf("Failed to create %s: %v", path, err)
	}
}

func (env *TestEnvironment) write(path, content string) {
	env.t.Helper()
	if err := afero.WriteFile(env.afs, path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", path, err)
	}
}
