package documents

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/arthur-debert/dotaudit/pkg/errors"
	"github.com/arthur-debert/dotaudit/pkg/logging"
	"github.com/arthur-debert/dotaudit/pkg/style"
	"github.com/arthur-debert/dotaudit/pkg/types"
)

// DefaultPattern matches program documents inside the base directory.
const DefaultPattern = "*.json"

// Discover returns the regular files in dir matching pattern, in lexical
// order. Matches that are not regular files are reported to warn and
// skipped. A missing directory yields no documents.
func Discover(fsys types.FS, dir, pattern string, warn io.Writer) ([]string, error) {
	logger := logging.GetLogger("documents.discover")

	if pattern == "" {
		pattern = DefaultPattern
	}
	full := filepath.Join(dir, pattern)

	// Glob only checks the pattern against existing entries, so an empty
	// or missing directory would hide a malformed pattern.
	if _, err := filepath.Match(full, ""); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDiscovery, "invalid pattern %q", full).
			WithDetail("pattern", full)
	}

	matches, err := fsys.Glob(full)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDiscovery, "cannot search for program documents with %q", full).
			WithDetail("pattern", full)
	}

	var files []string
	for _, match := range matches {
		info, err := fsys.Stat(match)
		if err != nil || !info.Mode().IsRegular() {
			fmt.Fprintf(warn, "%s %s is not a file\n", style.Render(warn, style.WarningStyle, "Warning:"), match)
			continue
		}
		files = append(files, match)
	}

	logger.Debug().
		Str("pattern", full).
		Int("matches", len(matches)).
		Int("documents", len(files)).
		Msg("Discovered program documents")

	return files, nil
}
