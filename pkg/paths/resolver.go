package paths

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/dotaudit/pkg/logging"
	"github.com/arthur-debert/dotaudit/pkg/types"
)

// Probe reports whether path exists on fsys. It never returns an error:
// anything other than success or "not exist" is Undetermined.
func Probe(fsys types.FS, path string) types.ExistenceProbeOutcome {
	_, err := fsys.Stat(path)
	switch {
	case err == nil:
		return types.Exists
	case stderrors.Is(err, fs.ErrNotExist):
		return types.Absent
	default:
		logger := logging.GetLogger("paths.probe")
		logger.Debug().
			Err(err).
			Str("path", path).
			Msg("Existence probe undetermined")
		return types.Undetermined
	}
}

// Resolver expands declared paths and probes the result.
type Resolver struct {
	fs       types.FS
	expander *Expander
}

// NewResolver creates a resolver over fsys using the process environment.
func NewResolver(fsys types.FS) *Resolver {
	return &Resolver{fs: fsys, expander: NewExpander()}
}

// NewResolverWithExpander creates a resolver with a custom expander.
func NewResolverWithExpander(fsys types.FS, x *Expander) *Resolver {
	return &Resolver{fs: fsys, expander: x}
}

// Resolve expands raw and probes the expanded path. The only error it
// returns is *ExpandError.
func (r *Resolver) Resolve(raw string) (types.ResolvedPath, error) {
	expanded, err := r.expander.Expand(raw)
	if err != nil {
		return types.ResolvedPath{}, err
	}
	return types.ResolvedPath{
		ExpandedPath: expanded,
		Probe:        Probe(r.fs, expanded),
	}, nil
}
