package types

import (
	"io/fs"
)

// FS is the read-only filesystem interface the auditor needs
type FS interface {
	// Stat follows symlinks, matching how existence is probed.
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// Glob returns the names of all files matching pattern, in lexical order.
	Glob(pattern string) ([]string, error)
}
