package documents

import (
	"github.com/arthur-debert/dotaudit/pkg/types"
)

// Document keys.
const (
	KeyFiles   = "files"
	KeyName    = "name"
	KeyPath    = "path"
	KeyMovable = "movable"
	KeyHelp    = "help"
)

// Extract builds a ProgramDocument from a decoded document tree. A
// missing, null or non-array files value gives an empty document. Each
// entry that is not an object or has no string path is kept as a nil
// slot.
func Extract(program, source string, doc any) types.ProgramDocument {
	out := types.ProgramDocument{Program: program, Source: source}

	root, ok := doc.(map[string]any)
	if !ok {
		return out
	}
	files, ok := root[KeyFiles].([]any)
	if !ok {
		return out
	}

	out.Entries = make([]*types.Descriptor, 0, len(files))
	for _, entry := range files {
		out.Entries = append(out.Entries, NewDescriptor(entry))
	}
	return out
}

// NewDescriptor normalises one file entry. It returns nil when the entry
// has no usable path; every other field falls back to its default.
func NewDescriptor(entry any) *types.Descriptor {
	obj, ok := entry.(map[string]any)
	if !ok {
		return nil
	}
	path, ok := obj[KeyPath].(string)
	if !ok {
		return nil
	}

	d := &types.Descriptor{
		Name:    types.DefaultName,
		RawPath: path,
		Movable: types.DefaultMovable,
		Help:    types.DefaultHelp,
	}
	if name, ok := obj[KeyName].(string); ok {
		d.Name = name
	}
	if movable, ok := obj[KeyMovable].(bool); ok {
		d.Movable = movable
	}
	if help, ok := obj[KeyHelp].(string); ok {
		d.Help = help
	}
	return d
}
