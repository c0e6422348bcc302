package types

// Defaults applied when a file entry omits an optional field or carries
// a value of the wrong type.
const (
	DefaultName    = "Unknown"
	DefaultHelp    = "No help available"
	DefaultMovable = false
)

// Descriptor is one file a program declares it manages.
type Descriptor struct {
	Name string
	// RawPath may contain $VAR, ${VAR} or a leading ~. It is the only
	// field that drives filesystem resolution.
	RawPath string
	// Movable reports whether the file's location is supported.
	Movable bool
	Help    string
}

// ProgramDocument is the ordered set of descriptors read from one document.
type ProgramDocument struct {
	// Program is derived from the document's file name without extension.
	Program string
	Source  string
	// Entries preserves declaration order. Entries without a usable path
	// are represented as nil so positions stay stable for reporting.
	Entries []*Descriptor
}

// Descriptors returns the usable descriptors in declaration order.
func (d ProgramDocument) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(d.Entries))
	for _, e := range d.Entries {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}
