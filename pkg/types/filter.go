package types

// FilterConfig carries the two command-line switches that govern which
// decision rows are active. It is read once at startup and never mutated.
//
// The names are kept from the command line: SkipOK enables reporting of
// missing files (verbose), SkipUnsupported hides present-but-unsupported
// files (quiet).
type FilterConfig struct {
	SkipOK          bool
	SkipUnsupported bool
}
