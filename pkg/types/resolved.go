package types

// ExistenceProbeOutcome is the result of probing a path on disk.
type ExistenceProbeOutcome int

const (
	// Absent means the path does not exist.
	Absent ExistenceProbeOutcome = iota
	// Exists means the path (after following symlinks) exists.
	Exists
	// Undetermined means the probe failed, e.g. permission denied.
	Undetermined
)

// String returns the string representation of the outcome
func (o ExistenceProbeOutcome) String() string {
	switch o {
	case Exists:
		return "exists"
	case Absent:
		return "absent"
	case Undetermined:
		return "undetermined"
	default:
		return "unknown"
	}
}

// Present maps the outcome onto the boolean used for filtering.
// Undetermined is treated as absent.
func (o ExistenceProbeOutcome) Present() bool {
	return o == Exists
}

// ResolvedPath pairs an expanded path with its probe outcome.
type ResolvedPath struct {
	ExpandedPath string
	Probe        ExistenceProbeOutcome
}

// Exists reports whether the path counts as present for filtering.
func (r ResolvedPath) Exists() bool {
	return r.Probe.Present()
}
