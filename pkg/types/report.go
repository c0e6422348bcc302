package types

// EntryStatus is the per-entry result of an audit pass.
type EntryStatus string

const (
	// EntryShown means a report line was emitted
	EntryShown EntryStatus = "shown"
	// EntryHidden means the entry was classified and filtered out
	EntryHidden EntryStatus = "hidden"
	// EntrySkipped means the entry had no usable path
	EntrySkipped EntryStatus = "skipped"
	// EntryFailed means path expansion failed
	EntryFailed EntryStatus = "failed"
)

// EntryOutcome records what happened to one entry of one document.
type EntryOutcome struct {
	Program    string
	Index      int
	Status     EntryStatus
	Descriptor *Descriptor
	Resolved   *ResolvedPath
	Rule       Rule
	Err        error
}

// Report collects entry outcomes in processing order.
type Report struct {
	Documents int
	Outcomes  []EntryOutcome
}

// Count returns the number of outcomes with the given status.
func (r *Report) Count(status EntryStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Add appends an outcome.
func (r *Report) Add(o EntryOutcome) {
	r.Outcomes = append(r.Outcomes, o)
}
