package alloc

// Policy selects how allocation failure is surfaced.
type Policy int

const (
	// PolicyPropagate returns ErrNoMemory to the caller.
	PolicyPropagate Policy = iota
	// PolicyAbort panics on allocation failure so exhaustion and leaks
	// surface at the failing call site.
	PolicyAbort
)

func (p Policy) String() string {
	switch p {
	case PolicyPropagate:
		return "propagate"
	case PolicyAbort:
		return "abort"
	default:
		return "unknown"
	}
}
