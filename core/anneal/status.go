package anneal

import "fmt"

// Status is the annealer's lifecycle state.
type Status int

const (
	Initializing Status = iota
	Iterating
	Converged // best cost reached the target
	Exhausted // budget (or stall limit) spent; best effort
	Cancelled // context ended the run early
)

var statusNames = [...]string{"initializing", "iterating", "converged", "exhausted", "cancelled"}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Terminal reports whether the run is over.
func (s Status) Terminal() bool { return s >= Converged }

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Status) UnmarshalText(b []byte) error {
	for i, n := range statusNames {
		if n == string(b) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", b)
}
