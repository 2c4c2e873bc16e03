package models

// Status is a project's position in the fixed status cycle.
//
// The cycle has three members and advancing from the last wraps back to the
// first:
//
//	Active → Completed → Abandoned → Active → …
//
// Every new project starts at [StatusActive]. A value outside the cycle
// (corrupted or legacy data) is repaired deterministically: [Status.Next]
// returns [StatusActive] for it instead of failing.
type Status string

const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusAbandoned Status = "Abandoned"
)

// statusCycle fixes the order in which toggling advances a status.
var statusCycle = [...]Status{StatusActive, StatusCompleted, StatusAbandoned}

// InitialStatus returns the status assigned to newly created projects:
// the first member of the cycle.
func InitialStatus() Status {
	return statusCycle[0]
}

// Valid reports whether s is a member of the status cycle.
func (s Status) Valid() bool {
	for _, member := range statusCycle {
		if s == member {
			return true
		}
	}
	return false
}

// Next returns the status one position further along the cycle, wrapping
// from the last member back to the first.
//
// An unrecognised status resets to the initial state. The transition is
// total: Next always succeeds and never returns its own input.
func (s Status) Next() Status {
	for i, member := range statusCycle {
		if s == member {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}

	// repair policy for values outside the cycle
	return InitialStatus()
}

// String implements [fmt.Stringer].
func (s Status) String() string {
	return string(s)
}
