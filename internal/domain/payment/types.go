package payment

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// Completed is terminal. Pending and Failed may move to either outcome, so a
// Failed attempt can still be confirmed by a later verification.
func (s Status) CanTransitionTo(to Status) bool {
	switch s {
	case StatusPending, StatusFailed:
		return to == StatusCompleted || to == StatusFailed
	default:
		return false
	}
}

// SourcesFor lists the statuses allowed to move into to. Repositories use it as
// the expected-value set of a compare-and-swap update.
func SourcesFor(to Status) []Status {
	var from []Status
	for _, s := range []Status{StatusPending, StatusCompleted, StatusFailed} {
		if s.CanTransitionTo(to) {
			from = append(from, s)
		}
	}
	return from
}
