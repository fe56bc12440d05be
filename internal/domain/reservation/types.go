package reservation

type Status string

const (
	StatusInProgress          Status = "in_progress"
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusConfirmed           Status = "confirmed"
	StatusModified            Status = "modified"
	StatusCancelled           Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusPendingConfirmation, StatusConfirmed, StatusModified, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled
}

// CanTransitionTo encodes the reservation state machine. Confirmation never
// skips pending_confirmation, and cancelled is terminal. The in_progress ->
// modified edge belongs to modification sessions, which operate on a copy of
// a confirmed aggregate reopened via confirmed -> in_progress.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusInProgress:
		return next == StatusPendingConfirmation || next == StatusModified || next == StatusCancelled
	case StatusPendingConfirmation:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusInProgress || next == StatusCancelled
	case StatusModified:
		return next == StatusConfirmed || next == StatusCancelled
	default:
		return false
	}
}
