package quiz

// State is the controller lifecycle state.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateFinished
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateInProgress:
		return "in progress"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}
