package quiz

// Observer receives session lifecycle notifications for UI or logging.
type Observer interface {
	// OnStart signals a newly started session.
	OnStart(info SessionInfo)
	// OnAnswer delivers the outcome of an accepted submission.
	OnAnswer(feedback Feedback)
	// OnFinish delivers the summary when a session first finishes.
	OnFinish(summary Summary)
	// OnReset signals that the session was discarded.
	OnReset()
}

type noopObserver struct{}

func (noopObserver) OnStart(SessionInfo) {}
func (noopObserver) OnAnswer(Feedback)   {}
func (noopObserver) OnFinish(Summary)    {}
func (noopObserver) OnReset()            {}
