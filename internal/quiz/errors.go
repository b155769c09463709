package quiz

import (
	"errors"
	"fmt"

	"lpicstudy/internal/question"
)

var (
	// ErrNoQuestionsAvailable indicates Start drew no questions for the topic.
	ErrNoQuestionsAvailable = errors.New("no questions available")
	// ErrAlreadyAnswered indicates a second submission for the same question.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrInvalidSelection indicates a choice answer outside the listed options.
	ErrInvalidSelection = question.ErrInvalidSelection
	// ErrEmptyAnswer indicates a blank free-text answer.
	ErrEmptyAnswer = question.ErrEmptyAnswer
	// ErrInvalidStateTransition indicates an operation the current state does not support.
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// StateError reports an operation attempted in the wrong state.
type StateError struct {
	Op    string
	State State
}

// Error returns a readable message for the rejected operation.
func (err *StateError) Error() string {
	return fmt.Sprintf("%s: %s while %s", ErrInvalidStateTransition, err.Op, err.State)
}

// Unwrap lets errors.Is match ErrInvalidStateTransition.
func (err *StateError) Unwrap() error {
	return ErrInvalidStateTransition
}

// Warning returns a short user-facing message for a rejected quiz operation.
func Warning(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAlreadyAnswered):
		return "This question is already answered."
	case errors.Is(err, ErrInvalidSelection):
		return "Pick one of the listed options."
	case errors.Is(err, ErrEmptyAnswer):
		return "Type an answer before submitting."
	case errors.Is(err, ErrNoQuestionsAvailable):
		return "No questions available for this topic."
	case errors.Is(err, ErrInvalidStateTransition):
		return "That action is not available right now."
	default:
		return err.Error()
	}
}
