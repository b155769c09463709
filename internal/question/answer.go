package question

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSelection indicates a choice answer that does not name a listed option.
var ErrInvalidSelection = errors.New("invalid selection")

// ErrEmptyAnswer indicates a free-text answer that is blank after trimming.
var ErrEmptyAnswer = errors.New("empty answer")

// Answer is a validated submission and its correctness.
type Answer struct {
	// Value is the canonical stored form: the option index for choice
	// questions, the trimmed text for free-text questions.
	Value   string
	Correct bool
}

// Check validates a raw submission against the question and grades it.
func (q Question) Check(value string) (Answer, error) {
	switch q.Kind {
	case KindChoice:
		index, err := q.parseSelection(value)
		if err != nil {
			return Answer{}, err
		}
		return Answer{Value: strconv.Itoa(index), Correct: index == q.CorrectIndex}, nil
	case KindFreeText:
		text := strings.TrimSpace(value)
		if text == "" {
			return Answer{}, ErrEmptyAnswer
		}
		return Answer{Value: text, Correct: q.accepts(text)}, nil
	default:
		return Answer{}, fmt.Errorf("unsupported question type %q", q.Kind)
	}
}

// CheckChoice grades a choice question by option index.
func (q Question) CheckChoice(index int) (Answer, error) {
	return q.Check(strconv.Itoa(index))
}

func (q Question) parseSelection(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: no option selected", ErrInvalidSelection)
	}
	index, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an option number", ErrInvalidSelection, trimmed)
	}
	if index < 0 || index >= len(q.Options) {
		return 0, fmt.Errorf("%w: option %d out of range [0,%d)", ErrInvalidSelection, index, len(q.Options))
	}
	return index, nil
}

func (q Question) accepts(text string) bool {
	normalized := NormalizeAnswerText(text)
	for _, accepted := range q.AcceptedAnswers {
		if NormalizeAnswerText(accepted) == normalized {
			return true
		}
	}
	return false
}

// CorrectText renders the expected answer for feedback.
func (q Question) CorrectText() string {
	switch q.Kind {
	case KindChoice:
		if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) {
			return q.Options[q.CorrectIndex]
		}
		return ""
	case KindFreeText:
		return strings.Join(q.AcceptedAnswers, " or ")
	default:
		return ""
	}
}

// AnswerText renders a stored answer value for feedback.
func (q Question) AnswerText(value string) string {
	if q.Kind != KindChoice {
		return value
	}
	index, err := strconv.Atoi(value)
	if err != nil || index < 0 || index >= len(q.Options) {
		return value
	}
	return q.Options[index]
}
