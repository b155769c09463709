package quiz

import (
	"strconv"
	"time"

	"lpicstudy/internal/question"
)

// session is one attempt at a quiz. It is owned and mutated only by the Controller.
type session struct {
	ID         string
	Topic      string
	Questions  []question.Question
	StartedAt  time.Time
	FinishedAt time.Time

	current int
	answers map[int]string
	results map[int]bool
}

func newSession(id, topic string, questions []question.Question, startedAt time.Time) *session {
	return &session{
		ID:        id,
		Topic:     topic,
		Questions: questions,
		StartedAt: startedAt,
		answers:   map[int]string{},
		results:   map[int]bool{},
	}
}

// score recounts correct results so a question can never contribute twice.
func (s *session) score() int {
	score := 0
	for _, correct := range s.results {
		if correct {
			score++
		}
	}
	return score
}

func (s *session) answered(index int) bool {
	_, ok := s.answers[index]
	return ok
}

func (s *session) feedback(index int) Feedback {
	q := s.Questions[index]
	value := s.answers[index]
	selected := -1
	if q.Kind == question.KindChoice {
		if n, err := strconv.Atoi(value); err == nil {
			selected = n
		}
	}
	return Feedback{
		Index:       index,
		QuestionID:  q.ID,
		Correct:     s.results[index],
		Selected:    selected,
		Given:       q.AnswerText(value),
		Expected:    q.CorrectText(),
		Explanation: q.Explanation,
	}
}

func (s *session) info() SessionInfo {
	return SessionInfo{ID: s.ID, Topic: s.Topic, Total: len(s.Questions), StartedAt: s.StartedAt}
}

// SessionInfo identifies a started session for observers and renderers.
type SessionInfo struct {
	ID        string
	Topic     string
	Total     int
	StartedAt time.Time
}

// Feedback describes the outcome of an answered question.
type Feedback struct {
	Index      int
	QuestionID string
	Correct    bool
	// Selected is the chosen option index, or -1 for free-text answers.
	Selected    int
	Given       string
	Expected    string
	Explanation string
}
