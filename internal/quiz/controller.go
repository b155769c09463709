// Package quiz implements the quiz session state machine: starting an attempt,
// navigating between drawn questions, recording each answer at most once, and
// summarizing the result.
package quiz

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"lpicstudy/internal/question"
)

// Sampler draws questions for a topic.
type Sampler interface {
	Sample(topic string, count int) []question.Question
}

// Options configures a Controller.
type Options struct {
	// Bands maps percentages to performance labels. Nil uses DefaultBands.
	Bands []Band
	// Now is the session clock. Nil uses time.Now.
	Now func() time.Time
	// NewID generates session ids. Nil uses random UUIDs.
	NewID func() string
	// Observer receives lifecycle notifications. Nil disables them.
	Observer Observer
}

// Controller owns the single active quiz session.
type Controller struct {
	sampler  Sampler
	bands    []Band
	now      func() time.Time
	newID    func() string
	observer Observer

	state   State
	session *session
}

// NewController builds a controller in the not-started state.
func NewController(sampler Sampler, opts Options) *Controller {
	bands := opts.Bands
	if len(bands) == 0 {
		bands = DefaultBands()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	newID := opts.NewID
	if newID == nil {
		newID = func() string { return uuid.NewString() }
	}
	observer := opts.Observer
	if observer == nil {
		observer = noopObserver{}
	}
	return &Controller{
		sampler:  sampler,
		bands:    sortBands(bands),
		now:      now,
		newID:    newID,
		observer: observer,
		state:    StateNotStarted,
	}
}

// State returns the controller state.
func (c *Controller) State() State {
	return c.state
}

// Start draws up to count questions from topic and begins a new session,
// discarding any previous one. If nothing is drawn the controller is unchanged.
func (c *Controller) Start(topic string, count int) error {
	questions := c.sampler.Sample(topic, count)
	if len(questions) == 0 {
		return fmt.Errorf("%w: topic %q", ErrNoQuestionsAvailable, topic)
	}
	c.session = newSession(c.newID(), topic, questions, c.now())
	c.state = StateInProgress
	c.observer.OnStart(c.session.info())
	return nil
}

// Info describes the current or last finished session.
func (c *Controller) Info() (SessionInfo, error) {
	if c.session == nil {
		return SessionInfo{}, &StateError{Op: "info", State: c.state}
	}
	return c.session.info(), nil
}

// CurrentQuestion returns the question under the cursor.
func (c *Controller) CurrentQuestion() (question.Question, error) {
	if err := c.require("current question", StateInProgress); err != nil {
		return question.Question{}, err
	}
	return c.session.Questions[c.session.current].Clone(), nil
}

// CurrentIndex returns the zero-based cursor position.
func (c *Controller) CurrentIndex() (int, error) {
	if err := c.require("current index", StateInProgress); err != nil {
		return 0, err
	}
	return c.session.current, nil
}

// Total returns the number of drawn questions, or zero without a session.
func (c *Controller) Total() int {
	if c.session == nil {
		return 0
	}
	return len(c.session.Questions)
}

// IsAnswered reports whether the question at index has been answered.
func (c *Controller) IsAnswered(index int) bool {
	return c.session != nil && c.session.answered(index)
}

// AnsweredCount returns the number of answered questions.
func (c *Controller) AnsweredCount() int {
	if c.session == nil {
		return 0
	}
	return len(c.session.answers)
}

// ScoreSoFar returns the number of correctly answered questions.
func (c *Controller) ScoreSoFar() int {
	if c.session == nil {
		return 0
	}
	return c.session.score()
}

// GoToPrevious moves the cursor back one question, stopping at the first.
func (c *Controller) GoToPrevious() error {
	if err := c.require("previous", StateInProgress); err != nil {
		return err
	}
	c.session.current = max(0, c.session.current-1)
	return nil
}

// GoToNext moves the cursor forward one question, stopping at the last.
func (c *Controller) GoToNext() error {
	if err := c.require("next", StateInProgress); err != nil {
		return err
	}
	c.session.current = min(len(c.session.Questions)-1, c.session.current+1)
	return nil
}

// GoTo moves the cursor to index, clamped into the drawn range.
func (c *Controller) GoTo(index int) error {
	if err := c.require("go to", StateInProgress); err != nil {
		return err
	}
	c.session.current = min(len(c.session.Questions)-1, max(0, index))
	return nil
}

// SubmitAnswer validates, records, and grades the answer for the current question.
// Choice answers are the zero-based option index as text. A rejected submission
// leaves the session untouched.
func (c *Controller) SubmitAnswer(value string) (Feedback, error) {
	if err := c.require("submit answer", StateInProgress); err != nil {
		return Feedback{}, err
	}
	index := c.session.current
	if c.session.answered(index) {
		return Feedback{}, fmt.Errorf("%w: question %d", ErrAlreadyAnswered, index+1)
	}
	answer, err := c.session.Questions[index].Check(value)
	if err != nil {
		return Feedback{}, err
	}
	c.session.answers[index] = answer.Value
	c.session.results[index] = answer.Correct
	feedback := c.session.feedback(index)
	c.observer.OnAnswer(feedback)
	return feedback, nil
}

// SubmitChoice submits a zero-based option index for the current question.
func (c *Controller) SubmitChoice(index int) (Feedback, error) {
	return c.SubmitAnswer(fmt.Sprint(index))
}

// Feedback returns the recorded outcome for an answered question.
func (c *Controller) Feedback(index int) (Feedback, bool) {
	if c.session == nil || !c.session.answered(index) {
		return Feedback{}, false
	}
	return c.session.feedback(index), true
}

// Finish ends the session and returns its summary. Unanswered questions are
// allowed. Calling Finish again returns the same summary.
func (c *Controller) Finish() (Summary, error) {
	if c.state != StateInProgress && c.state != StateFinished {
		return Summary{}, &StateError{Op: "finish", State: c.state}
	}
	if c.state == StateInProgress {
		c.session.FinishedAt = c.now()
		c.state = StateFinished
		summary := c.summarize()
		c.observer.OnFinish(summary)
		return summary, nil
	}
	return c.summarize(), nil
}

// Reset discards the session and returns to the not-started state.
func (c *Controller) Reset() {
	c.session = nil
	c.state = StateNotStarted
	c.observer.OnReset()
}

func (c *Controller) require(op string, state State) error {
	if c.state != state || c.session == nil {
		return &StateError{Op: op, State: c.state}
	}
	return nil
}
