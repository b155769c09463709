package quiz

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"lpicstudy/internal/question"
)

// fixedSampler returns its questions in order, clamped to count.
type fixedSampler map[string][]question.Question

func (s fixedSampler) Sample(topic string, count int) []question.Question {
	questions := s[topic]
	if count <= 0 {
		return nil
	}
	return append([]question.Question(nil), questions[:min(count, len(questions))]...)
}

func choice(id string, correct int) question.Question {
	return question.Question{
		ID:           id,
		Prompt:       "Question " + id,
		Kind:         question.KindChoice,
		Options:      []string{"first", "second", "third"},
		CorrectIndex: correct,
		Explanation:  "Because " + id,
	}
}

func freeText(id string, accepted ...string) question.Question {
	return question.Question{
		ID:              id,
		Prompt:          "Question " + id,
		Kind:            question.KindFreeText,
		AcceptedAnswers: accepted,
	}
}

type recordingObserver struct {
	starts   int
	answers  []Feedback
	finishes int
	resets   int
}

func (o *recordingObserver) OnStart(SessionInfo)        { o.starts++ }
func (o *recordingObserver) OnAnswer(feedback Feedback) { o.answers = append(o.answers, feedback) }
func (o *recordingObserver) OnFinish(Summary)           { o.finishes++ }
func (o *recordingObserver) OnReset()                   { o.resets++ }

// sessionClock is a manually advanced session clock.
type sessionClock struct {
	now time.Time
}

func (c *sessionClock) Now() time.Time          { return c.now }
func (c *sessionClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestController(t *testing.T, observer Observer) (*Controller, *sessionClock) {
	t.Helper()
	clock := &sessionClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	ids := 0
	sampler := fixedSampler{
		"T":     {choice("a", 0), choice("b", 1), choice("c", 0)},
		"mixed": {freeText("grep", "grep"), choice("d", 2)},
		"empty": nil,
	}
	return NewController(sampler, Options{
		Now: clock.Now,
		NewID: func() string {
			ids++
			return fmt.Sprintf("session-%d", ids)
		},
		Observer: observer,
	}), clock
}

type snapshot struct {
	answers map[int]string
	results map[int]bool
	score   int
	current int
	state   State
}

func takeSnapshot(c *Controller) snapshot {
	snap := snapshot{state: c.state, score: c.ScoreSoFar()}
	if c.session != nil {
		snap.answers = map[int]string{}
		snap.results = map[int]bool{}
		for k, v := range c.session.answers {
			snap.answers[k] = v
		}
		for k, v := range c.session.results {
			snap.results[k] = v
		}
		snap.current = c.session.current
	}
	return snap
}

// TestStartClampsCount verifies a large count draws the whole population.
func TestStartClampsCount(t *testing.T) {
	c, _ := newTestController(t, nil)
	if err := c.Start("T", 10); err != nil {
		t.Fatalf("start: %v", err)
	}
	if c.State() != StateInProgress {
		t.Fatalf("expected in progress, got %s", c.State())
	}
	if c.Total() != 3 {
		t.Fatalf("expected 3 questions, got %d", c.Total())
	}
	index, err := c.CurrentIndex()
	if err != nil || index != 0 {
		t.Fatalf("expected index 0, got %d (%v)", index, err)
	}
	info, err := c.Info()
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if info.ID != "session-1" || info.Topic != "T" {
		t.Fatalf("unexpected session info: %+v", info)
	}
}

// TestStartNoQuestions verifies unknown or empty topics keep the controller not started.
func TestStartNoQuestions(t *testing.T) {
	c, _ := newTestController(t, nil)
	for _, topic := range []string{"unknown-topic", "empty"} {
		err := c.Start(topic, 5)
		if !errors.Is(err, ErrNoQuestionsAvailable) {
			t.Fatalf("%s: expected no questions error, got %v", topic, err)
		}
		if c.State() != StateNotStarted {
			t.Fatalf("%s: expected not started, got %s", topic, c.State())
		}
	}
	if _, err := c.CurrentQuestion(); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected invalid state transition, got %v", err)
	}
}

// TestStartFailureKeepsRunningSession verifies a failed start does not discard the active session.
func TestStartFailureKeepsRunningSession(t *testing.T) {
	c, _ := newTestController(t, nil)
	if err := c.Start("T", 3); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := c.SubmitChoice(0); err != nil {
		t.Fatalf("submit: %v", err)
	}
	before := takeSnapshot(c)
	if err := c.Start("empty", 3); !errors.Is(err, ErrNoQuestionsAvailable) {
		t.Fatalf("expected no questions error, got %v", err)
	}
	if after := takeSnapshot(c); !reflect.DeepEqual(before, after) {
		t.Fatalf("expected unchanged session, before %+v after %+v", before, after)
	}
}

// TestOperationsBeforeStart verifies every session operation is rejected before start.
func TestOperationsBeforeStart(t *testing.T) {
	c, _ := newTestController(t, nil)
	checks := map[string]error{
		"previous": c.GoToPrevious(),
		"next":     c.GoToNext(),
		"goto":     c.GoTo(1),
	}
	_, checks["submit"] = c.SubmitAnswer("0")
	_, checks["finish"] = c.Finish()
	_, checks["index"] = c.CurrentIndex()
	for name, err := range checks {
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("%s: expected invalid state transition, got %v", name, err)
		}
		var stateErr *StateError
		if !errors.As(err, &stateErr) || stateErr.State != StateNotStarted {
			t.Fatalf("%s: expected state error in not started, got %v", name, err)
		}
	}
	if c.ScoreSoFar() != 0 || c.IsAnswered(0) || c.Total() != 0 {
		t.Fatalf("expected zero accessors before start")
	}
}

// TestNavigationBounds verifies navigation clamps and never touches answers.
func TestNavigationBounds(t *testing.T) {
	c, _ := newTestController(t, nil)
	if err := c.Start("T", 3); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := c.SubmitChoice(0); err != nil {
		t.Fatalf("submit: %v", err)
	}
	before := takeSnapshot(c)

	if err := c.GoToPrevious(); err != nil {
		t.Fatalf("previous: %v", err)
	}
	if index, _ := c.CurrentIndex(); index != 0 {
		t.Fatalf("expected index to stay at 0, got %d", index)
	}
	for i := 0; i < 5; i++ {
		if err := c.GoToNext(); err != nil {
			t.Fatalf("next: %v", err)
		}
	}
	if index, _ := c.CurrentIndex(); index != 2 {
		t.Fatalf("expected index to stop at 2, got %d", index)
	}
	if err := c.GoTo(-4); err != nil {
		t.Fatalf("goto: %v", err)
	}
	if index, _ := c.CurrentIndex(); index != 0 {
		t.Fatalf("expected goto to clamp to 0, got %d", index)
	}
	if err := c.GoTo(99); err != nil {
		t.Fatalf("goto: %v", err)
	}
	if index, _ := c.CurrentIndex(); index != 2 {
		t.Fatalf("expected goto to clamp to 2, got %d", index)
	}

	after := takeSnapshot(c)
	after.current = before.current
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected navigation to leave answers untouched, before %+v after %+v", before, after)
	}
}

// TestSubmitScoresAtMostOnce verifies re-submission is rejected and the score is stable.
func TestSubmitScoresAtMostOnce(t *testing.T) {
	observer := &recordingObserver{}
	c, _ := newTestController(t, observer)
	if err := c.Start("T", 3); err != nil {
		t.Fatalf("start: %v", err)
	}
	feedback, err := c.SubmitChoice(0)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !feedback.Correct || feedback.Given != "first" || feedback.Expected != "first" {
		t.Fatalf("unexpected feedback: %+v", feedback)
	}
	if feedback.Explanation != "Because a" {
		t.Fatalf("expected explanation, got %q", feedback.Explanation)
	}
	before := takeSnapshot(c)
	for _, value := range []string{"0", "1", "not a number"} {
		if _, err := c.SubmitAnswer(value); !errors.Is(err, ErrAlreadyAnswered) {
			t.Fatalf("value %q: expected already answered, got %v", value, err)
		}
	}
	if after := takeSnapshot(c); !reflect.DeepEqual(before, after) {
		t.Fatalf("expected unchanged state after rejection")
	}
	if c.ScoreSoFar() != 1 {
		t.Fatalf("expected score 1, got %d", c.ScoreSoFar())
	}
	if len(observer.answers) != 1 {
		t.Fatalf("expected one answer notification, got %d", len(observer.answers))
	}
}

// TestSubmitRejectionsAreAtomic verifies invalid submissions leave the session unchanged.
func TestSubmitRejectionsAreAtomic(t *testing.T) {
	c, _ := newTestController(t, nil)
	if err := c.Start("mixed", 2); err != nil {
		t.Fatalf("start: %v", err)
	}
	before := takeSnapshot(c)
	if _, err := c.SubmitAnswer("   "); !errors.Is(err, ErrEmptyAnswer) {
		t.Fatalf("expected empty answer, got %v", err)
	}
	if after := takeSnapshot(c); !reflect.DeepEqual(before, after) {
		t.Fatalf("expected unchanged state after empty answer")
	}
	if err := c.GoToNext(); err != nil {
		t.Fatalf("next: %v", err)
	}
	before = takeSnapshot(c)
	for _, value := range []string{"3", "-1", "", "second"} {
		if _, err := c.SubmitAnswer(value); !errors.Is(err, ErrInvalidSelection) {
			t.Fatalf("value %q: expected invalid selection, got %v", value, err)
		}
	}
	if after := takeSnapshot(c); !reflect.DeepEqual(before, after) {
		t.Fatalf("expected unchanged state after invalid selection")
	}
}

// TestFreeTextMatching verifies trimmed, case-insensitive matching on free-text questions.
func TestFreeTextMatching(t *testing.T) {
	c, _ := newTestController(t, nil)
	if err := c.Start("mixed", 2); err != nil {
		t.Fatalf("start: %v", err)
	}
	feedback, err := c.SubmitAnswer("  GREP  ")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !feedback.Correct || feedback.Given != "GREP" || feedback.Selected != -1 {
		t.Fatalf("unexpected feedback: %+v", feedback)
	}
	stored, ok := c.Feedback(0)
	if !ok || stored != feedback {
		t.Fatalf("expected stored feedback to match, got %+v ok=%v", stored, ok)
	}
	if _, ok := c.Feedback(1); ok {
		t.Fatalf("expected no feedback for unanswered question")
	}
}

// TestCurrentQuestionIsACopy verifies callers cannot change how the session grades.
func TestCurrentQuestionIsACopy(t *testing.T) {
	c, _ := newTestController(t, nil)
	if err := c.Start("mixed", 2); err != nil {
		t.Fatalf("start: %v", err)
	}
	q, err := c.CurrentQuestion()
	if err != nil {
		t.Fatalf("current question: %v", err)
	}
	q.AcceptedAnswers[0] = "sed"
	feedback, err := c.SubmitAnswer("grep")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !feedback.Correct || feedback.Expected != "grep" || c.ScoreSoFar() != 1 {
		t.Fatalf("expected grep graded correct against grep, got %+v score %d", feedback, c.ScoreSoFar())
	}

	if err := c.GoToNext(); err != nil {
		t.Fatalf("next: %v", err)
	}
	q, _ = c.CurrentQuestion()
	q.Options[2] = "changed"
	feedback, err = c.SubmitChoice(2)
	if err != nil {
		t.Fatalf("submit choice: %v", err)
	}
	if !feedback.Correct || feedback.Given != "third" || feedback.Selected != 2 {
		t.Fatalf("expected untouched option text and index, got %+v", feedback)
	}
}

// TestFinishSummary verifies partial completion, percentage, band, and idempotence.
func TestFinishSummary(t *testing.T) {
	observer := &recordingObserver{}
	c, clock := newTestController(t, observer)
	if err := c.Start("T", 10); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := c.SubmitChoice(0); err != nil {
		t.Fatalf("submit: %v", err)
	}
	clock.Advance(90 * time.Second)
	summary, err := c.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if summary.TotalQuestions != 3 || summary.AnsweredCount != 1 || summary.Score != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if fmt.Sprintf("%.1f", summary.Percentage) != "33.3" {
		t.Fatalf("expected 33.3%%, got %.3f", summary.Percentage)
	}
	if summary.BandRank != 3 || summary.BandCount != 4 {
		t.Fatalf("expected floor band rank 3 of 4, got %d of %d", summary.BandRank, summary.BandCount)
	}
	if summary.Band.Name != "Needs review" {
		t.Fatalf("expected needs review band, got %q", summary.Band.Name)
	}
	if summary.Duration() != 90*time.Second {
		t.Fatalf("expected 90s duration, got %s", summary.Duration())
	}
	if !summary.Outcomes[0].Answered || summary.Outcomes[1].Answered {
		t.Fatalf("unexpected outcomes: %+v", summary.Outcomes)
	}
	if c.State() != StateFinished {
		t.Fatalf("expected finished, got %s", c.State())
	}

	clock.Advance(time.Minute)
	again, err := c.Finish()
	if err != nil {
		t.Fatalf("finish again: %v", err)
	}
	if !reflect.DeepEqual(summary, again) {
		t.Fatalf("expected identical summaries, got %+v and %+v", summary, again)
	}
	if observer.finishes != 1 {
		t.Fatalf("expected one finish notification, got %d", observer.finishes)
	}
	if _, err := c.SubmitChoice(1); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected submit after finish to be rejected, got %v", err)
	}
	if err := c.GoToNext(); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected navigation after finish to be rejected, got %v", err)
	}
}

// TestResetAndRestart verifies reset discards the session and a new start is fresh.
func TestResetAndRestart(t *testing.T) {
	observer := &recordingObserver{}
	c, _ := newTestController(t, observer)
	if err := c.Start("T", 3); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := c.SubmitChoice(0); err != nil {
		t.Fatalf("submit: %v", err)
	}
	c.Reset()
	if c.State() != StateNotStarted || c.ScoreSoFar() != 0 || c.IsAnswered(0) {
		t.Fatalf("expected clean controller after reset")
	}
	if _, err := c.Info(); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected info to fail after reset, got %v", err)
	}
	if err := c.Start("T", 3); err != nil {
		t.Fatalf("restart: %v", err)
	}
	info, _ := c.Info()
	if info.ID != "session-2" {
		t.Fatalf("expected a new session id, got %q", info.ID)
	}
	if c.AnsweredCount() != 0 {
		t.Fatalf("expected no answers in new session, got %d", c.AnsweredCount())
	}
	if observer.starts != 2 || observer.resets != 1 {
		t.Fatalf("unexpected notifications: %+v", observer)
	}
}

// TestClassifyBands verifies thresholds are inclusive and order independent.
func TestClassifyBands(t *testing.T) {
	cases := map[float64]string{
		100:  "Excellent",
		90:   "Excellent",
		89.9: "Good",
		70:   "Good",
		50:   "Fair",
		49:   "Needs review",
		0:    "Needs review",
	}
	bands := DefaultBands()
	reversed := []Band{bands[3], bands[1], bands[0], bands[2]}
	for percentage, want := range cases {
		if got := Classify(percentage, reversed).Name; got != want {
			t.Fatalf("%.1f: expected %q, got %q", percentage, want, got)
		}
	}
	if got := Classify(10, []Band{{Name: "Pass", MinPercent: 50}}); got.Name != "" {
		t.Fatalf("expected no band below all thresholds, got %q", got.Name)
	}
}

// TestWarningMessages maps every rejection to a readable warning.
func TestWarningMessages(t *testing.T) {
	cases := map[error]string{
		fmt.Errorf("%w: question 2", ErrAlreadyAnswered): "This question is already answered.",
		ErrInvalidSelection:     "Pick one of the listed options.",
		ErrEmptyAnswer:          "Type an answer before submitting.",
		ErrNoQuestionsAvailable: "No questions available for this topic.",
		&StateError{Op: "finish", State: StateNotStarted}: "That action is not available right now.",
	}
	for err, want := range cases {
		if got := Warning(err); got != want {
			t.Fatalf("expected %q for %v, got %q", want, err, got)
		}
	}
	if got := Warning(nil); got != "" {
		t.Fatalf("expected empty warning for nil, got %q", got)
	}
}
