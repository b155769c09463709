package quiz

import (
	"sort"
	"time"
)

// Band labels a range of score percentages.
type Band struct {
	Name       string  `json:"name" yaml:"name"`
	MinPercent float64 `json:"min_percent" yaml:"min_percent"`
	Message    string  `json:"message" yaml:"message"`
}

// DefaultBands returns the standard performance bands.
func DefaultBands() []Band {
	return []Band{
		{Name: "Excellent", MinPercent: 90, Message: "You have mastered this topic."},
		{Name: "Good", MinPercent: 70, Message: "Solid knowledge, with a few points left to improve."},
		{Name: "Fair", MinPercent: 50, Message: "Study the material further before the exam."},
		{Name: "Needs review", MinPercent: 0, Message: "Review this topic completely."},
	}
}

// Classify returns the highest band whose threshold percentage reaches.
func Classify(percentage float64, bands []Band) Band {
	band, _ := classify(percentage, bands)
	return band
}

// classify also returns the band's rank, 0 being the highest band.
func classify(percentage float64, bands []Band) (Band, int) {
	for rank, band := range sortBands(bands) {
		if percentage >= band.MinPercent {
			return band, rank
		}
	}
	return Band{}, -1
}

func sortBands(bands []Band) []Band {
	sorted := append([]Band(nil), bands...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinPercent > sorted[j].MinPercent
	})
	return sorted
}

// Outcome is the per-question line of a summary.
type Outcome struct {
	Index      int
	QuestionID string
	Prompt     string
	Answered   bool
	Correct    bool
	Given      string
	Expected   string
}

// Summary reports the result of a finished session.
type Summary struct {
	SessionID      string
	Topic          string
	TotalQuestions int
	AnsweredCount  int
	Score          int
	Percentage     float64
	Band           Band
	// BandRank is the band's position from the top, -1 when no band matched.
	BandRank   int
	BandCount  int
	StartedAt  time.Time
	FinishedAt time.Time
	Outcomes   []Outcome
}

// Duration returns the time between start and finish.
func (s Summary) Duration() time.Duration {
	if s.StartedAt.IsZero() || s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

func (c *Controller) summarize() Summary {
	s := c.session
	summary := Summary{
		SessionID:      s.ID,
		Topic:          s.Topic,
		TotalQuestions: len(s.Questions),
		AnsweredCount:  len(s.answers),
		Score:          s.score(),
		StartedAt:      s.StartedAt,
		FinishedAt:     s.FinishedAt,
		Outcomes:       make([]Outcome, 0, len(s.Questions)),
	}
	if summary.TotalQuestions > 0 {
		summary.Percentage = float64(summary.Score) / float64(summary.TotalQuestions) * 100
	}
	summary.Band, summary.BandRank = classify(summary.Percentage, c.bands)
	summary.BandCount = len(c.bands)
	for index, q := range s.Questions {
		outcome := Outcome{
			Index:      index,
			QuestionID: q.ID,
			Prompt:     q.Prompt,
			Expected:   q.CorrectText(),
		}
		if s.answered(index) {
			outcome.Answered = true
			outcome.Correct = s.results[index]
			outcome.Given = q.AnswerText(s.answers[index])
		}
		summary.Outcomes = append(summary.Outcomes, outcome)
	}
	return summary
}
