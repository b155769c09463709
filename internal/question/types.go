package question

import "fmt"

// Kind identifies how a question is answered.
type Kind string

const (
	// KindChoice is answered by selecting one of the listed options.
	KindChoice Kind = "choice"
	// KindFreeText is answered by typing text matched against accepted answers.
	KindFreeText Kind = "text"
)

// ParseKind converts a catalog type string into a Kind.
func ParseKind(value string) (Kind, error) {
	switch Kind(NormalizeAnswerText(value)) {
	case KindChoice:
		return KindChoice, nil
	case KindFreeText:
		return KindFreeText, nil
	default:
		return "", fmt.Errorf("unknown question type %q (expected choice|text)", value)
	}
}

// Catalog is the question catalog file schema loaded from YAML or JSON.
type Catalog struct {
	Version int     `json:"version" yaml:"version"`
	Topics  []Topic `json:"topics" yaml:"topics"`
}

// Topic groups the questions of one exam objective.
type Topic struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a single immutable quiz question.
// Options and CorrectIndex apply to KindChoice, AcceptedAnswers to KindFreeText.
type Question struct {
	ID              string   `json:"id,omitempty" yaml:"id,omitempty"`
	Prompt          string   `json:"question" yaml:"question"`
	Kind            Kind     `json:"type" yaml:"type"`
	Options         []string `json:"options,omitempty" yaml:"options,omitempty"`
	CorrectIndex    int      `json:"correct,omitempty" yaml:"correct,omitempty"`
	AcceptedAnswers []string `json:"accepted,omitempty" yaml:"accepted,omitempty"`
	Explanation     string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	q.Options = append([]string(nil), q.Options...)
	q.AcceptedAnswers = append([]string(nil), q.AcceptedAnswers...)
	return q
}

// Clone returns a deep copy of the catalog.
func (c Catalog) Clone() Catalog {
	topics := make([]Topic, len(c.Topics))
	for i, topic := range c.Topics {
		questions := make([]Question, len(topic.Questions))
		for j, q := range topic.Questions {
			questions[j] = q.Clone()
		}
		topic.Questions = questions
		topics[i] = topic
	}
	c.Topics = topics
	return c
}

// QuestionCount returns the number of questions across all topics.
func (c Catalog) QuestionCount() int {
	total := 0
	for _, topic := range c.Topics {
		total += len(topic.Questions)
	}
	return total
}
