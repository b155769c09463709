package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question catalog.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question catalog validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeCatalog trims whitespace, fills generated ids, and validates a catalog.
func NormalizeCatalog(catalog Catalog) (Catalog, error) {
	catalog = catalog.Clone()
	collector := &issueCollector{}
	if catalog.Version == 0 {
		collector.add("version", "is required")
	} else if catalog.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", catalog.Version))
	}
	if len(catalog.Topics) == 0 {
		collector.add("topics", "must include at least one entry")
	}

	seenTopics := map[string]struct{}{}
	seenQuestions := map[string]struct{}{}
	for i, topic := range catalog.Topics {
		prefix := fmt.Sprintf("topics[%d]", i)
		topic.ID = strings.TrimSpace(topic.ID)
		topic.Title = strings.TrimSpace(topic.Title)
		if topic.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, exists := seenTopics[topic.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate topic %q", topic.ID))
		} else {
			seenTopics[topic.ID] = struct{}{}
		}

		for j, question := range topic.Questions {
			questionPrefix := fmt.Sprintf("%s.questions[%d]", prefix, j)
			question.ID = strings.TrimSpace(question.ID)
			if question.ID == "" && topic.ID != "" {
				question.ID = fmt.Sprintf("%s-%02d", topic.ID, j+1)
			}
			if question.ID != "" {
				if _, exists := seenQuestions[question.ID]; exists {
					collector.add(questionPrefix+".id", fmt.Sprintf("duplicate id %q", question.ID))
				} else {
					seenQuestions[question.ID] = struct{}{}
				}
			}
			topic.Questions[j] = normalizeQuestion(collector, questionPrefix, question)
		}
		catalog.Topics[i] = topic
	}

	if err := collector.result(); err != nil {
		return Catalog{}, err
	}
	return catalog, nil
}

// Validate reports whether a single question satisfies the catalog invariants.
func (q Question) Validate() error {
	collector := &issueCollector{}
	normalizeQuestion(collector, "question", q.Clone())
	return collector.result()
}

func normalizeQuestion(collector *issueCollector, prefix string, question Question) Question {
	question.Prompt = strings.TrimSpace(question.Prompt)
	if question.Prompt == "" {
		collector.add(prefix+".question", "is required")
	}
	question.Explanation = strings.TrimSpace(question.Explanation)

	kind, err := ParseKind(string(question.Kind))
	if err != nil {
		collector.add(prefix+".type", err.Error())
		return question
	}
	question.Kind = kind

	switch kind {
	case KindChoice:
		question.Options = normalizeStringSlice(question.Options)
		if len(question.Options) < 2 {
			collector.add(prefix+".options", "must include at least two entries")
		}
		for optionIndex, option := range question.Options {
			if option == "" {
				collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
			}
		}
		if question.CorrectIndex < 0 || question.CorrectIndex >= len(question.Options) {
			collector.add(prefix+".correct", fmt.Sprintf("index %d out of range for %d options", question.CorrectIndex, len(question.Options)))
		}
		if len(question.AcceptedAnswers) > 0 {
			collector.add(prefix+".accepted", "is only valid for text questions")
		}
	case KindFreeText:
		question.AcceptedAnswers = normalizeStringSlice(question.AcceptedAnswers)
		if len(question.AcceptedAnswers) == 0 {
			collector.add(prefix+".accepted", "must include at least one entry")
		}
		for answerIndex, answer := range question.AcceptedAnswers {
			if answer == "" {
				collector.add(fmt.Sprintf("%s.accepted[%d]", prefix, answerIndex), "is required")
			}
		}
		if len(question.Options) > 0 {
			collector.add(prefix+".options", "is only valid for choice questions")
		}
		if question.CorrectIndex != 0 {
			collector.add(prefix+".correct", "is only valid for choice questions")
		}
	}
	return question
}
