// Package bank holds the immutable question catalog and draws random quizzes from it.
package bank

import (
	"fmt"
	"math/rand/v2"

	"lpicstudy/internal/question"
)

// Topic describes one catalog topic for listings.
type Topic struct {
	ID    string
	Title string
	Size  int
}

// Options configures a Bank.
type Options struct {
	// Rand is the sampling source. Nil uses a generator seeded from process entropy.
	Rand *rand.Rand
}

// Bank is an immutable catalog of questions grouped by topic.
type Bank struct {
	topics []Topic
	byID   map[string][]question.Question
	rng    *rand.Rand
}

// New validates the catalog and builds a bank that owns a private copy of it.
func New(catalog question.Catalog, opts Options) (*Bank, error) {
	normalized, err := question.NormalizeCatalog(catalog)
	if err != nil {
		return nil, err
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	b := &Bank{
		topics: make([]Topic, 0, len(normalized.Topics)),
		byID:   make(map[string][]question.Question, len(normalized.Topics)),
		rng:    rng,
	}
	for _, topic := range normalized.Topics {
		b.topics = append(b.topics, Topic{ID: topic.ID, Title: topic.Title, Size: len(topic.Questions)})
		b.byID[topic.ID] = topic.Questions
	}
	return b, nil
}

// Load reads a catalog file and builds a bank from it.
func Load(path string, opts Options) (*Bank, error) {
	catalog, err := question.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	b, err := New(catalog, opts)
	if err != nil {
		return nil, fmt.Errorf("build bank from %s: %w", path, err)
	}
	return b, nil
}

// ListTopics returns topic identifiers in catalog order.
func (b *Bank) ListTopics() []string {
	ids := make([]string, 0, len(b.topics))
	for _, topic := range b.topics {
		ids = append(ids, topic.ID)
	}
	return ids
}

// Topics returns topic descriptions in catalog order.
func (b *Bank) Topics() []Topic {
	return append([]Topic(nil), b.topics...)
}

// Lookup returns the description of a topic.
func (b *Bank) Lookup(topic string) (Topic, bool) {
	for _, candidate := range b.topics {
		if candidate.ID == topic {
			return candidate, true
		}
	}
	return Topic{}, false
}

// QuestionCount returns the number of questions across all topics.
func (b *Bank) QuestionCount() int {
	total := 0
	for _, topic := range b.topics {
		total += topic.Size
	}
	return total
}

// Sample draws min(count, population) distinct questions from a topic in random order.
// Unknown topics and non-positive counts yield an empty result.
func (b *Bank) Sample(topic string, count int) []question.Question {
	population := b.byID[topic]
	if count <= 0 || len(population) == 0 {
		return []question.Question{}
	}
	count = min(count, len(population))

	// Partial Fisher-Yates over an index permutation; the catalog itself is never reordered.
	indexes := make([]int, len(population))
	for i := range indexes {
		indexes[i] = i
	}
	drawn := make([]question.Question, 0, count)
	for i := 0; i < count; i++ {
		j := i + b.rng.IntN(len(indexes)-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
		drawn = append(drawn, population[indexes[i]].Clone())
	}
	return drawn
}
