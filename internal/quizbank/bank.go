package quizbank

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Question is one quiz item as it lives in the bank. The Answer labels must
// always be a subset of Options; multi-select questions carry Multiple=true
// and may have more than one correct label.
type Question struct {
	ID       uint     `json:"id"`
	Category string   `json:"category"`
	Text     string   `json:"question"`
	Options  []string `json:"options"`
	Answer   []string `json:"answer"`
	Multiple bool     `json:"multiple,omitempty"`
}

// Bank is the static categorized catalog questions are drawn from.
type Bank struct {
	byCategory map[string][]Question
}

// NewBank validates and indexes the given questions.
func NewBank(questions []Question) (*Bank, error) {
	byCategory := make(map[string][]Question)
	seen := make(map[uint]bool)

	for _, q := range questions {
		if q.Category == "" {
			return nil, fmt.Errorf("question %d has no category", q.ID)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d has no options", q.ID)
		}
		if len(q.Answer) == 0 {
			return nil, fmt.Errorf("question %d has no correct answer", q.ID)
		}
		if !q.Multiple && len(q.Answer) > 1 {
			return nil, fmt.Errorf("question %d has multiple answers but is not multi-select", q.ID)
		}
		optionSet := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			optionSet[o] = true
		}
		for _, a := range q.Answer {
			if !optionSet[a] {
				return nil, fmt.Errorf("question %d: answer %q is not among its options", q.ID, a)
			}
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
		byCategory[q.Category] = append(byCategory[q.Category], q)
	}

	return &Bank{byCategory: byCategory}, nil
}

// LoadFile reads a JSON array of questions from disk.
func LoadFile(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading question bank %s: %w", path, err)
	}
	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("parsing question bank %s: %w", path, err)
	}
	return NewBank(questions)
}

// Categories returns the category names in a stable order.
func (b *Bank) Categories() []string {
	names := make([]string, 0, len(b.byCategory))
	for c := range b.byCategory {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}

// Questions returns the questions of one category.
func (b *Bank) Questions(category string) []Question {
	return b.byCategory[category]
}

// Size returns the total number of questions across all categories.
func (b *Bank) Size() int {
	n := 0
	for _, qs := range b.byCategory {
		n += len(qs)
	}
	return n
}
