package model

// QuizQuestion is the presented snapshot of a bank question: options already
// shuffled for one participant. The snapshot, not the bank, is what gets
// persisted at submission so grading stays reproducible.
type QuizQuestion struct {
	ID       uint     `json:"id"`
	Category string   `json:"category"`
	Text     string   `json:"question"`
	Options  []string `json:"options"`
	Answer   []string `json:"answer"`
	Multiple bool     `json:"multiple,omitempty"`
}

// AnswerSet maps a question id (stringified, as it round-trips through JSON
// and form posts) to the option labels the participant selected.
type AnswerSet map[string][]string

// CategoryScores counts correct answers per category.
type CategoryScores map[string]int
