package service

import (
	"strconv"

	"github.com/itianclub/aptitude-quiz/internal/model"
)

// GradedQuestion is the verdict for a single presented question.
type GradedQuestion struct {
	QuestionID uint
	Category   string
	Submitted  []string
	Correct    bool
}

// ScoreReport aggregates grading over one assembly.
type ScoreReport struct {
	Score          int
	Total          int
	CategoryScores model.CategoryScores
	Results        []GradedQuestion
}

// ScoringService grades a submitted answer set against the assembly that was
// presented. Pure; no side effects.
type ScoringService interface {
	Grade(assembly []model.QuizQuestion, answers model.AnswerSet) ScoreReport
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

// Grade applies the marking rules: single-answer questions are correct iff
// the first submitted label equals the correct label; multi-select questions
// require exact set equality. A missing answer is simply wrong, never an
// error. Every category present in the assembly appears in CategoryScores.
func (s *scoringService) Grade(assembly []model.QuizQuestion, answers model.AnswerSet) ScoreReport {
	report := ScoreReport{
		Total:          len(assembly),
		CategoryScores: make(model.CategoryScores),
	}

	for _, q := range assembly {
		if _, ok := report.CategoryScores[q.Category]; !ok {
			report.CategoryScores[q.Category] = 0
		}

		submitted := answers[strconv.FormatUint(uint64(q.ID), 10)]
		correct := isCorrect(q, submitted)
		if correct {
			report.Score++
			report.CategoryScores[q.Category]++
		}
		report.Results = append(report.Results, GradedQuestion{
			QuestionID: q.ID,
			Category:   q.Category,
			Submitted:  submitted,
			Correct:    correct,
		})
	}
	return report
}

func isCorrect(q model.QuizQuestion, submitted []string) bool {
	if len(submitted) == 0 {
		return false
	}
	if q.Multiple {
		return equalSets(submitted, q.Answer)
	}
	return len(q.Answer) > 0 && submitted[0] == q.Answer[0]
}

func equalSets(a, b []string) bool {
	setA := make(map[string]bool, len(a))
	for _, v := range a {
		setA[v] = true
	}
	setB := make(map[string]bool, len(b))
	for _, v := range b {
		setB[v] = true
	}
	if len(setA) != len(setB) {
		return false
	}
	for v := range setA {
		if !setB[v] {
			return false
		}
	}
	return true
}
