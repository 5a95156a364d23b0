package service

import (
	"testing"

	"github.com/itianclub/aptitude-quiz/internal/model"
	"github.com/stretchr/testify/assert"
)

func singleAnswerQuestion(id uint, category, correct string) model.QuizQuestion {
	return model.QuizQuestion{
		ID:       id,
		Category: category,
		Text:     "q",
		Options:  []string{"A", "B", "C"},
		Answer:   []string{correct},
	}
}

func TestGradeSingleAnswer(t *testing.T) {
	scorer := NewScoringService()
	assembly := []model.QuizQuestion{singleAnswerQuestion(1, "Math", "A")}

	cases := []struct {
		name      string
		submitted []string
		correct   bool
	}{
		{"exact match", []string{"A"}, true},
		{"wrong label", []string{"B"}, false},
		{"empty submission", []string{}, false},
		{"missing answer", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			answers := model.AnswerSet{}
			if tc.submitted != nil {
				answers["1"] = tc.submitted
			}
			report := scorer.Grade(assembly, answers)
			assert.Equal(t, tc.correct, report.Results[0].Correct)
			if tc.correct {
				assert.Equal(t, 1, report.Score)
			} else {
				assert.Equal(t, 0, report.Score)
			}
		})
	}
}

func TestGradeMultiSelect(t *testing.T) {
	scorer := NewScoringService()
	assembly := []model.QuizQuestion{{
		ID:       7,
		Category: "Reasoning",
		Text:     "q",
		Options:  []string{"A", "B", "C"},
		Answer:   []string{"A", "C"},
		Multiple: true,
	}}

	cases := []struct {
		name      string
		submitted []string
		correct   bool
	}{
		{"exact set in order", []string{"A", "C"}, true},
		{"exact set out of order", []string{"C", "A"}, true},
		{"missing selection", []string{"A"}, false},
		{"extra selection", []string{"A", "B", "C"}, false},
		{"empty", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := scorer.Grade(assembly, model.AnswerSet{"7": tc.submitted})
			assert.Equal(t, tc.correct, report.Results[0].Correct)
		})
	}
}

func TestGradeCategoryScoresSumToScore(t *testing.T) {
	scorer := NewScoringService()
	assembly := []model.QuizQuestion{
		singleAnswerQuestion(1, "Math", "A"),
		singleAnswerQuestion(2, "Math", "B"),
		singleAnswerQuestion(3, "Verbal", "C"),
		singleAnswerQuestion(4, "Reasoning", "A"),
	}
	answers := model.AnswerSet{
		"1": {"A"}, // correct
		"2": {"A"}, // wrong
		"3": {"C"}, // correct
		// 4 unanswered
	}

	report := scorer.Grade(assembly, answers)

	assert.Equal(t, 2, report.Score)
	assert.Equal(t, 4, report.Total)

	sum := 0
	for _, n := range report.CategoryScores {
		sum += n
	}
	assert.Equal(t, report.Score, sum)

	// every category in the assembly appears, even at zero
	assert.Equal(t, model.CategoryScores{"Math": 1, "Verbal": 1, "Reasoning": 0}, report.CategoryScores)
}

func TestGradeIgnoresAnswersForUnknownQuestions(t *testing.T) {
	scorer := NewScoringService()
	assembly := []model.QuizQuestion{singleAnswerQuestion(1, "Math", "A")}

	report := scorer.Grade(assembly, model.AnswerSet{"1": {"A"}, "99": {"B"}})
	assert.Equal(t, 1, report.Score)
	assert.Len(t, report.Results, 1)
}
