package service

import (
	"sort"
	"testing"

	"github.com/itianclub/aptitude-quiz/config"
	"github.com/itianclub/aptitude-quiz/internal/quizbank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Quiz: config.Quiz{
			QuestionsPerCategory: 2,
			TimerSeconds:         300,
			ResultEmailDelayMin:  60,
		},
	}
}

func bankWithSizes(t *testing.T, sizes map[string]int) *quizbank.Bank {
	t.Helper()
	var questions []quizbank.Question
	id := uint(0)
	for category, n := range sizes {
		for i := 0; i < n; i++ {
			id++
			questions = append(questions, quizbank.Question{
				ID:       id,
				Category: category,
				Text:     "q",
				Options:  []string{"a", "b", "c"},
				Answer:   []string{"a"},
			})
		}
	}
	bank, err := quizbank.NewBank(questions)
	require.NoError(t, err)
	return bank
}

func TestAssembleDrawsMinKPerCategory(t *testing.T) {
	bank := bankWithSizes(t, map[string]int{"Math": 3, "Reasoning": 2, "Verbal": 5})
	assembler := NewQuizAssemblerService(bank, testConfig())

	assembly, err := assembler.Assemble()
	require.NoError(t, err)

	// min(2,3)+min(2,2)+min(2,5) = 6, every id unique
	assert.Len(t, assembly, 6)
	seen := make(map[uint]bool)
	perCategory := make(map[string]int)
	for _, q := range assembly {
		assert.False(t, seen[q.ID], "question id %d drawn twice", q.ID)
		seen[q.ID] = true
		perCategory[q.Category]++
	}
	assert.Equal(t, map[string]int{"Math": 2, "Reasoning": 2, "Verbal": 2}, perCategory)
}

func TestAssembleShufflesOptionsWithoutLosingAny(t *testing.T) {
	bank, err := quizbank.NewBank([]quizbank.Question{
		{ID: 1, Category: "Math", Text: "q", Options: []string{"a", "b", "c", "d"}, Answer: []string{"b"}},
	})
	require.NoError(t, err)
	assembler := NewQuizAssemblerService(bank, testConfig())

	assembly, err := assembler.Assemble()
	require.NoError(t, err)
	require.Len(t, assembly, 1)

	got := append([]string(nil), assembly[0].Options...)
	sort.Strings(got)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
	// the correct answer travels by value, untouched by the permutation
	assert.Equal(t, []string{"b"}, assembly[0].Answer)
}

func TestAssembleSnapshotsAreIndependentOfBank(t *testing.T) {
	bank, err := quizbank.NewBank([]quizbank.Question{
		{ID: 1, Category: "Math", Text: "q", Options: []string{"a", "b", "c", "d"}, Answer: []string{"a"}},
	})
	require.NoError(t, err)
	assembler := NewQuizAssemblerService(bank, testConfig())

	assembly, err := assembler.Assemble()
	require.NoError(t, err)

	assembly[0].Options[0] = "mutated"
	assert.Equal(t, []string{"a", "b", "c", "d"}, bank.Questions("Math")[0].Options)
}

func TestAssembleEmptyBank(t *testing.T) {
	bank, err := quizbank.NewBank(nil)
	require.NoError(t, err)
	assembler := NewQuizAssemblerService(bank, testConfig())

	_, err = assembler.Assemble()
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestAssembleSmallCategoryYieldsFewer(t *testing.T) {
	bank := bankWithSizes(t, map[string]int{"Math": 1})
	assembler := NewQuizAssemblerService(bank, testConfig())

	assembly, err := assembler.Assemble()
	require.NoError(t, err)
	assert.Len(t, assembly, 1)
}
