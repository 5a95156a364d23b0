package quizbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBankIndexesByCategory(t *testing.T) {
	bank, err := NewBank([]Question{
		{ID: 1, Category: "Math", Text: "1+1?", Options: []string{"1", "2"}, Answer: []string{"2"}},
		{ID: 2, Category: "Math", Text: "2+2?", Options: []string{"3", "4"}, Answer: []string{"4"}},
		{ID: 3, Category: "Verbal", Text: "Synonym of big?", Options: []string{"Large", "Tiny"}, Answer: []string{"Large"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Math", "Verbal"}, bank.Categories())
	assert.Len(t, bank.Questions("Math"), 2)
	assert.Len(t, bank.Questions("Verbal"), 1)
	assert.Equal(t, 3, bank.Size())
}

func TestNewBankRejectsInvalidQuestions(t *testing.T) {
	cases := []struct {
		name     string
		question Question
	}{
		{"missing category", Question{ID: 1, Options: []string{"a"}, Answer: []string{"a"}}},
		{"no options", Question{ID: 1, Category: "Math", Answer: []string{"a"}}},
		{"no answer", Question{ID: 1, Category: "Math", Options: []string{"a"}}},
		{"answer not among options", Question{ID: 1, Category: "Math", Options: []string{"a", "b"}, Answer: []string{"c"}}},
		{"multiple answers without flag", Question{ID: 1, Category: "Math", Options: []string{"a", "b"}, Answer: []string{"a", "b"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBank([]Question{tc.question})
			assert.Error(t, err)
		})
	}
}

func TestNewBankRejectsDuplicateIDs(t *testing.T) {
	_, err := NewBank([]Question{
		{ID: 1, Category: "Math", Text: "a", Options: []string{"x"}, Answer: []string{"x"}},
		{ID: 1, Category: "Verbal", Text: "b", Options: []string{"y"}, Answer: []string{"y"}},
	})
	assert.Error(t, err)
}

func TestNewBankAcceptsMultiSelect(t *testing.T) {
	bank, err := NewBank([]Question{
		{ID: 1, Category: "Math", Text: "Pick evens", Options: []string{"1", "2", "3", "4"}, Answer: []string{"2", "4"}, Multiple: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, bank.Size())
}

func TestDefaultBank(t *testing.T) {
	bank := DefaultBank()
	assert.Equal(t, []string{"Math", "Reasoning", "Verbal"}, bank.Categories())
	assert.Equal(t, 7, bank.Size())
}
