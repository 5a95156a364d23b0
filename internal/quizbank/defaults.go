package quizbank

// DefaultQuestions is the built-in aptitude catalog used when no external
// bank file is configured.
var DefaultQuestions = []Question{
	{ID: 1, Category: "Math", Text: "What is 15% of 200?", Options: []string{"20", "25", "30", "35"}, Answer: []string{"30"}},
	{ID: 2, Category: "Math", Text: "If x + 3 = 7, what is x?", Options: []string{"3", "4", "5", "6"}, Answer: []string{"4"}},
	{ID: 3, Category: "Math", Text: "Find the next number: 2, 4, 8, 16, ?", Options: []string{"18", "24", "32", "20"}, Answer: []string{"32"}},
	{ID: 4, Category: "Reasoning", Text: "Find the odd one out: 2, 5, 7, 9", Options: []string{"2", "5", "7", "9"}, Answer: []string{"2"}},
	{ID: 5, Category: "Reasoning", Text: "If all Bloops are Razzies and all Razzies are Lazzies, are all Bloops Lazzies?", Options: []string{"Yes", "No"}, Answer: []string{"Yes"}},
	{ID: 6, Category: "Verbal", Text: "Choose the correct synonym of 'Abundant'", Options: []string{"Scarce", "Plentiful", "Rare", "Little"}, Answer: []string{"Plentiful"}},
	{ID: 7, Category: "Verbal", Text: "Choose the correct antonym of 'Scarce'", Options: []string{"Plentiful", "Little", "Rare", "Tiny"}, Answer: []string{"Plentiful"}},
}

// DefaultBank builds the built-in catalog. It panics only on a programming
// error in DefaultQuestions itself.
func DefaultBank() *Bank {
	b, err := NewBank(DefaultQuestions)
	if err != nil {
		panic(err)
	}
	return b
}
