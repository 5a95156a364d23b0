package service

import (
	"math/rand"

	"github.com/itianclub/aptitude-quiz/config"
	"github.com/itianclub/aptitude-quiz/internal/model"
	"github.com/itianclub/aptitude-quiz/internal/quizbank"
)

// QuizAssemblerService draws a fresh randomized question selection from the
// bank. Every call re-randomizes; nothing is fixed until submission persists
// the snapshot.
type QuizAssemblerService interface {
	Assemble() ([]model.QuizQuestion, error)
}

type quizAssemblerService struct {
	bank        *quizbank.Bank
	perCategory int
}

func NewQuizAssemblerService(bank *quizbank.Bank, cfg *config.Config) QuizAssemblerService {
	k := cfg.Quiz.QuestionsPerCategory
	if k < 1 {
		k = 2
	}
	return &quizAssemblerService{bank: bank, perCategory: k}
}

// Assemble samples min(k, n) distinct questions per category, shuffles each
// snapshot's options, then shuffles the concatenation so category order is
// not revealed. Empty categories are skipped rather than treated as errors.
func (s *quizAssemblerService) Assemble() ([]model.QuizQuestion, error) {
	var assembly []model.QuizQuestion

	for _, category := range s.bank.Categories() {
		pool := s.bank.Questions(category)
		n := s.perCategory
		if len(pool) < n {
			n = len(pool)
		}
		if n == 0 {
			continue
		}
		for _, idx := range rand.Perm(len(pool))[:n] {
			assembly = append(assembly, snapshotQuestion(pool[idx]))
		}
	}

	if len(assembly) == 0 {
		return nil, ErrEmptyBank
	}

	rand.Shuffle(len(assembly), func(i, j int) {
		assembly[i], assembly[j] = assembly[j], assembly[i]
	})
	return assembly, nil
}

// snapshotQuestion copies a bank question into a presentation snapshot with
// independently shuffled options. The correct answer is compared by value,
// so the permutation never affects grading.
func snapshotQuestion(q quizbank.Question) model.QuizQuestion {
	snapshot := model.QuizQuestion{
		ID:       q.ID,
		Category: q.Category,
		Text:     q.Text,
		Options:  append([]string(nil), q.Options...),
		Answer:   append([]string(nil), q.Answer...),
		Multiple: q.Multiple,
	}
	rand.Shuffle(len(snapshot.Options), func(i, j int) {
		snapshot.Options[i], snapshot.Options[j] = snapshot.Options[j], snapshot.Options[i]
	})
	return snapshot
}
