package service

import (
	"errors"
	"fmt"

	"github.com/itianclub/aptitude-quiz/internal/repository"
)

var (
	// ErrNotAuthenticated is returned when no identity session is present.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotProfiled is returned when a later step is attempted before the
	// participant record exists.
	ErrNotProfiled = errors.New("profile not completed")
	// ErrAlreadySubmitted trips the one-shot guard; callers redirect to the
	// results view instead of re-scoring.
	ErrAlreadySubmitted = repository.ErrAlreadySubmitted
	// ErrNotSubmitted is returned when results are requested before the quiz
	// has been submitted.
	ErrNotSubmitted = errors.New("quiz not submitted yet")
	// ErrEmptyBank indicates the question bank has nothing to draw from.
	ErrEmptyBank = errors.New("question bank is empty")
)

// ValidationError reports a single invalid profile field. The participant
// stays in the prior state; the caller re-renders the form with the message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
