package dto

import (
	"time"

	"github.com/itianclub/aptitude-quiz/internal/model"
)

// ProfileRequest carries the academic profile form. Validation (branch set,
// year in range, urn-or-crn present) happens in the service so failures come
// back as field-level messages.
type ProfileRequest struct {
	URN    string `json:"urn"`
	CRN    string `json:"crn"`
	Branch string `json:"branch"`
	Year   int    `json:"year"`
}

// ParticipantDTO is the profile view of a participant record.
type ParticipantDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ProfilePic    string    `json:"profile_pic,omitempty"`
	URN           *string   `json:"urn,omitempty"`
	CRN           *string   `json:"crn,omitempty"`
	Branch        string    `json:"branch"`
	Year          int       `json:"year"`
	QuizSubmitted bool      `json:"quiz_submitted"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuizQuestionDTO is a presented question with the correct answer stripped.
type QuizQuestionDTO struct {
	ID       uint     `json:"id"`
	Category string   `json:"category"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Multiple bool     `json:"multiple,omitempty"`
}

// QuizViewDTO is one freshly assembled quiz page.
type QuizViewDTO struct {
	Questions    []QuizQuestionDTO `json:"questions"`
	TimerSeconds int               `json:"timer_seconds"`
}

// InstructionsDTO feeds the pre-quiz instructions page.
type InstructionsDTO struct {
	UserName      string `json:"user_name"`
	QuestionCount int    `json:"question_count"`
	TimerSeconds  int    `json:"timer_seconds"`
}

// SubmitQuizRequest carries the participant's selections, keyed by question
// id. TimeUp marks an auto-submit fired by the countdown.
type SubmitQuizRequest struct {
	Answers model.AnswerSet `json:"answers" binding:"required"`
	TimeUp  bool            `json:"time_up"`
}

// QuizResultDTO is the terminal results view.
type QuizResultDTO struct {
	Name           string               `json:"name"`
	Score          int                  `json:"score"`
	Total          int                  `json:"total"`
	CategoryScores model.CategoryScores `json:"category_scores"`
	TimeUp         bool                 `json:"time_up,omitempty"`
	SubmittedAt    time.Time            `json:"submitted_at"`
}

// SessionDTO describes the caller's session and lifecycle position.
type SessionDTO struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	State   string `json:"state"`
}
