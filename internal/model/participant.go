package model

import (
	"time"

	"gorm.io/datatypes"
)

// Participant is the single flat record kept per unique email. Identity
// fields are fixed at creation; the quiz fields stay null until the one
// allowed submission writes them together with QuizSubmitted=true.
type Participant struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	GoogleID       string         `json:"google_id" gorm:"size:150;uniqueIndex"`
	Name           string         `json:"name" gorm:"size:150"`
	Email          string         `json:"email" gorm:"size:150;uniqueIndex;not null"`
	ProfilePic     string         `json:"profile_pic" gorm:"size:300"`
	URN            *string        `json:"urn,omitempty" gorm:"size:50"`
	CRN            *string        `json:"crn,omitempty" gorm:"size:50"`
	Branch         string         `json:"branch" gorm:"size:50"`
	Year           int            `json:"year"`
	QuizSubmitted  bool           `json:"quiz_submitted" gorm:"not null;default:false"`
	Score          int            `json:"score" gorm:"not null;default:0"`
	Answers        datatypes.JSON `json:"answers,omitempty" gorm:"type:jsonb"`
	Questions      datatypes.JSON `json:"questions,omitempty" gorm:"type:jsonb"`
	CategoryScores datatypes.JSON `json:"category_scores,omitempty" gorm:"type:jsonb"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
