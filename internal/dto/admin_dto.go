package dto

import (
	"time"

	"github.com/itianclub/aptitude-quiz/internal/model"
)

// LeaderboardEntryDTO is one row of the admin leaderboard, ordered by score.
type LeaderboardEntryDTO struct {
	ID             uint                 `json:"id"`
	Email          string               `json:"email"`
	Name           string               `json:"name"`
	Score          int                  `json:"score"`
	CategoryScores model.CategoryScores `json:"category_scores"`
	ProfilePic     string               `json:"profile_pic,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

// LeaderboardDTO wraps the rows for the admin view.
type LeaderboardDTO struct {
	Entries []LeaderboardEntryDTO `json:"data"`
}
