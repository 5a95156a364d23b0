package service

import (
	"encoding/json"
	"fmt"

	"github.com/itianclub/aptitude-quiz/internal/dto"
	"github.com/itianclub/aptitude-quiz/internal/model"
	"github.com/itianclub/aptitude-quiz/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// LeaderboardService produces the admin scoreboard over submitted records.
type LeaderboardService interface {
	Leaderboard() (*dto.LeaderboardDTO, error)
}

type leaderboardService struct {
	participantRepo repository.ParticipantRepository
}

func NewLeaderboardService(participantRepo repository.ParticipantRepository) LeaderboardService {
	return &leaderboardService{participantRepo: participantRepo}
}

func (s *leaderboardService) Leaderboard() (*dto.LeaderboardDTO, error) {
	participants, err := s.participantRepo.FindSubmittedOrdered()
	if err != nil {
		log.Error().Err(err).Msg("Leaderboard: failed to load submitted participants")
		return nil, fmt.Errorf("loading leaderboard: %w", err)
	}

	board := &dto.LeaderboardDTO{Entries: []dto.LeaderboardEntryDTO{}}
	for _, p := range participants {
		var entry dto.LeaderboardEntryDTO
		if err := copier.Copy(&entry, &p); err != nil {
			log.Error().Err(err).Uint("participant_id", p.ID).Msg("Leaderboard: failed to copy entry")
			continue
		}
		entry.CategoryScores = model.CategoryScores{}
		if len(p.CategoryScores) > 0 {
			if err := json.Unmarshal(p.CategoryScores, &entry.CategoryScores); err != nil {
				log.Warn().Err(err).Uint("participant_id", p.ID).Msg("Leaderboard: bad category scores blob")
			}
		}
		board.Entries = append(board.Entries, entry)
	}
	return board, nil
}
