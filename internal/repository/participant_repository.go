package repository

import (
	"errors"

	"github.com/itianclub/aptitude-quiz/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrAlreadySubmitted is returned when the conditional quiz write finds the
// participant has already submitted. Exactly one submission can ever win.
var ErrAlreadySubmitted = errors.New("quiz already submitted")

type ParticipantRepository interface {
	Create(participant *model.Participant) error
	FindByEmail(email string) (*model.Participant, error)
	FindByID(id uint) (*model.Participant, error)
	// SubmitQuiz atomically persists the graded submission. The UPDATE is
	// guarded on quiz_submitted still being false at write time, so a
	// concurrent double submit loses with ErrAlreadySubmitted instead of
	// overwriting the winner's data.
	SubmitQuiz(id uint, answers, questions, categoryScores datatypes.JSON, score int) error
	FindSubmittedOrdered() ([]model.Participant, error)
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(participant *model.Participant) error {
	return r.db.Create(participant).Error
}

func (r *participantRepository) FindByEmail(email string) (*model.Participant, error) {
	var participant model.Participant
	if err := r.db.Where("email = ?", email).First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) FindByID(id uint) (*model.Participant, error) {
	var participant model.Participant
	if err := r.db.First(&participant, id).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) SubmitQuiz(id uint, answers, questions, categoryScores datatypes.JSON, score int) error {
	res := r.db.Model(&model.Participant{}).
		Where("id = ? AND quiz_submitted = ?", id, false).
		Updates(map[string]interface{}{
			"answers":         answers,
			"questions":       questions,
			"category_scores": categoryScores,
			"score":           score,
			"quiz_submitted":  true,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadySubmitted
	}
	return nil
}

func (r *participantRepository) FindSubmittedOrdered() ([]model.Participant, error) {
	var participants []model.Participant
	err := r.db.Where("quiz_submitted = ?", true).
		Order("score DESC, updated_at ASC").
		Find(&participants).Error
	return participants, err
}
