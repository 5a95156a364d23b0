package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/itianclub/aptitude-quiz/config"
	"github.com/itianclub/aptitude-quiz/internal/auth"
	"github.com/itianclub/aptitude-quiz/internal/dto"
	"github.com/itianclub/aptitude-quiz/internal/model"
	"github.com/itianclub/aptitude-quiz/internal/notify"
	"github.com/itianclub/aptitude-quiz/internal/quizbank"
	"github.com/itianclub/aptitude-quiz/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SessionState is the participant's position in the quiz lifecycle. The
// quiz-in-progress phase is transient and re-entrant: every quiz view before
// submission assembles afresh, so it is never inferred from stored state.
type SessionState string

const (
	StateAnonymous     SessionState = "anonymous"
	StateAuthenticated SessionState = "authenticated"
	StateProfiled      SessionState = "profiled"
	StateSubmitted     SessionState = "submitted"
)

// QuizSessionService orchestrates the participant lifecycle: profile
// completion, quiz assembly, the one-shot submission, results, and the
// deferred result email. Guard violations never mutate state.
type QuizSessionService interface {
	ResolveState(identity *auth.Identity) (SessionState, *model.Participant, error)
	CompleteProfile(identity *auth.Identity, req dto.ProfileRequest) (*dto.ParticipantDTO, bool, error)
	Instructions(identity *auth.Identity) (*dto.InstructionsDTO, error)
	StartQuiz(identity *auth.Identity) (*dto.QuizViewDTO, error)
	SubmitQuiz(identity *auth.Identity, req dto.SubmitQuizRequest) (*dto.QuizResultDTO, error)
	Results(identity *auth.Identity) (*dto.QuizResultDTO, error)
	ScheduleResultEmail(identity *auth.Identity) error
}

type quizSessionService struct {
	participantRepo repository.ParticipantRepository
	assembler       QuizAssemblerService
	scorer          ScoringService
	dispatcher      notify.Dispatcher
	bank            *quizbank.Bank
	cfg             *config.Config
}

func NewQuizSessionService(
	participantRepo repository.ParticipantRepository,
	assembler QuizAssemblerService,
	scorer ScoringService,
	dispatcher notify.Dispatcher,
	bank *quizbank.Bank,
	cfg *config.Config,
) QuizSessionService {
	return &quizSessionService{
		participantRepo: participantRepo,
		assembler:       assembler,
		scorer:          scorer,
		dispatcher:      dispatcher,
		bank:            bank,
		cfg:             cfg,
	}
}

// ResolveState infers the lifecycle position from the session and the stored
// record. Used by the login callback and the /me endpoint to route the user
// to the right step.
func (s *quizSessionService) ResolveState(identity *auth.Identity) (SessionState, *model.Participant, error) {
	if identity == nil {
		return StateAnonymous, nil, nil
	}
	participant, err := s.participantRepo.FindByEmail(identity.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StateAuthenticated, nil, nil
		}
		return StateAuthenticated, nil, fmt.Errorf("loading participant: %w", err)
	}
	if participant.QuizSubmitted {
		return StateSubmitted, participant, nil
	}
	return StateProfiled, participant, nil
}

// CompleteProfile creates the participant record from the session identity
// plus the submitted profile fields. If a record already exists for this
// email the call short-circuits idempotently: nothing is overwritten and the
// existing record is returned with created=false.
func (s *quizSessionService) CompleteProfile(identity *auth.Identity, req dto.ProfileRequest) (*dto.ParticipantDTO, bool, error) {
	if identity == nil {
		return nil, false, ErrNotAuthenticated
	}

	existing, err := s.participantRepo.FindByEmail(identity.Email)
	if err == nil {
		return toParticipantDTO(existing), false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("checking existing participant: %w", err)
	}

	urn := strings.TrimSpace(req.URN)
	crn := strings.TrimSpace(req.CRN)
	if strings.TrimSpace(req.Branch) == "" {
		return nil, false, &ValidationError{Field: "branch", Message: "Please select your branch"}
	}
	if req.Year < 1 || req.Year > 4 {
		return nil, false, &ValidationError{Field: "year", Message: "Please select a valid year"}
	}
	if urn == "" && crn == "" {
		return nil, false, &ValidationError{Field: "urn", Message: "Please enter either URN or CRN"}
	}

	participant := &model.Participant{
		GoogleID:   identity.GoogleID,
		Name:       identity.Name,
		Email:      identity.Email,
		ProfilePic: identity.Picture,
		Branch:     strings.TrimSpace(req.Branch),
		Year:       req.Year,
	}
	if urn != "" {
		participant.URN = &urn
	}
	if crn != "" {
		participant.CRN = &crn
	}

	if err := s.participantRepo.Create(participant); err != nil {
		// A concurrent request may have created the record first; the
		// unique index on email makes that loser land here.
		if again, findErr := s.participantRepo.FindByEmail(identity.Email); findErr == nil {
			return toParticipantDTO(again), false, nil
		}
		log.Error().Err(err).Str("email", identity.Email).Msg("CompleteProfile: failed to create participant")
		return nil, false, fmt.Errorf("creating participant: %w", err)
	}

	log.Info().Str("email", participant.Email).Str("branch", participant.Branch).Msg("Participant profile created")
	return toParticipantDTO(participant), true, nil
}

// Instructions gates the pre-quiz page: profile required, quiz not yet
// submitted.
func (s *quizSessionService) Instructions(identity *auth.Identity) (*dto.InstructionsDTO, error) {
	participant, err := s.participantFor(identity)
	if err != nil {
		return nil, err
	}
	if participant.QuizSubmitted {
		return nil, ErrAlreadySubmitted
	}

	k := s.cfg.Quiz.QuestionsPerCategory
	if k < 1 {
		k = 2
	}
	count := 0
	for _, category := range s.bank.Categories() {
		n := len(s.bank.Questions(category))
		if n > k {
			n = k
		}
		count += n
	}

	return &dto.InstructionsDTO{
		UserName:      participant.Name,
		QuestionCount: count,
		TimerSeconds:  s.cfg.Quiz.TimerSeconds,
	}, nil
}

// StartQuiz serves a freshly randomized assembly. Re-entrant: reloading the
// page before submission draws a new selection every time; what was asked is
// only fixed at submission.
func (s *quizSessionService) StartQuiz(identity *auth.Identity) (*dto.QuizViewDTO, error) {
	participant, err := s.participantFor(identity)
	if err != nil {
		return nil, err
	}
	if participant.QuizSubmitted {
		return nil, ErrAlreadySubmitted
	}

	assembly, err := s.assembler.Assemble()
	if err != nil {
		return nil, err
	}

	view := &dto.QuizViewDTO{TimerSeconds: s.cfg.Quiz.TimerSeconds}
	for _, q := range assembly {
		view.Questions = append(view.Questions, dto.QuizQuestionDTO{
			ID:       q.ID,
			Category: q.Category,
			Question: q.Text,
			Options:  q.Options,
			Multiple: q.Multiple,
		})
	}
	return view, nil
}

// SubmitQuiz is the one-way transition into the terminal state. It assembles
// the authoritative question set, grades the submitted answers against it,
// and persists answers, questions, score and category scores in one
// conditional write. A concurrent double submit loses cleanly.
func (s *quizSessionService) SubmitQuiz(identity *auth.Identity, req dto.SubmitQuizRequest) (*dto.QuizResultDTO, error) {
	participant, err := s.participantFor(identity)
	if err != nil {
		return nil, err
	}
	if participant.QuizSubmitted {
		return nil, ErrAlreadySubmitted
	}

	assembly, err := s.assembler.Assemble()
	if err != nil {
		return nil, err
	}

	answers := req.Answers
	if answers == nil {
		answers = model.AnswerSet{}
	}
	report := s.scorer.Grade(assembly, answers)

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("encoding answers: %w", err)
	}
	questionsJSON, err := json.Marshal(assembly)
	if err != nil {
		return nil, fmt.Errorf("encoding questions: %w", err)
	}
	categoryJSON, err := json.Marshal(report.CategoryScores)
	if err != nil {
		return nil, fmt.Errorf("encoding category scores: %w", err)
	}

	if err := s.participantRepo.SubmitQuiz(participant.ID, answersJSON, questionsJSON, categoryJSON, report.Score); err != nil {
		if errors.Is(err, repository.ErrAlreadySubmitted) {
			log.Warn().Str("email", participant.Email).Msg("SubmitQuiz: double submit rejected")
			return nil, ErrAlreadySubmitted
		}
		log.Error().Err(err).Str("email", participant.Email).Msg("SubmitQuiz: failed to persist submission")
		return nil, fmt.Errorf("persisting submission: %w", err)
	}

	log.Info().
		Str("email", participant.Email).
		Int("score", report.Score).
		Int("total", report.Total).
		Bool("time_up", req.TimeUp).
		Msg("Quiz submitted")

	return &dto.QuizResultDTO{
		Name:           participant.Name,
		Score:          report.Score,
		Total:          report.Total,
		CategoryScores: report.CategoryScores,
		TimeUp:         req.TimeUp,
		SubmittedAt:    time.Now().UTC(),
	}, nil
}

// Results is the read-only terminal view.
func (s *quizSessionService) Results(identity *auth.Identity) (*dto.QuizResultDTO, error) {
	participant, err := s.participantFor(identity)
	if err != nil {
		return nil, err
	}
	if !participant.QuizSubmitted {
		return nil, ErrNotSubmitted
	}

	var categoryScores model.CategoryScores
	if len(participant.CategoryScores) > 0 {
		if err := json.Unmarshal(participant.CategoryScores, &categoryScores); err != nil {
			return nil, fmt.Errorf("decoding category scores: %w", err)
		}
	}
	var questions []model.QuizQuestion
	if len(participant.Questions) > 0 {
		if err := json.Unmarshal(participant.Questions, &questions); err != nil {
			return nil, fmt.Errorf("decoding questions: %w", err)
		}
	}

	return &dto.QuizResultDTO{
		Name:           participant.Name,
		Score:          participant.Score,
		Total:          len(questions),
		CategoryScores: categoryScores,
		SubmittedAt:    participant.UpdatedAt,
	}, nil
}

// ScheduleResultEmail hands a fully resolved payload to the dispatcher. The
// stored snapshot is re-graded to recover per-question verdicts, so delivery
// needs no further reads from shared state. A scheduling failure is logged
// but never fails the triggering request.
func (s *quizSessionService) ScheduleResultEmail(identity *auth.Identity) error {
	participant, err := s.participantFor(identity)
	if err != nil {
		return err
	}
	if !participant.QuizSubmitted {
		return ErrNotSubmitted
	}

	var questions []model.QuizQuestion
	if err := json.Unmarshal(participant.Questions, &questions); err != nil {
		return fmt.Errorf("decoding stored questions: %w", err)
	}
	if len(questions) == 0 {
		return fmt.Errorf("no stored questions for participant %d", participant.ID)
	}
	var answers model.AnswerSet
	if err := json.Unmarshal(participant.Answers, &answers); err != nil {
		return fmt.Errorf("decoding stored answers: %w", err)
	}

	report := s.scorer.Grade(questions, answers)
	verdicts := make(map[uint]bool, len(report.Results))
	for _, r := range report.Results {
		verdicts[r.QuestionID] = r.Correct
	}

	delay := time.Duration(s.cfg.Quiz.ResultEmailDelayMin) * time.Minute
	job := notify.ResultJob{
		ID:        uuid.NewString(),
		Recipient: participant.Email,
		Name:      participant.Name,
		Questions: questions,
		Answers:   answers,
		Verdicts:  verdicts,
		Score:     participant.Score,
		NotBefore: time.Now().Add(delay),
	}
	if err := s.dispatcher.Schedule(job); err != nil {
		log.Error().Err(err).Str("email", participant.Email).Msg("ScheduleResultEmail: scheduling failed")
	}
	return nil
}

func (s *quizSessionService) participantFor(identity *auth.Identity) (*model.Participant, error) {
	if identity == nil {
		return nil, ErrNotAuthenticated
	}
	participant, err := s.participantRepo.FindByEmail(identity.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotProfiled
		}
		return nil, fmt.Errorf("loading participant: %w", err)
	}
	return participant, nil
}

func toParticipantDTO(participant *model.Participant) *dto.ParticipantDTO {
	var out dto.ParticipantDTO
	if err := copier.Copy(&out, participant); err != nil {
		log.Error().Err(err).Msg("Failed to copy participant to DTO")
	}
	return &out
}
