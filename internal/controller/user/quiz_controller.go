package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itianclub/aptitude-quiz/internal/auth"
	"github.com/itianclub/aptitude-quiz/internal/dto"
	"github.com/itianclub/aptitude-quiz/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizSession service.QuizSessionService
}

func NewQuizController(quizSession service.QuizSessionService) *QuizController {
	return &QuizController{quizSession: quizSession}
}

// CompleteProfile godoc
// @Summary Complete the academic profile
// @Description Creates the participant record from the session identity plus
// @Description the submitted fields. Idempotent: an existing record is
// @Description returned untouched.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param profile body dto.ProfileRequest true "Profile fields"
// @Success 200 {object} dto.ParticipantDTO "Profile already existed"
// @Success 201 {object} dto.ParticipantDTO "Profile created"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/profile [post]
func (c *QuizController) CompleteProfile(ctx *gin.Context) {
	var req dto.ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	participant, created, err := c.quizSession.CompleteProfile(auth.IdentityFrom(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if created {
		ctx.JSON(http.StatusCreated, participant)
		return
	}
	ctx.JSON(http.StatusOK, participant)
}

// Instructions godoc
// @Summary Quiz instructions and metadata
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.InstructionsDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/instructions [get]
func (c *QuizController) Instructions(ctx *gin.Context) {
	instructions, err := c.quizSession.Instructions(auth.IdentityFrom(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, instructions)
}

// GetQuiz godoc
// @Summary Serve a freshly assembled quiz
// @Description Draws a new randomized selection on every call while the quiz
// @Description is unsubmitted. Correct answers are not included.
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.QuizViewDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already submitted"
// @Router /api/v1/quiz [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	view, err := c.quizSession.StartQuiz(auth.IdentityFrom(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description One-way transition: the first accepted submission fixes the
// @Description question snapshot, score and category scores forever.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param submission body dto.SubmitQuizRequest true "Submitted answers"
// @Success 200 {object} dto.QuizResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already submitted"
// @Router /api/v1/quiz [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req dto.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.quizSession.SubmitQuiz(auth.IdentityFrom(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Results godoc
// @Summary Terminal results view
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.QuizResultDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Not submitted yet"
// @Router /api/v1/results [get]
func (c *QuizController) Results(ctx *gin.Context) {
	result, err := c.quizSession.Results(auth.IdentityFrom(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// EmailResults godoc
// @Summary Schedule the detailed result e-mail
// @Description Fire-and-forget: the payload is resolved now and delivered
// @Description later by the dispatcher.
// @Tags Quiz
// @Produce json
// @Success 202 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/results/email [post]
func (c *QuizController) EmailResults(ctx *gin.Context) {
	if err := c.quizSession.ScheduleResultEmail(auth.IdentityFrom(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusAccepted, dto.MessageResponse{Message: "Your detailed quiz results will be emailed to you within 1 hour"})
}

// respondError maps service failures onto the HTTP surface. Guard trips come
// back with a redirect hint to the step the caller should be on; only
// genuine store failures turn into 500s.
func respondError(ctx *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: validationErr.Message,
			Details: []string{validationErr.Field},
		})
	case errors.Is(err, service.ErrNotAuthenticated):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Message:  "Please login to access this page",
			Redirect: "/auth/google/login",
		})
	case errors.Is(err, service.ErrNotProfiled):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Message:  "Please complete your profile first",
			Redirect: "/api/v1/profile",
		})
	case errors.Is(err, service.ErrAlreadySubmitted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Message:  "You have already completed the quiz",
			Redirect: "/api/v1/results",
		})
	case errors.Is(err, service.ErrNotSubmitted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Message:  "Please complete the quiz first",
			Redirect: "/api/v1/quiz",
		})
	default:
		log.Error().Err(err).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "An error occurred. Please try again"})
	}
}
