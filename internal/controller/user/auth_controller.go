package user

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/itianclub/aptitude-quiz/internal/auth"
	"github.com/itianclub/aptitude-quiz/internal/dto"
	"github.com/itianclub/aptitude-quiz/internal/service"
	"github.com/rs/zerolog/log"
)

const stateCookie = "quiz_oauth_state"

type AuthController struct {
	google      *auth.GoogleAuthenticator
	sessions    *auth.SessionManager
	quizSession service.QuizSessionService
}

func NewAuthController(google *auth.GoogleAuthenticator, sessions *auth.SessionManager, quizSession service.QuizSessionService) *AuthController {
	return &AuthController{google: google, sessions: sessions, quizSession: quizSession}
}

// GoogleLogin godoc
// @Summary Start the Google OAuth login round trip
// @Tags Auth
// @Success 302
// @Router /auth/google/login [get]
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	state := fmt.Sprintf("s-%d", time.Now().UnixNano())
	ctx.SetCookie(stateCookie, state, int((10 * time.Minute).Seconds()), "/", "", false, true)
	ctx.Redirect(http.StatusFound, c.google.LoginURL(state))
}

// GoogleCallback godoc
// @Summary Complete the Google OAuth round trip and establish a session
// @Description Exchanges the authorization code, issues the session cookie and
// @Description redirects to the step matching the participant's current state.
// @Tags Auth
// @Success 302
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	wantState, err := ctx.Cookie(stateCookie)
	if err != nil || wantState == "" || ctx.Query("state") != wantState {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid OAuth state", Redirect: "/auth/google/login"})
		return
	}
	ctx.SetCookie(stateCookie, "", -1, "/", "", false, true)

	code := ctx.Query("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing authorization code", Redirect: "/auth/google/login"})
		return
	}

	identity, err := c.google.Exchange(code)
	if err != nil {
		log.Warn().Err(err).Msg("GoogleCallback: authentication failed")
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Failed to authenticate with Google. Please try again", Redirect: "/"})
		return
	}

	token, err := c.sessions.Issue(*identity)
	if err != nil {
		log.Error().Err(err).Msg("GoogleCallback: failed to issue session token")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "An error occurred during login. Please try again"})
		return
	}
	ctx.SetCookie(auth.SessionCookie, token, int(auth.SessionTTL.Seconds()), "/", "", false, true)

	state, _, err := c.quizSession.ResolveState(identity)
	if err != nil {
		log.Error().Err(err).Str("email", identity.Email).Msg("GoogleCallback: failed to resolve participant state")
	}
	switch state {
	case service.StateSubmitted:
		ctx.Redirect(http.StatusFound, "/api/v1/results")
	case service.StateProfiled:
		ctx.Redirect(http.StatusFound, "/api/v1/instructions")
	default:
		ctx.Redirect(http.StatusFound, "/api/v1/profile")
	}
}

// Logout godoc
// @Summary Clear the identity session
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [get]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "You have been successfully logged out"})
}

// Me godoc
// @Summary Describe the current session and lifecycle state
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.SessionDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	identity := auth.IdentityFrom(ctx)
	state, _, err := c.quizSession.ResolveState(identity)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SessionDTO{
		Email:   identity.Email,
		Name:    identity.Name,
		Picture: identity.Picture,
		State:   string(state),
	})
}
