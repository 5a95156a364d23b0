package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itianclub/aptitude-quiz/config"
	"github.com/itianclub/aptitude-quiz/internal/dto"
	"github.com/rs/zerolog/log"
)

const identityKey = "auth.identity"

// RequireAuth aborts with 401 unless a valid session cookie is present. On
// success the identity is attached to the request context.
func RequireAuth(sessions *SessionManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(SessionCookie)
		if err != nil || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Message:  "Please login to access this page",
				Redirect: "/auth/google/login",
			})
			return
		}
		identity, err := sessions.Parse(token)
		if err != nil {
			log.Warn().Err(err).Msg("Rejected request with invalid session token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Message:  "Session expired, please login again",
				Redirect: "/auth/google/login",
			})
			return
		}
		ctx.Set(identityKey, identity)
		ctx.Next()
	}
}

// RequireAdmin aborts with 403 unless the session identity is listed in the
// configured admin emails. Must run after RequireAuth.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity := IdentityFrom(ctx)
		if identity == nil || !cfg.IsAdminEmail(identity.Email) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Message: "Access denied. Admin privileges required",
			})
			return
		}
		ctx.Next()
	}
}

// IdentityFrom returns the session identity set by RequireAuth, or nil.
func IdentityFrom(ctx *gin.Context) *Identity {
	v, ok := ctx.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*Identity)
	return identity
}
