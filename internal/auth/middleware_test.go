package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/itianclub/aptitude-quiz/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminTestRouter(m *SessionManager, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", RequireAuth(m), RequireAdmin(cfg), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"email": IdentityFrom(ctx).Email})
	})
	return r
}

func TestRequireAuthRejectsMissingCookie(t *testing.T) {
	m := newTestSessionManager("s")
	r := adminTestRouter(m, &config.Config{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminGatesByEmail(t *testing.T) {
	m := newTestSessionManager("s")
	cfg := &config.Config{Admin: config.Admin{Emails: []string{"admin@x.com"}}}
	r := adminTestRouter(m, cfg)

	request := func(email string) *httptest.ResponseRecorder {
		token, err := m.Issue(Identity{Email: email, Name: "n"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusForbidden, request("user@x.com").Code)
	assert.Equal(t, http.StatusOK, request("admin@x.com").Code)
	// compare is case-insensitive
	assert.Equal(t, http.StatusOK, request("Admin@X.com").Code)
}
