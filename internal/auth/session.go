package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/itianclub/aptitude-quiz/config"
)

// SessionCookie is the name of the HttpOnly cookie carrying the session token.
const SessionCookie = "quiz_session"

// SessionTTL bounds how long an identity session stays valid.
const SessionTTL = 8 * time.Hour

var ErrInvalidSession = errors.New("invalid or expired session")

type sessionClaims struct {
	Name     string `json:"name"`
	Picture  string `json:"picture,omitempty"`
	GoogleID string `json:"google_id"`
	jwt.RegisteredClaims
}

// SessionManager issues and parses the signed session tokens that stand in
// for the untyped session bag of a classic server-rendered app.
type SessionManager struct {
	secret []byte
}

func NewSessionManager(cfg *config.Config) *SessionManager {
	return &SessionManager{secret: []byte(cfg.Session.Secret)}
}

// Issue mints a session token for a freshly authenticated identity.
func (m *SessionManager) Issue(identity Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Name:     identity.Name,
		Picture:  identity.Picture,
		GoogleID: identity.GoogleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse validates a session token and recovers the identity it carries.
func (m *SessionManager) Parse(token string) (*Identity, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}
	return &Identity{
		GoogleID: claims.GoogleID,
		Email:    claims.Subject,
		Name:     claims.Name,
		Picture:  claims.Picture,
	}, nil
}
