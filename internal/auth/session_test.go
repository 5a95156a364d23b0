package auth

import (
	"testing"

	"github.com/itianclub/aptitude-quiz/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionManager(secret string) *SessionManager {
	return NewSessionManager(&config.Config{Session: config.Session{Secret: secret}})
}

func TestSessionRoundTrip(t *testing.T) {
	m := newTestSessionManager("test-secret")

	issued := Identity{
		GoogleID: "g-42",
		Email:    "a@x.com",
		Name:     "Alice",
		Picture:  "https://pic",
	}
	token, err := m.Issue(issued)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, issued, *parsed)
}

func TestSessionParseRejectsGarbage(t *testing.T) {
	m := newTestSessionManager("test-secret")

	for _, token := range []string{"", "not.a.token", "a.b.c"} {
		_, err := m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	}
}

func TestSessionParseRejectsWrongSecret(t *testing.T) {
	issuer := newTestSessionManager("secret-one")
	verifier := newTestSessionManager("secret-two")

	token, err := issuer.Issue(Identity{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionParseRejectsTampering(t *testing.T) {
	m := newTestSessionManager("test-secret")

	token, err := m.Issue(Identity{Email: "a@x.com", Name: "Alice"})
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = m.Parse(tampered)
	assert.ErrorIs(t, err, ErrInvalidSession)
}
