package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/itianclub/aptitude-quiz/config"
	"github.com/rs/zerolog/log"
)

// ErrAuthFailure covers any failed identity round trip with Google. The
// caller stays anonymous and is sent back to retry the login.
var ErrAuthFailure = errors.New("google authentication failed")

const (
	googleAuthURL      = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL     = "https://oauth2.googleapis.com/token"
	googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"
)

// GoogleAuthenticator performs the OAuth code exchange and id_token
// verification, yielding an Identity on success.
type GoogleAuthenticator struct {
	clientID     string
	clientSecret string
	redirectURL  string
	tokenURL     string
	tokenInfoURL string
	client       *http.Client
}

func NewGoogleAuthenticator(cfg *config.Config) *GoogleAuthenticator {
	return &GoogleAuthenticator{
		clientID:     cfg.Google.ClientID,
		clientSecret: cfg.Google.ClientSecret,
		redirectURL:  cfg.Google.RedirectURL,
		tokenURL:     googleTokenURL,
		tokenInfoURL: googleTokenInfoURL,
		client:       http.DefaultClient,
	}
}

// LoginURL builds the consent-screen redirect carrying the given state.
func (g *GoogleAuthenticator) LoginURL(state string) string {
	q := url.Values{}
	q.Set("client_id", g.clientID)
	q.Set("redirect_uri", g.redirectURL)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	q.Set("state", state)
	return googleAuthURL + "?" + q.Encode()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
}

type tokenInfo struct {
	Iss     string `json:"iss"`
	Aud     string `json:"aud"`
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Exchange trades the authorization code for tokens and verifies the
// id_token via Google's tokeninfo endpoint before trusting its claims.
func (g *GoogleAuthenticator) Exchange(code string) (*Identity, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", g.clientID)
	form.Set("client_secret", g.clientSecret)
	form.Set("redirect_uri", g.redirectURL)
	form.Set("grant_type", "authorization_code")

	resp, err := g.client.PostForm(g.tokenURL, form)
	if err != nil {
		log.Error().Err(err).Msg("Google token exchange request failed")
		return nil, fmt.Errorf("%w: token exchange: %v", ErrAuthFailure, err)
	}
	defer resp.Body.Close()

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil || tr.IDToken == "" {
		return nil, fmt.Errorf("%w: bad token response", ErrAuthFailure)
	}

	tiResp, err := g.client.Get(g.tokenInfoURL + "?id_token=" + url.QueryEscape(tr.IDToken))
	if err != nil {
		log.Error().Err(err).Msg("Google tokeninfo request failed")
		return nil, fmt.Errorf("%w: tokeninfo: %v", ErrAuthFailure, err)
	}
	defer tiResp.Body.Close()

	var ti tokenInfo
	if err := json.NewDecoder(tiResp.Body).Decode(&ti); err != nil {
		return nil, fmt.Errorf("%w: tokeninfo parse", ErrAuthFailure)
	}
	if ti.Aud != g.clientID {
		return nil, fmt.Errorf("%w: audience mismatch", ErrAuthFailure)
	}
	if ti.Iss != "accounts.google.com" && ti.Iss != "https://accounts.google.com" {
		return nil, fmt.Errorf("%w: unexpected issuer", ErrAuthFailure)
	}
	if ti.Email == "" {
		return nil, fmt.Errorf("%w: no email in token", ErrAuthFailure)
	}

	return &Identity{
		GoogleID: ti.Sub,
		Email:    ti.Email,
		Name:     ti.Name,
		Picture:  ti.Picture,
	}, nil
}
