// Package session carries per-visitor workflow state in a signed cookie.
// State is an explicit value passed into workflow operations and written
// back to the response, never ambient request-global storage.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const cookieName = "amc_session"

// Flash is a one-shot user-facing message, cleared on next render.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// State is the ephemeral per-browser-session workflow state. The zero value
// means a fresh visitor. Score is a pointer so "no survey completed" stays
// distinct from a legitimate zero score.
type State struct {
	Category  string  `json:"cat,omitempty"`
	CompanyID int64   `json:"cid,omitempty"`
	Score     *int    `json:"score,omitempty"`
	Flashes   []Flash `json:"flashes,omitempty"`
}

// WithFlash appends a one-shot message and returns the updated state.
func (s State) WithFlash(level, message string) State {
	s.Flashes = append(s.Flashes, Flash{Level: level, Message: message})
	return s
}

// PopFlashes returns pending messages and the state with them cleared.
func (s State) PopFlashes() ([]Flash, State) {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes, s
}

type stateClaims struct {
	jwt.RegisteredClaims
	State
}

// Codec signs and verifies session cookies with HMAC-SHA256. A missing,
// tampered or expired cookie decodes to the zero State so the workflow
// restarts cleanly.
type Codec struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewCodec builds a cookie codec from the configured signing secret.
func NewCodec(secret []byte, ttl time.Duration, secure bool) *Codec {
	return &Codec{secret: secret, ttl: ttl, secure: secure}
}

// Read decodes the session cookie from the request.
func (c *Codec) Read(r *http.Request) State {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return State{}
	}

	claims := &stateClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return c.secret, nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil || !token.Valid {
		return State{}
	}

	return claims.State
}

// Write signs the state and sets it as the session cookie on the response.
func (c *Codec) Write(w http.ResponseWriter, state State) error {
	now := time.Now().UTC()
	claims := stateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		State: state,
	}

	value, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(c.ttl / time.Second),
	})
	return nil
}
