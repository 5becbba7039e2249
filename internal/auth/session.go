package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Goofygiraffe06/barber/internal/logging"
	"github.com/Goofygiraffe06/barber/internal/utils"
)

// ErrInvalidSession covers any token that fails parsing, signature, issuer or
// expiry checks.
var ErrInvalidSession = errors.New("invalid or expired session")

// Session is the authentication context of a signed-in user.
type Session struct {
	UserID   string
	Name     string
	Email    string
	APIToken string
}

type sessionClaims struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	APIToken string `json:"api_token,omitempty"`
	jwt.RegisteredClaims
}

// SessionSigner issues and verifies HS256 session tokens.
type SessionSigner struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionSigner returns a signer. The secret must be non-empty.
func NewSessionSigner(secret, issuer string, ttl time.Duration) *SessionSigner {
	if secret == "" {
		panic("auth: empty session secret")
	}
	return &SessionSigner{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL is the lifetime of issued tokens.
func (s *SessionSigner) TTL() time.Duration { return s.ttl }

// Issue signs a token for sess.
func (s *SessionSigner) Issue(sess Session) (string, error) {
	now := s.now()
	claims := sessionClaims{
		Name:     sess.Name,
		Email:    sess.Email,
		APIToken: sess.APIToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.UserID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		logging.ErrorLog("Session token signing failed [%s]: %v", utils.HashEmail(sess.Email), err)
		return "", err
	}
	return token, nil
}

// Parse verifies a token and returns its session.
func (s *SessionSigner) Parse(tokenStr string) (Session, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		logging.DebugLog("Session token rejected: %v", err)
		return Session{}, ErrInvalidSession
	}
	if claims.Subject == "" {
		return Session{}, ErrInvalidSession
	}

	return Session{
		UserID:   claims.Subject,
		Name:     claims.Name,
		Email:    claims.Email,
		APIToken: claims.APIToken,
	}, nil
}
