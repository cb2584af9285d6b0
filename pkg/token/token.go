package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token has expired")
)

// SessionClaims represents the claims in an anonymous session token
type SessionClaims struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

// Service issues and validates signed anonymous session tokens.
// Tokens are signed with FARMER_SECRET_KEY so a session identifier
// presented by a browser can be trusted without a login flow.
type Service struct {
	secretKey []byte
	expiry    time.Duration
}

// NewService creates a new session token service
func NewService(secretKey string, expiry time.Duration) *Service {
	if expiry == 0 {
		expiry = 30 * 24 * time.Hour
	}

	return &Service{
		secretKey: []byte(secretKey),
		expiry:    expiry,
	}
}

// NewSession issues a fresh session ID and its signed token
func (s *Service) NewSession(userID string) (sessionID string, signed string, err error) {
	sessionID = uuid.New().String()
	signed, err = s.Sign(sessionID, userID)
	return sessionID, signed, err
}

// Sign produces a signed token for an existing session ID
func (s *Service) Sign(sessionID, userID string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		SessionID: sessionID,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Validate parses a signed token and returns its claims
func (s *Service) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&SessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.secretKey, nil
		},
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
