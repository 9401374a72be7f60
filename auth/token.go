package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sellywck/API/models"
)

var (
	// ErrMissingToken means no Authorization header was presented.
	ErrMissingToken = errors.New("missing authorization token")
	// ErrInvalidToken covers malformed tokens and signature mismatches.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken means the token was well-formed but past its expiry.
	ErrExpiredToken = errors.New("token expired")
)

// DefaultTTL is the fixed token lifetime: 86400 seconds.
const DefaultTTL = 24 * time.Hour

// Claims is the signed identity assertion carried in the Authorization header.
type Claims struct {
	ID      uint   `json:"id"`
	UID     string `json:"uid"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 identity tokens. It holds no state
// beyond the shared secret, so any process instance can verify a token
// without a session store.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting the given user's identity, expiring ttl from now.
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:      user.ID,
		UID:     user.UID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string, returning the embedded claims.
func (s *TokenService) Verify(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
