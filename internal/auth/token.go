package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/EduGate-2025/loan-service/internal/models"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims are the facts embedded in a session token: who logged in and with
// which role, bounded by the registered expiry.
type Claims struct {
	Role models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates session tokens with a process-wide HS256
// key. Rotating the key invalidates every outstanding token; no revocation
// list is kept.
type TokenManager struct {
	secret     []byte
	defaultTTL time.Duration
}

func NewTokenManager(secret string, defaultTTL time.Duration) *TokenManager {
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Hour
	}
	return &TokenManager{
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
	}
}

// Issue signs a token for subject with the given role. A non-positive ttl
// falls back to the configured default.
func (tm *TokenManager) Issue(subject string, role models.UserRole, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = tm.defaultTTL
	}

	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string, returning its claims.
func (tm *TokenManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
