package auth

import (
	"errors"
	"time"

	"github.com/classfit/class-booking/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when the signature does not verify or
	// required claims are missing.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the validated payload of an access token.
type Claims struct {
	UserID uint        `json:"id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager signs and validates access tokens with a symmetric secret.
// The secret and TTL come from startup configuration and never change at
// runtime.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for the user and its absolute expiry.
func (m *JWTManager) Issue(user *models.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate parses and verifies a token. It is a pure function of the token,
// the secret and the clock; no I/O.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
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
	if claims.Subject == "" || claims.UserID == 0 || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TTLSeconds returns the configured token lifetime in seconds, for the
// expires_in field of login responses.
func (m *JWTManager) TTLSeconds() int64 {
	return int64(m.ttl.Seconds())
}
