package utils

import (
	"errors"
	"fmt"
	"time"

	"companion_rental/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid
const TokenTTL = time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// JWTClaims custom claims for JWT
type JWTClaims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTUtil provides JWT generation and validation.
// It is immutable after construction and safe for concurrent use.
type JWTUtil struct {
	secretKey []byte
	ttl       time.Duration
	parser    *jwt.Parser
}

// NewJWTUtil creates a new JWTUtil
func NewJWTUtil(secretKey string, ttl time.Duration) *JWTUtil {
	return &JWTUtil{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		// Expiry is checked by ValidateToken against the caller's clock, after the signature.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// GenerateToken signs a token for identity that expires ttl after now
func (ju *JWTUtil) GenerateToken(identity model.Identity, now time.Time) (string, error) {
	claims := &JWTClaims{
		UserID:   identity.UserID,
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ju.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   identity.UserID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ju.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken checks the signature first and the expiry second.
// It returns ErrInvalidToken or ErrExpiredToken, never a raw parser error.
func (ju *JWTUtil) ValidateToken(tokenString string, now time.Time) (model.Identity, error) {
	claims := &JWTClaims{}
	token, err := ju.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ju.secretKey, nil
	})
	if err != nil || !token.Valid {
		return model.Identity{}, ErrInvalidToken
	}

	if claims.UserID == "" || claims.ExpiresAt == nil {
		return model.Identity{}, ErrInvalidToken
	}
	if !now.Before(claims.ExpiresAt.Time) {
		return model.Identity{}, ErrExpiredToken
	}

	return model.Identity{UserID: claims.UserID, Username: claims.Username}, nil
}
