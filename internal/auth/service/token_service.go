package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/lsweb/lsweb-api/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Generate(email, role string) (string, time.Time, error)
	Verify(tokenString string) (*JWTCustomClaims, error)
}

// TokenService issues stateless HS256 session tokens. There is no session
// table, so a token cannot be revoked before its expiry.
type TokenService struct {
	Secret string
	Expiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewTokenService(secret string, expiryHours int) *TokenService {
	return &TokenService{
		Secret: secret,
		Expiry: time.Duration(expiryHours) * time.Hour,
	}
}

func (ts *TokenService) Generate(email, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.Expiry)

	claims := JWTCustomClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Verify parses and validates the given session token string.
func (ts *TokenService) Verify(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
