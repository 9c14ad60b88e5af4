package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Sign(organizerID, role string) (string, error)
	Verify(tokenString string) (*JWTCustomClaims, error)
	AccessTokenExpiry() time.Duration
}

// TokenService issues and verifies the short-lived HS256 access tokens.
// Refresh credentials are opaque secrets handled by RefreshTokenManager,
// not JWTs.
type TokenService struct {
	Secret string
	Expiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		Secret: secret,
		Expiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// Sign produces a token with the organizer id as subject claim.
func (ts *TokenService) Sign(organizerID, role string) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   organizerID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Verify parses and validates the given access token string.
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

func (ts *TokenService) AccessTokenExpiry() time.Duration {
	return ts.Expiry
}
