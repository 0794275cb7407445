package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionIssuer = "NeoDine"

var ErrInvalidSession = errors.New("invalid or expired session")

type SessionClaims struct {
	VisitorID string `json:"visitor_id"`
	jwt.RegisteredClaims
}

// GenerateSessionToken menandatangani visitor id menjadi cookie session
func GenerateSessionToken(secret []byte, visitorID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		VisitorID: visitorID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    sessionIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseSessionToken(secret []byte, tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(sessionIssuer))
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.VisitorID == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
