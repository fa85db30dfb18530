package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LocalClaims is the claim set of tokens minted for locally simulated
// accounts. Backend-issued tokens are opaque to us and never parsed here.
type LocalClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// MintLocalToken signs a session token for a locally simulated account.
func MintLocalToken(secret, username, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := LocalClaims{
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "phermo-local",
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign local token: %w", err)
	}
	return signed, nil
}

// ParseLocalToken verifies a locally minted token. It fails for backend
// tokens, which is how callers tell the two apart.
func ParseLocalToken(tokenStr, secret string) (*LocalClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &LocalClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("phermo-local"))
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*LocalClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
