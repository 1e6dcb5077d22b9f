package utils

import (
	"errors"
	"time"

	"roomnest/config"

	"github.com/golang-jwt/jwt"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// SessionTokenTTL is how long an issued session token stays valid.
const SessionTokenTTL = 5 * time.Hour

func secretKey() []byte {
	if s := config.AppConfig.JWTSecret; s != "" {
		return []byte(s)
	}
	// Fallback for local development only.
	return []byte("roomnest-dev-secret")
}

// GenerateToken signs the given identity claims into a JWT. Reserved claims
// (iat, exp) are set here and override any client-supplied values.
func GenerateToken(identity map[string]interface{}, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(duration).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns its claims.
func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ExtractEmailFromClaims returns the email claim, if present.
func ExtractEmailFromClaims(claims jwt.MapClaims) (string, bool) {
	email, ok := claims["email"].(string)
	return email, ok && email != ""
}
