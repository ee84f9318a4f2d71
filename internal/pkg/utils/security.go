package utils

import (
	"time"

	"aidentify-service/internal/app/models"
	"aidentify-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT wraps a gateway session ID in a signed HS256 token.
func GenerateJWT(sessionID, secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(ttl).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	return tokenString, nil
}

// ParseJWT verifies a gateway token and returns the session ID it wraps.
func ParseJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.ErrTokenInvalidOrExpired(nil)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims["session_id"].(string); ok {
			return sessionID, nil
		}
	}

	return "", exceptions.ErrTokenInvalidOrExpired(nil)
}

// DecodeCredentialClaims extracts the claims of an upstream bearer token
// without verifying its signature; the upstream auth service is the issuer and
// verifier, this side only reads role and expiry out of it. A malformed token
// yields an error the callers translate into "no credential".
func DecodeCredentialClaims(token string) (models.CredentialClaims, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return models.CredentialClaims{}, err
	}

	decoded := models.CredentialClaims{}
	if sub, ok := claims["sub"].(string); ok {
		decoded.Subject = sub
	}
	if userID, ok := claims["user_id"].(string); ok {
		decoded.UserID = userID
	}
	if name, ok := claims["name"].(string); ok {
		decoded.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		decoded.Role = models.Role(role)
	}
	if exp, ok := claims["exp"].(float64); ok {
		decoded.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return decoded, nil
}
