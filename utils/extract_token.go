package utils

import (
	"errors"

	"github.com/golang-jwt/jwt"
)

// ParseToken validates a signed token string and returns the user id and
// issued-at claims. issuedAt is zero when the token carries no iat claim.
func ParseToken(tokenString string) (userID uint, issuedAt int64, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return JwtSecret, nil
	})

	if err != nil || !token.Valid {
		return 0, 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, 0, errors.New("invalid token claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, 0, errors.New("invalid user ID in token")
	}

	if iatFloat, ok := claims["iat"].(float64); ok {
		issuedAt = int64(iatFloat)
	}

	return uint(userIDFloat), issuedAt, nil
}

// ParseUserID validates a signed token string and returns the user id claim.
func ParseUserID(tokenString string) (uint, error) {
	userID, _, err := ParseToken(tokenString)
	return userID, err
}
