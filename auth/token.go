package auth

import (
	"time"

	"github.com/Memoriestore01/memoriestore-api/config"
	"github.com/golang-jwt/jwt/v5"
)

// issueJWT generates a signed session token for a user
func issueJWT(email, role, userID, name, picture string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"picture": picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return ""
	}
	return signedToken
}
