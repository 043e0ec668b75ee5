package services

import (
	"os"
	"time"

	"rentmag/errors"
	"rentmag/models"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UserId uint `json:"userid"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// CreateToken issues an HS256 token for the user, valid for 7 days.
func CreateToken(user *models.User) (string, error) {
	claims := Claims{
		UserInfo: UserInfo{UserId: user.ID},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// GetUserIDFromToken verifies the token and returns the user id in it.
func GetUserIDFromToken(tokenString string) (uint, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}

	return claims.UserInfo.UserId, nil
}
