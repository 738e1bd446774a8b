package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nakedifyai/backend/errs"
)

// adminSessionTTL bounds how long an admin login stays valid.
const adminSessionTTL = 24 * time.Hour

type adminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// issueAdminToken signs a session token for a verified admin.
func issueAdminToken(email string, secret []byte) (string, error) {
	now := time.Now()
	claims := adminClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(adminSessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// verifyAdminToken validates a session token and returns the admin's email.
func verifyAdminToken(tokenString string, secret []byte) (string, error) {
	var claims adminClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
			return "", errs.NewExpiredTokenError()
		}
		return "", errs.NewInvalidTokenError()
	}
	if !token.Valid || claims.Email == "" {
		return "", errs.NewInvalidTokenError()
	}
	return claims.Email, nil
}
