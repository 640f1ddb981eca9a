package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried by a bearer token: the user id as subject
// plus the admin flag.
type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 bearer tokens.
type JWTManager struct {
	secret []byte
	expiry time.Duration
}

func NewJWTManager(secret string, expirySeconds int64) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		expiry: time.Duration(expirySeconds) * time.Second,
	}
}

func (m *JWTManager) Sign(userID string, admin bool) (string, error) {
	now := time.Now()
	claims := Claims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses the token and returns the subject and admin flag. Expired or
// tampered tokens fail.
func (m *JWTManager) Verify(tokenString string) (string, bool, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", false, err
	}
	if !token.Valid || claims.Subject == "" {
		return "", false, fmt.Errorf("invalid token")
	}
	return claims.Subject, claims.Admin, nil
}
