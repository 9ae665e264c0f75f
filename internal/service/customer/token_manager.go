package customer

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"laptopstore-backend/internal/domain"
)

// Claims is the identity payload carried by access tokens. Handlers trust
// these fields except on admin routes, which re-check isAdmin server-side.
type Claims struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.StandardClaims
}

// TokenManager issues and verifies signed, time-limited access tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

func (m *TokenManager) Issue(u domain.User) (string, error) {
	claims := Claims{
		UserID:  u.ID.Hex(),
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(m.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses and verifies a token, returning its claims. Expired or
// malformed tokens fail; there is no refresh path.
func (m *TokenManager) Validate(tokenStr string) (Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return Claims{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, jwt.ErrSignatureInvalid
	}
	return *claims, nil
}
