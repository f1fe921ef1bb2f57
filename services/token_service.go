package services

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"estate-cms/models"
)

// TokenService issues and verifies the signed session tokens. Tokens are
// stateless: there is no server-side revocation, logout only drops the
// client's copy.
type TokenService interface {
	Issue(user *models.User) (string, time.Time, error)
	Parse(tokenString string) (*models.Claims, error)
	TTL() time.Duration
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret []byte, ttl time.Duration) TokenService {
	return &tokenService{secret: secret, ttl: ttl, now: time.Now}
}

func (s *tokenService) TTL() time.Duration {
	return s.ttl
}

func (s *tokenService) Issue(user *models.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := models.Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *tokenService) Parse(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, models.ErrorInvalidToken{Message: "Invalid token: " + err.Error()}
	}
	if !token.Valid || claims.ExpiresAt == nil {
		return nil, models.ErrorInvalidToken{Message: "Token is not valid"}
	}
	return claims, nil
}
