package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

const DefaultTokenTTL = time.Hour

//go:generate mockery --name=Manager --dir=. --output=../../../../mocks --filename=jwt_manager_mock.go --case=underscore --with-expecter
type (
	Manager interface {
		CreateToken(subject string) (string, error)
		ValidateToken(tokenString string) error
		DecodeToken(tokenString string) (*Claims, error)
	}
	manager struct {
		secret []byte
		ttl    time.Duration
	}
)

// NewJwtManager signs and verifies HS256 admin tokens with secret.
func NewJwtManager(secret string, ttl time.Duration) Manager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

type Claims struct {
	jwt.RegisteredClaims
}

func (m *manager) CreateToken(subject string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *manager) ValidateToken(tokenString string) error {
	_, err := m.DecodeToken(tokenString)
	return err
}

func (m *manager) DecodeToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return m.secret, nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
