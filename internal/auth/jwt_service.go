package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Subject identifies the entity a token is bound to.
type Subject struct {
	ID uint `json:"id"`
}

// Claims represents JWT claims. Store is only set on tokens scoped to a store.
type Claims struct {
	User  Subject  `json:"user"`
	Store *Subject `json:"store,omitempty"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a new JWT service. A zero ttl issues tokens without expiry.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Secret returns the signing key for middleware configuration.
func (s *JWTService) Secret() []byte {
	return s.secret
}

// GenerateUserToken signs a token for the user.
func (s *JWTService) GenerateUserToken(userID uint) (string, error) {
	return s.sign(&Claims{User: Subject{ID: userID}})
}

// GenerateStoreToken signs a token for the user acting on one store.
func (s *JWTService) GenerateStoreToken(userID, storeID uint) (string, error) {
	return s.sign(&Claims{
		User:  Subject{ID: userID},
		Store: &Subject{ID: storeID},
	})
}

func (s *JWTService) sign(claims *Claims) (string, error) {
	now := time.Now()
	claims.ID = uuid.New().String()
	claims.IssuedAt = jwt.NewNumericDate(now)
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a JWT token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
