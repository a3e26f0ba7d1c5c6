package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const issuer = "ridehail"

type JWTServiceInterface interface {
	GenerateJWT(driverID uuid.UUID, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	DriverID string `json:"driver_id"`
	jwt.StandardClaims
}

// JWTService signs and verifies driver tokens with a shared HMAC secret.
// Tokens are issued elsewhere; GenerateJWT exists for tooling and tests.
type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) GenerateJWT(driverID uuid.UUID, expirationTime time.Time) (string, error) {
	claims := Claims{
		DriverID: driverID.String(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Issuer != issuer {
		return nil, errors.New("invalid token claims")
	}
	if _, err := uuid.Parse(claims.DriverID); err != nil {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
