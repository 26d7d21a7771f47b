package auth

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const Issuer = "strawcoin"

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid token claims")
)

type JWTServiceInterface interface {
	GenerateToken(username, sessionID string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims names the user in Subject and the server-side session in Id.
// Tokens carry no expiry; the session row decides whether they are live.
type Claims struct {
	jwt.StandardClaims
}

func (c *Claims) Username() string  { return c.Subject }
func (c *Claims) SessionID() string { return c.Id }

type JWTService struct {
	secret []byte
	now    func() time.Time
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

func (s *JWTService) GenerateToken(username, sessionID string) (string, error) {
	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:  username,
			Id:       sessionID,
			IssuedAt: s.now().Unix(),
			Issuer:   Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" || claims.Id == "" || claims.Issuer != Issuer {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
