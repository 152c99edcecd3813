package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 30 * 24 * time.Hour

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")

// Subject is the identity a token asserts.
type Subject struct {
	UserID   string
	Username string
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret []byte
	method jwt.SigningMethod
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
		method: jwt.SigningMethodHS512,
	}
}

// Issue signs a token for subject that expires TokenTTL from now.
func (s *JWTService) Issue(subject Subject) (string, error) {
	if subject.UserID == "" {
		return "", errors.New("token subject is empty")
	}

	now := TimeNow()
	claims := Claims{
		Username: subject.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	tokenStr, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

// Verify checks signature, algorithm and expiry of token and returns the subject it carries.
// Every failure wraps ErrTokenNotValid; expired tokens additionally wrap ErrTokenExpired.
func (s *JWTService) Verify(token string) (Subject, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(func() time.Time { return TimeNow() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Subject{}, fmt.Errorf("jwt parse: %w: %w", ErrTokenExpired, ErrTokenNotValid)
		}
		return Subject{}, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if claims.Subject == "" {
		return Subject{}, fmt.Errorf("token has no subject: %w", ErrTokenNotValid)
	}

	return Subject{
		UserID:   claims.Subject,
		Username: claims.Username,
	}, nil
}
