package middleware

import (
	tokenIssuer "handkeeper/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenVerifier . TokenVerifier
type TokenVerifier interface {
	Verify(token string) (tokenIssuer.Subject, error)
}
