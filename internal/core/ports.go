package core

import (
	"context"

	"handkeeper/internal/repository"
	tokenIssuer "handkeeper/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserRepository . UserRepository
type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreateUser(ctx context.Context, user repository.User) error
	Ping(ctx context.Context) error
}

//counterfeiter:generate -o fake -fake-name HandRepository . HandRepository
type HandRepository interface {
	SaveHand(ctx context.Context, hand repository.Hand) error
	GetHandsByOwner(ctx context.Context, ownerID string, page repository.Page) ([]repository.Hand, error)
	CountHandsByOwner(ctx context.Context, ownerID string) (int64, error)
	DeleteHand(ctx context.Context, handID, ownerID string) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Issue(subject tokenIssuer.Subject) (string, error)
}

//counterfeiter:generate -o fake -fake-name PasswordHasher . PasswordHasher
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
