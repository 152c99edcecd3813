package repository

import (
	"context"

	"handkeeper/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	FindAll(ctx context.Context, q db.Query, entities any) error
	Count(ctx context.Context, model any, where map[string]any) (int64, error)
	DeleteWhere(ctx context.Context, model any, where map[string]any) (int64, error)
	Ping(ctx context.Context) error
}
