package handler

import (
	"context"
	"net/http"

	"handkeeper/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name HandService . HandService
type HandService interface {
	Register(ctx context.Context, msg core.AuthMessage) error
	Login(ctx context.Context, msg core.AuthMessage) (core.LoginResult, error)
	CreateHand(ctx context.Context, identity core.Identity, msg core.HandMessage) (core.HandRecord, error)
	ListHands(ctx context.Context, identity core.Identity, page core.Page) (core.HandPage, error)
	DeleteHand(ctx context.Context, identity core.Identity, handID string) error
	CheckHealth(ctx context.Context) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
