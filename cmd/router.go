package cmd

import (
	"net/http"

	"handkeeper/internal/config"
	"handkeeper/internal/http/handler"
	"handkeeper/internal/http/handler/middleware"
	"handkeeper/internal/http/payload"

	"go.uber.org/zap"
)

// newRouter registers every route and wraps the mux in the middleware chain.
// Hand routes sit behind the auth middleware.
func newRouter(logger *zap.SugaredLogger, cfg config.App, keeper handler.HandService, verifier middleware.TokenVerifier) http.Handler {
	hkHlr := handler.NewHandKeeperHandler(
		logger,
		payload.DecodeValidator{MaxBodyBytes: payload.DefaultMaxBodyBytes},
		keeper)
	auth := middleware.NewAuthMiddleware(logger, verifier)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.Register, hkHlr.HandleRegister)
	mux.HandleFunc(handler.Login, hkHlr.HandleLogin)
	mux.HandleFunc(handler.Health, hkHlr.HandleHealth)
	mux.Handle(handler.CreateHand, auth.AuthenticateFunc(hkHlr.HandleCreateHand))
	mux.Handle(handler.ListHands, auth.AuthenticateFunc(hkHlr.HandleListHands))
	mux.Handle(handler.DeleteHand, auth.AuthenticateFunc(hkHlr.HandleDeleteHand))

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = middleware.NewCORSMiddleware(cfg.CORSAllowedOrigin).CORS(hdlr)

	return hdlr
}
