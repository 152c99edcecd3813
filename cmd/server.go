package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"handkeeper/internal/config"
	"handkeeper/internal/core"
	"handkeeper/internal/db"
	"handkeeper/internal/http/server"
	"handkeeper/internal/repository"
	"handkeeper/pkg/jwt"
	"handkeeper/pkg/log"
	"handkeeper/pkg/password"

	"go.uber.org/zap/zapcore"
)

const serviceName = "handkeeper"

func Start() error {
	logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	logger = log.NewZapLogger(serviceName, config.LogLevel)
	defer func() { _ = logger.Sync() }()

	dbConn, err := db.NewGormDB(config.DBConnectionURL, logger)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Errorw("failed to close database", "error", err)
		}
	}()

	err = repository.Migrate(dbConn)
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	hasher, err := password.NewBcryptHasher(config.BcryptCost)
	if err != nil {
		logger.Errorw("failed to create password hasher", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	keeper := core.NewHandKeeper(
		logger,
		repository.NewUserRepository(dbConn),
		repository.NewHandRepository(dbConn),
		hasher,
		jwtService)

	hdlr := newRouter(logger, config, keeper, jwtService)

	srv := server.NewHTTP(logger, hdlr, config.Addr(), server.Timeouts{
		Read:     config.HTTP.ReadTimeout,
		Write:    config.HTTP.WriteTimeout,
		Idle:     config.HTTP.IdleTimeout,
		Shutdown: config.HTTP.ShutdownTimeout,
	})
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
