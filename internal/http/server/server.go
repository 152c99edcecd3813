package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Timeouts struct {
	Read     time.Duration
	Write    time.Duration
	Idle     time.Duration
	Shutdown time.Duration
}

type HTTPServer struct {
	logs     *zap.SugaredLogger
	server   *http.Server
	shutdown time.Duration
}

// NewHTTP is a constructor function for the HTTPServer type.
func NewHTTP(logger *zap.SugaredLogger, handler http.Handler, addr string, timeouts Timeouts) *HTTPServer {
	return &HTTPServer{
		logs: logger,
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadTimeout:       timeouts.Read,
			ReadHeaderTimeout: timeouts.Read,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
		},
		shutdown: timeouts.Shutdown,
	}
}

// Run starts listening in the background. The returned channel receives the
// error that stopped the server, http.ErrServerClosed after Shutdown.
func (s *HTTPServer) Run() <-chan error {
	errChan := make(chan error, 1)

	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		errChan <- fmt.Errorf("listen on %s: %w", s.server.Addr, err)
		return errChan
	}

	s.logs.Infow("http server listening", "addr", listener.Addr().String())

	go func() {
		errChan <- s.server.Serve(listener)
	}()

	return errChan
}

// Shutdown waits for in-flight requests up to the shutdown timeout.
func (s *HTTPServer) Shutdown() error {
	ctx := context.Background()
	if s.shutdown > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdown)
		defer cancel()
	}

	s.logs.Infow("http server shutting down")
	if err := s.server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
