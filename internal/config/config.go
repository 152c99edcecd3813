package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jellydator/validation"
	"go.uber.org/zap/zapcore"
)

var ErrInvalidConfig error = errors.New("invalid configuration")

type App struct {
	Host              string        `env:"API_HOST" envDefault:"0.0.0.0"`
	Port              string        `env:"PORT" envDefault:"3000"`
	DBConnectionURL   string        `env:"DB_CONNECTION_URL,required,notEmpty"`
	JWTSecret         string        `env:"JWT_SECRET,required,notEmpty"`
	BcryptCost        int           `env:"BCRYPT_COST" envDefault:"10"`
	LogLevel          zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`
	CORSAllowedOrigin string        `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
	HTTP              HTTP          `envPrefix:"HTTP_"`
}

type HTTP struct {
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// NewAppConfig reads the configuration from the environment.
func NewAppConfig() (App, error) {
	cfg, err := env.ParseAs[App]()
	if err != nil {
		return App{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return App{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required, validation.By(isPort)),
		validation.Field(&a.DBConnectionURL, validation.Required),
		validation.Field(&a.JWTSecret, validation.Required, validation.Length(16, 0)),
		validation.Field(&a.BcryptCost, validation.Min(4), validation.Max(31)),
		validation.Field(&a.HTTP),
	)
}

func (h HTTP) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.ReadTimeout, validation.Min(time.Duration(0))),
		validation.Field(&h.WriteTimeout, validation.Min(time.Duration(0))),
		validation.Field(&h.IdleTimeout, validation.Min(time.Duration(0))),
		validation.Field(&h.ShutdownTimeout, validation.Required),
	)
}

// Addr is the listen address of the HTTP server.
func (a App) Addr() string {
	return net.JoinHostPort(a.Host, a.Port)
}

func isPort(value any) error {
	port, err := strconv.Atoi(value.(string))
	if err != nil || port < 1 || port > 65535 {
		return errors.New("must be a valid port")
	}
	return nil
}
