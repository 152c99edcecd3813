package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"handkeeper/internal/core"
	tokenIssuer "handkeeper/pkg/jwt"

	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"

	accessDenied = "Access Denied"
	invalidToken = "Invalid Token"
)

type AuthMiddleware struct {
	logs     *zap.SugaredLogger
	verifier TokenVerifier
}

func NewAuthMiddleware(logger *zap.SugaredLogger, verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		logs:     logger,
		verifier: verifier,
	}
}

// Authenticate lets a request through only with a verifiable token and
// attaches the token's identity to its context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestIDFromContext(r.Context())

		token := bearerToken(r.Header.Get(AuthorizationHeader))
		if token == "" {
			writeError(w, http.StatusUnauthorized, accessDenied)
			m.logs.Infow("request without token rejected",
				"path", r.URL.Path,
				"request_id", requestID)
			return
		}

		subject, err := m.verifier.Verify(token)
		if err != nil {
			writeError(w, http.StatusBadRequest, invalidToken)
			m.logs.Infow("request with invalid token rejected",
				"error", err,
				"expired", errors.Is(err, tokenIssuer.ErrTokenExpired),
				"path", r.URL.Path,
				"request_id", requestID)
			return
		}

		ctx := WithIdentity(r.Context(), core.Identity{
			UserID:   subject.UserID,
			Username: subject.Username,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthenticateFunc is Authenticate for a handler function.
func (m *AuthMiddleware) AuthenticateFunc(next http.HandlerFunc) http.Handler {
	return m.Authenticate(next)
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if strings.EqualFold(header, "bearer") {
		return ""
	}
	if len(header) >= 7 && strings.EqualFold(header[:7], "bearer ") {
		header = header[7:]
	}
	return strings.TrimSpace(header)
}

func writeError(w http.ResponseWriter, code int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": detail})
}
