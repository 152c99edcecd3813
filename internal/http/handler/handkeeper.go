package handler

import (
	"errors"
	"net/http"
	"strconv"

	"handkeeper/internal/core"
	"handkeeper/internal/http/handler/middleware"
	"handkeeper/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Register   = "POST /api/register"
	Login      = "POST /api/login"
	CreateHand = "POST /api/hands"
	ListHands  = "GET /api/hands/my"
	DeleteHand = "DELETE /api/hands/{id}"
	Health     = "GET /api/health"
)

const TotalCountHeader = "X-Total-Count"

type HandKeeperHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	keeper           HandService
}

func NewHandKeeperHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, handService HandService) *HandKeeperHandler {
	return &HandKeeperHandler{
		logs:             logger,
		requestValidator: requestValidator,
		keeper:           handService,
	}
}

func (h *HandKeeperHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var req payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Registration failed",
			Error:   err.Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	err := h.keeper.Register(r.Context(), req.ToCoreAuthMessage())
	if err != nil {
		if errors.Is(err, core.ErrDuplicateUsername) {
			h.respond(w, Response{Error: errUsernameTaken}, http.StatusBadRequest, requestId)
		} else {
			h.respond(w, Response{Error: oopsErr}, http.StatusInternalServerError, requestId)
		}
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: msgRegistered}, http.StatusOK, requestId)
}

func (h *HandKeeperHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var req payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   err.Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	result, err := h.keeper.Login(r.Context(), req.ToCoreAuthMessage())
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			h.respond(w, Response{Error: errBadCredentials}, http.StatusBadRequest, requestId)
		} else {
			h.respond(w, Response{Error: oopsErr}, http.StatusInternalServerError, requestId)
		}
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *HandKeeperHandler) HandleCreateHand(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	identity, ok := h.identity(w, r, CreateHand)
	if !ok {
		return
	}

	var req payload.CreateHandRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not save hand",
			Error:   err.Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateHand,
			"request_id", requestId)
		return
	}

	record, err := h.keeper.CreateHand(r.Context(), identity, req.ToCoreHandMessage())
	if err != nil {
		h.respond(w, Response{Error: oopsErr}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to save hand",
			"error", err,
			"handler", CreateHand,
			"user_id", identity.UserID,
			"request_id", requestId)
		return
	}

	h.respond(w, record, http.StatusCreated, requestId)
}

func (h *HandKeeperHandler) HandleListHands(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	identity, ok := h.identity(w, r, ListHands)
	if !ok {
		return
	}

	query, err := payload.ParseListHandsQuery(r.URL.Query())
	if err == nil {
		err = query.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not list hands",
			Error:   err.Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to validate query parameters",
			"error", err,
			"handler", ListHands,
			"request_id", requestId)
		return
	}

	page := query.ToCorePage()
	result, err := h.keeper.ListHands(r.Context(), identity, page)
	if err != nil {
		h.respond(w, Response{Error: oopsErr}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list hands",
			"error", err,
			"handler", ListHands,
			"user_id", identity.UserID,
			"request_id", requestId)
		return
	}

	hands := result.Hands
	if hands == nil {
		hands = []core.HandRecord{}
	}
	if page.Limit > 0 {
		w.Header().Set(TotalCountHeader, strconv.FormatInt(result.Total, 10))
	}

	h.respond(w, hands, http.StatusOK, requestId)
}

func (h *HandKeeperHandler) HandleDeleteHand(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	identity, ok := h.identity(w, r, DeleteHand)
	if !ok {
		return
	}

	handID := r.PathValue("id")
	err := h.keeper.DeleteHand(r.Context(), identity, handID)
	if err != nil {
		if errors.Is(err, core.ErrHandNotFound) {
			h.respond(w, Response{Error: errHandNotFound}, http.StatusNotFound, requestId)
		} else {
			h.respond(w, Response{Error: oopsErr}, http.StatusInternalServerError, requestId)
		}
		h.logs.Errorw("failed to delete hand",
			"error", err,
			"hand_id", handID,
			"handler", DeleteHand,
			"user_id", identity.UserID,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: msgDeleted}, http.StatusOK, requestId)
}

func (h *HandKeeperHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	if err := h.keeper.CheckHealth(r.Context()); err != nil {
		h.respond(w, Response{Error: errStoreUnavailable}, http.StatusServiceUnavailable, requestId)
		h.logs.Errorw("health check failed",
			"error", err,
			"handler", Health,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "ok"}, http.StatusOK, requestId)
}

// identity answers 401 when the auth middleware did not run before the handler.
func (h *HandKeeperHandler) identity(w http.ResponseWriter, r *http.Request, route string) (core.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		requestId := middleware.RequestIDFromContext(r.Context())
		h.respond(w, Response{Error: errAccessDenied}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("request reached a protected handler without identity",
			"handler", route,
			"request_id", requestId)
	}
	return identity, ok
}
