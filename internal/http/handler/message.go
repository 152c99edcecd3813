package handler

import (
	"encoding/json"
	"net/http"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	msgRegistered       = "Register Success! Please Login."
	msgDeleted          = "Deleted"
	errUsernameTaken    = "Username already taken"
	errBadCredentials   = "invalid username or password"
	errHandNotFound     = "Hand not found or not owned by you"
	errAccessDenied     = "Access Denied"
	errStoreUnavailable = "store unavailable"
)

type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Error   string `json:"error,omitempty"`   // error detail (if any)
}

func (h *HandKeeperHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	encoder := json.NewEncoder(w)
	// stored hand payloads go back out exactly as they were saved
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
