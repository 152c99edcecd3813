package core

import (
	"encoding/json"
	"time"
)

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID   string
	Username string
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// HandMessage is the client-supplied part of a hand. It carries no owner.
type HandMessage struct {
	Timestamp int64
	DateStr   string
	Game      json.RawMessage
	Hero      json.RawMessage
	Villains  json.RawMessage
	Board     json.RawMessage
	Logs      json.RawMessage
}

type HandRecord struct {
	ID        string          `json:"_id"`
	Owner     string          `json:"owner"`
	OwnerName string          `json:"ownerName"`
	Timestamp int64           `json:"timestamp"`
	DateStr   string          `json:"dateStr"`
	Game      json.RawMessage `json:"game"`
	Hero      json.RawMessage `json:"hero"`
	Villains  json.RawMessage `json:"villains"`
	Board     json.RawMessage `json:"board"`
	Logs      json.RawMessage `json:"logs"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Page bounds a listing. A zero Limit returns everything.
type Page struct {
	Limit  int
	Offset int
}

type HandPage struct {
	Hands []HandRecord
	Total int64
}
