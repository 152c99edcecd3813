package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"handkeeper/internal/core"

	"github.com/jellydator/validation"
)

const MaxPageLimit = 500

// CreateHandRequest is the body of a create-hand call. Owner fields sent by
// the client are accepted as strings and dropped.
type CreateHandRequest struct {
	Timestamp int64           `json:"timestamp"`
	DateStr   string          `json:"dateStr"`
	Game      json.RawMessage `json:"game"`
	Hero      json.RawMessage `json:"hero"`
	Villains  json.RawMessage `json:"villains"`
	Board     json.RawMessage `json:"board"`
	Logs      json.RawMessage `json:"logs"`
	Owner     *string         `json:"owner"`
	OwnerName *string         `json:"ownerName"`
}

func (c CreateHandRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Timestamp, validation.Min(int64(0))),
		validation.Field(&c.DateStr, validation.Length(0, 255)),
		validation.Field(&c.Game, validation.By(jsonKind('{'))),
		validation.Field(&c.Hero, validation.By(jsonKind('{'))),
		validation.Field(&c.Villains, validation.By(jsonKind('['))),
		validation.Field(&c.Board, validation.By(jsonKind('['))),
		validation.Field(&c.Logs, validation.By(jsonKind('['))),
	)
}

func (c CreateHandRequest) ToCoreHandMessage() core.HandMessage {
	return core.HandMessage{
		Timestamp: c.Timestamp,
		DateStr:   c.DateStr,
		Game:      compact(c.Game),
		Hero:      compact(c.Hero),
		Villains:  compact(c.Villains),
		Board:     compact(c.Board),
		Logs:      compact(c.Logs),
	}
}

// jsonKind accepts null or a JSON value opening with the given delimiter.
func jsonKind(delim byte) validation.RuleFunc {
	return func(value any) error {
		raw, _ := value.(json.RawMessage)
		raw = bytes.TrimSpace(raw)
		if isNull(raw) || raw[0] == delim {
			return nil
		}
		if delim == '{' {
			return errors.New("must be an object")
		}
		return errors.New("must be an array")
	}
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// compact strips insignificant whitespace so the stored text is canonical.
// A null or absent value becomes nil.
func compact(raw json.RawMessage) json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return buf.Bytes()
}

// ListHandsQuery holds the optional pagination of a list call.
type ListHandsQuery struct {
	Limit  *int
	Offset *int
}

// ParseListHandsQuery reads limit and offset from the query string.
func ParseListHandsQuery(values url.Values) (ListHandsQuery, error) {
	var q ListHandsQuery
	var err error
	if q.Limit, err = intParam(values, "limit"); err != nil {
		return ListHandsQuery{}, err
	}
	if q.Offset, err = intParam(values, "offset"); err != nil {
		return ListHandsQuery{}, err
	}
	return q, nil
}

func intParam(values url.Values, name string) (*int, error) {
	if !values.Has(name) {
		return nil, nil
	}
	n, err := strconv.Atoi(values.Get(name))
	if err != nil {
		return nil, fmt.Errorf("%s: must be an integer", name)
	}
	return &n, nil
}

func (q ListHandsQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Limit,
			validation.When(q.Limit != nil, validation.Required.Error("must be between 1 and 500")),
			validation.Min(1),
			validation.Max(MaxPageLimit),
		),
		validation.Field(&q.Offset,
			validation.When(q.Limit == nil, validation.By(mustBeAbsent("requires limit"))),
			validation.Min(0),
		),
	)
}

func (q ListHandsQuery) ToCorePage() core.Page {
	var page core.Page
	if q.Limit != nil {
		page.Limit = *q.Limit
	}
	if q.Offset != nil {
		page.Offset = *q.Offset
	}
	return page
}

func mustBeAbsent(msg string) validation.RuleFunc {
	return func(value any) error {
		if p, ok := value.(*int); ok && p != nil {
			return errors.New(msg)
		}
		return nil
	}
}
