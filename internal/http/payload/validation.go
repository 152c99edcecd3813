package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jellydator/validation"
)

// DefaultMaxBodyBytes caps request bodies. Hand logs can be long.
const DefaultMaxBodyBytes = 1 << 20

type DecodeValidator struct {
	MaxBodyBytes int64
}

// DecodeJSONPayload decodes exactly one JSON value from the request body into
// object, rejecting unknown fields, and validates it when object is Validatable.
func (dv DecodeValidator) DecodeJSONPayload(r *http.Request, object any) error {
	limit := dv.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	body := http.MaxBytesReader(nil, r.Body, limit)
	defer body.Close()

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("decoding json payload: unexpected data after the JSON value")
	}

	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
