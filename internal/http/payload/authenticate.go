package payload

import (
	"errors"
	"strings"

	"handkeeper/internal/core"

	"github.com/jellydator/validation"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

// AuthRequest is the body of both register and login.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	a.Username = strings.TrimSpace(a.Username)
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&a.Password, validation.Required, validation.By(passwordLength)),
	)
}

func (a AuthRequest) ToCoreAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: strings.TrimSpace(a.Username),
		Password: a.Password,
	}
}

func passwordLength(value any) error {
	password, _ := value.(string)
	if len(password) > maxPasswordBytes {
		return errors.New("must be at most 72 bytes long")
	}
	return nil
}
