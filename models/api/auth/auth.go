package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginData) Validate() error {
	if !strings.Contains(d.Email, "@") {
		return errors.New("invalid email")
	}
	if d.Password == "" {
		return errors.New("password is not specified")
	}
	return nil
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
	UserID       string `json:"user_id"`
}

type RefreshData struct {
	RefreshToken string `json:"refresh_token"`
}

func (d RefreshData) Validate() error {
	if d.RefreshToken == "" {
		return errors.New("refresh token is not specified")
	}
	return nil
}
