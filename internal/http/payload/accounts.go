package payload

import (
	"gamesite/internal/core"
	"net/url"

	"github.com/jellydator/validation"
)

// bcrypt only looks at the first 72 bytes of a password and refuses longer ones
const maxPasswordBytes = 72

// RegisterRequest is the body of POST /register. Presence is checked by the account service,
// payloads only bound the size of what was sent.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Captcha  string `json:"captcha"`
}

func (p *RegisterRequest) BindForm(values url.Values) {
	p.Email = values.Get("email")
	p.Username = values.Get("username")
	p.Password = values.Get("password")
	p.Captcha = values.Get("captcha")
}

func (p RegisterRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Length(0, 255)),
		validation.Field(&p.Username, validation.Length(0, 255)),
		validation.Field(&p.Password, validation.Length(0, maxPasswordBytes)),
		validation.Field(&p.Captcha, validation.Length(0, 64)),
	)
}

func (p RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Email:    p.Email,
		Username: p.Username,
		Password: p.Password,
		Captcha:  p.Captcha,
	}
}

type ConfirmRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (p *ConfirmRequest) BindForm(values url.Values) {
	p.Email = values.Get("email")
	p.Code = values.Get("code")
}

func (p ConfirmRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Length(0, 255)),
		validation.Field(&p.Code, validation.Length(0, 6)),
	)
}

func (p ConfirmRequest) ToMessage() core.ConfirmMessage {
	return core.ConfirmMessage{
		Email: p.Email,
		Code:  p.Code,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (p *LoginRequest) BindForm(values url.Values) {
	p.Email = values.Get("email")
	p.Username = values.Get("username")
	p.Password = values.Get("password")
}

func (p LoginRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Length(0, 255)),
		validation.Field(&p.Username, validation.Length(0, 255)),
		validation.Field(&p.Password, validation.Length(0, maxPasswordBytes)),
	)
}

func (p LoginRequest) ToMessage() core.LoginMessage {
	return core.LoginMessage{
		Email:    p.Email,
		Username: p.Username,
		Password: p.Password,
	}
}
