package core

import (
	"github.com/jellydator/validation"
)

type RegisterMessage struct {
	Email    string
	Username string
	Password string
	Captcha  string
}

func (m RegisterMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Email, validation.Required),
		validation.Field(&m.Username, validation.Required),
		validation.Field(&m.Password, validation.Required),
		validation.Field(&m.Captcha, validation.Required),
	)
}

// Registration is the outcome of a successful Register call.
// Code is only set when the confirmation email could not be delivered and has to be shown to the user instead.
type Registration struct {
	Email     string
	Delivered bool
	Code      string
}

type ConfirmMessage struct {
	Email string
	Code  string
}

type LoginMessage struct {
	Email    string
	Username string
	Password string
}

func (m LoginMessage) Validate(requireEmail bool) error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Email, validation.When(requireEmail, validation.Required)),
		validation.Field(&m.Username, validation.Required),
		validation.Field(&m.Password, validation.Required),
	)
}

// Policy holds the tunable rules of the account lifecycle.
type Policy struct {
	// CaptchaAnswer is the literal a registration must echo back.
	CaptchaAnswer string
	// LoginRequiresEmail switches login to the email+username+password variant.
	LoginRequiresEmail bool
}
