package core

import "errors"

// Kind classifies failures so transports can choose a response without inspecting messages.
type Kind int

const (
	KindDependency Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	default:
		return "dependency"
	}
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrMissingFields  = &Error{Kind: KindValidation, Message: "missing fields"}
	ErrCaptchaFailed  = &Error{Kind: KindValidation, Message: "captcha failed"}
	ErrEmailExists    = &Error{Kind: KindConflict, Message: "email exists"}
	ErrUsernameExists = &Error{Kind: KindConflict, Message: "username exists"}
	ErrInvalidCode    = &Error{Kind: KindNotFound, Message: "invalid confirmation code"}

	// login failures name the failing field; the game client shows the message as is
	ErrInvalidUsername = &Error{Kind: KindAuth, Message: "invalid username"}
	ErrWrongPassword   = &Error{Kind: KindAuth, Message: "wrong password"}
)

// KindOf reports the kind of err. Errors that did not originate in this package are dependency failures.
func KindOf(err error) Kind {
	var coreErr *Error
	if errors.As(err, &coreErr) {
		return coreErr.Kind
	}
	return KindDependency
}
