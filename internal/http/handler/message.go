package handler

import (
	"errors"
	"gamesite/internal/core"
)

const (
	msgServerError       = "Server error"
	msgLoginSuccessful   = "Login successful"
	msgAccountConfirmed  = "Account confirmed successfully!"
	msgInvalidCode       = "Invalid confirmation code"
	msgCheckEmail        = "Registration successful! Check your email for the confirmation code."
	msgCodeInBandPattern = "Registration successful! Your confirmation code is %s"
)

// LoginResponse is what the game client reads after POST /login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

var displayText = map[error]string{
	core.ErrMissingFields:   "Missing fields",
	core.ErrCaptchaFailed:   "Captcha failed",
	core.ErrEmailExists:     "Email already exists",
	core.ErrUsernameExists:  "Username already exists",
	core.ErrInvalidCode:     msgInvalidCode,
	core.ErrInvalidUsername: "Invalid username",
	core.ErrWrongPassword:   "Wrong password",
}

// userMessage returns the text shown to the user for err. Anything that is not a known
// account error collapses into the generic server error.
func userMessage(err error) string {
	for sentinel, text := range displayText {
		if errors.Is(err, sentinel) {
			return text
		}
	}
	return msgServerError
}
