package handler

import (
	"context"
	"gamesite/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AccountService . AccountService
type AccountService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.Registration, error)
	Confirm(ctx context.Context, msg core.ConfirmMessage) error
	Login(ctx context.Context, msg core.LoginMessage) error
}

//counterfeiter:generate -o fake -fake-name RequestDecoder . RequestDecoder
type RequestDecoder interface {
	DecodePayload(r *http.Request, object any) error
}
