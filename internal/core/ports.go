package core

import (
	"context"
	"gamesite/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AccountStore . AccountStore
type AccountStore interface {
	CreateUser(ctx context.Context, user repository.User) error
	ConfirmUser(ctx context.Context, email, code string) error
	GetConfirmedUser(ctx context.Context, username, email string) (repository.User, error)
}

//counterfeiter:generate -o fake -fake-name PasswordHasher . PasswordHasher
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

//counterfeiter:generate -o fake -fake-name CodeGenerator . CodeGenerator
type CodeGenerator interface {
	Generate() (string, error)
}

//counterfeiter:generate -o fake -fake-name Notifier . Notifier
type Notifier interface {
	SendConfirmationCode(ctx context.Context, to, username, code string) error
}
