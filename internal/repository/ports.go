package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Create(ctx context.Context, record any) error
	GetOneWhere(ctx context.Context, conditions map[string]any, entity any) error
	UpdateWhere(ctx context.Context, model any, conditions map[string]any, updates map[string]any) (int64, error)
}
