package repository

import (
	"context"
	"errors"
	"fmt"
	"gamesite/internal/db"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound  error = errors.New("user not found")
	ErrEmailTaken    error = errors.New("email already taken")
	ErrUsernameTaken error = errors.New("username already taken")
)

type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Migrate() error {
	err := r.db.MigrateModels(&User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// CreateUser inserts user. The unique indexes on email and username are the only duplicate check.
func (r *UserRepository) CreateUser(ctx context.Context, user User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	err := r.db.Create(ctx, &user)
	if err != nil {
		var constraintErr *db.ConstraintError
		if errors.As(err, &constraintErr) {
			switch constraintErr.Constraint {
			case EmailIndex:
				return ErrEmailTaken
			case UsernameIndex:
				return r.usernameConflict(ctx, user.Email)
			}
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// usernameConflict reports ErrEmailTaken when the email is held as well. An insert names only the first index it hits.
func (r *UserRepository) usernameConflict(ctx context.Context, email string) error {
	err := r.db.GetOneWhere(ctx, map[string]any{"email": email}, &User{})
	if err == nil {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

// ConfirmUser flips the unconfirmed account matching email and code to confirmed in a single statement.
func (r *UserRepository) ConfirmUser(ctx context.Context, email, code string) error {
	conditions := map[string]any{
		"email":        email,
		"confirm_code": code,
		"confirmed":    false,
	}
	updates := map[string]any{
		"confirmed":    true,
		"confirm_code": nil,
	}

	affected, err := r.db.UpdateWhere(ctx, &User{}, conditions, updates)
	if err != nil {
		return fmt.Errorf("confirm user: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetConfirmedUser looks up a confirmed account by username, and by email too when email is not empty.
func (r *UserRepository) GetConfirmedUser(ctx context.Context, username, email string) (User, error) {
	conditions := map[string]any{
		"username":  username,
		"confirmed": true,
	}
	if email != "" {
		conditions["email"] = email
	}

	var user User
	err := r.db.GetOneWhere(ctx, conditions, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}
