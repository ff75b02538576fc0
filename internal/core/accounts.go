package core

import (
	"context"
	"errors"
	"fmt"
	"gamesite/internal/repository"
	"gamesite/pkg/password"

	"go.uber.org/zap"
)

// AccountService drives the account lifecycle: registration, email confirmation and login.
type AccountService struct {
	logs     *zap.SugaredLogger
	store    AccountStore
	hasher   PasswordHasher
	codes    CodeGenerator
	notifier Notifier
	policy   Policy
}

// NewAccountService is a constructor function for the AccountService type.
func NewAccountService(logger *zap.SugaredLogger, store AccountStore, hasher PasswordHasher, codes CodeGenerator, notifier Notifier, policy Policy) *AccountService {
	return &AccountService{
		logs:     logger,
		store:    store,
		hasher:   hasher,
		codes:    codes,
		notifier: notifier,
		policy:   policy,
	}
}

// Register creates an unconfirmed account and hands its confirmation code to the notifier.
// The store's unique indexes decide whether the email or username is taken, so no lookup precedes the insert.
// A failed delivery does not fail the registration: the code is returned in the Registration instead.
func (s *AccountService) Register(ctx context.Context, msg RegisterMessage) (Registration, error) {
	if err := msg.Validate(); err != nil {
		return Registration{}, ErrMissingFields
	}

	if msg.Captcha != s.policy.CaptchaAnswer {
		return Registration{}, ErrCaptchaFailed
	}

	hash, err := s.hasher.Hash(msg.Password)
	if err != nil {
		return Registration{}, fmt.Errorf("hash password: %w", err)
	}

	code, err := s.codes.Generate()
	if err != nil {
		return Registration{}, fmt.Errorf("generate confirmation code: %w", err)
	}

	err = s.store.CreateUser(ctx, repository.User{
		Email:        msg.Email,
		Username:     msg.Username,
		PasswordHash: hash,
		ConfirmCode:  &code,
		Confirmed:    false,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			return Registration{}, ErrEmailExists
		case errors.Is(err, repository.ErrUsernameTaken):
			return Registration{}, ErrUsernameExists
		}
		return Registration{}, fmt.Errorf("create user: %w", err)
	}

	registration := Registration{
		Email:     msg.Email,
		Delivered: true,
	}

	if err = s.notifier.SendConfirmationCode(ctx, msg.Email, msg.Username, code); err != nil {
		s.logs.Warnw("confirmation code not delivered, returning it in-band",
			"error", err,
			"email", msg.Email)
		registration.Delivered = false
		registration.Code = code
	}

	s.logs.Infow("account registered",
		"email", msg.Email,
		"username", msg.Username,
		"code_delivered", registration.Delivered)

	return registration, nil
}

// Confirm marks the account holding email and code as confirmed and clears the code.
// Wrong email and wrong code are reported identically.
func (s *AccountService) Confirm(ctx context.Context, msg ConfirmMessage) error {
	if msg.Email == "" || msg.Code == "" {
		return ErrInvalidCode
	}

	err := s.store.ConfirmUser(ctx, msg.Email, msg.Code)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidCode
		}
		return fmt.Errorf("confirm user: %w", err)
	}

	s.logs.Infow("account confirmed", "email", msg.Email)
	return nil
}

// Login checks the credentials of a confirmed account. A nil error is the whole proof of authentication.
func (s *AccountService) Login(ctx context.Context, msg LoginMessage) error {
	if err := msg.Validate(s.policy.LoginRequiresEmail); err != nil {
		return ErrMissingFields
	}

	email := ""
	if s.policy.LoginRequiresEmail {
		email = msg.Email
	}

	user, err := s.store.GetConfirmedUser(ctx, msg.Username, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidUsername
		}
		return fmt.Errorf("get confirmed user: %w", err)
	}

	if err = s.hasher.Compare(user.PasswordHash, msg.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return ErrWrongPassword
		}
		return fmt.Errorf("compare password: %w", err)
	}

	s.logs.Infow("login succeeded", "username", msg.Username)
	return nil
}
