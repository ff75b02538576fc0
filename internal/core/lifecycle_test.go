package core_test

import (
	"context"
	"errors"
	"gamesite/internal/core"
	"gamesite/internal/repository"
	"gamesite/pkg/password"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// memoryStore mimics the unique indexes and conditional updates of the real stores.
type memoryStore struct {
	mu    sync.Mutex
	users []repository.User
}

func (m *memoryStore) CreateUser(_ context.Context, user repository.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}
	for _, u := range m.users {
		if u.Username == user.Username {
			return repository.ErrUsernameTaken
		}
	}
	m.users = append(m.users, user)
	return nil
}

func (m *memoryStore) ConfirmUser(_ context.Context, email, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.users {
		if u.Email == email && !u.Confirmed && u.ConfirmCode != nil && *u.ConfirmCode == code {
			m.users[i].Confirmed = true
			m.users[i].ConfirmCode = nil
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func (m *memoryStore) GetConfirmedUser(_ context.Context, username, email string) (repository.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username && u.Confirmed && (email == "" || u.Email == email) {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrUserNotFound
}

func (m *memoryStore) byEmail(email string) repository.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u
		}
	}
	return repository.User{}
}

type sequenceCodes struct {
	codes []string
}

func (s *sequenceCodes) Generate() (string, error) {
	code := s.codes[0]
	s.codes = s.codes[1:]
	return code, nil
}

type offlineNotifier struct{}

func (offlineNotifier) SendConfirmationCode(context.Context, string, string, string) error {
	return errors.New("smtp: connection refused")
}

var _ = Describe("Account lifecycle", func() {
	var (
		store   *memoryStore
		service *core.AccountService
		ctx     context.Context
	)

	BeforeEach(func() {
		store = &memoryStore{}
		ctx = context.Background()
		service = core.NewAccountService(
			zap.NewNop().Sugar(),
			store,
			password.NewBcryptHasher(bcrypt.MinCost),
			&sequenceCodes{codes: []string{"482931", "777777", "123456"}},
			offlineNotifier{},
			core.Policy{CaptchaAnswer: "7"},
		)
	})

	It("should register, confirm and log in", func() {
		registration, err := service.Register(ctx, core.RegisterMessage{
			Email: "a@x.com", Username: "alice", Password: "Secret1", Captcha: "7",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(registration.Delivered).To(BeFalse())
		Expect(registration.Code).To(Equal("482931"))

		stored := store.byEmail("a@x.com")
		Expect(stored.Confirmed).To(BeFalse())
		Expect(*stored.ConfirmCode).To(Equal("482931"))
		Expect(stored.PasswordHash).NotTo(Equal("Secret1"))

		By("refusing to log in before confirmation")
		Expect(service.Login(ctx, core.LoginMessage{Username: "alice", Password: "Secret1"})).
			To(MatchError(core.ErrInvalidUsername))

		By("rejecting a wrong code without changing the record")
		Expect(service.Confirm(ctx, core.ConfirmMessage{Email: "a@x.com", Code: "000000"})).
			To(MatchError(core.ErrInvalidCode))
		Expect(store.byEmail("a@x.com")).To(Equal(stored))

		By("confirming with the issued code")
		Expect(service.Confirm(ctx, core.ConfirmMessage{Email: "a@x.com", Code: "482931"})).To(Succeed())
		confirmed := store.byEmail("a@x.com")
		Expect(confirmed.Confirmed).To(BeTrue())
		Expect(confirmed.ConfirmCode).To(BeNil())

		By("treating the code as single use")
		Expect(service.Confirm(ctx, core.ConfirmMessage{Email: "a@x.com", Code: "482931"})).
			To(MatchError(core.ErrInvalidCode))

		By("authenticating with the right password only")
		Expect(service.Login(ctx, core.LoginMessage{Username: "alice", Password: "Secret1"})).To(Succeed())
		Expect(service.Login(ctx, core.LoginMessage{Username: "alice", Password: "wrong"})).
			To(MatchError(core.ErrWrongPassword))
		Expect(store.byEmail("a@x.com")).To(Equal(confirmed))
	})

	It("should refuse a second registration with the same email regardless of username", func() {
		_, err := service.Register(ctx, core.RegisterMessage{
			Email: "a@x.com", Username: "alice", Password: "Secret1", Captcha: "7",
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Register(ctx, core.RegisterMessage{
			Email: "a@x.com", Username: "bob", Password: "Other1", Captcha: "7",
		})
		Expect(err).To(MatchError(core.ErrEmailExists))

		_, err = service.Register(ctx, core.RegisterMessage{
			Email: "b@x.com", Username: "alice", Password: "Other1", Captcha: "7",
		})
		Expect(err).To(MatchError(core.ErrUsernameExists))
	})

	It("should reject any captcha other than the accepted literal", func() {
		for _, answer := range []string{"6", "07", " 7", "seven"} {
			_, err := service.Register(ctx, core.RegisterMessage{
				Email: "a@x.com", Username: "alice", Password: "Secret1", Captcha: answer,
			})
			Expect(err).To(MatchError(core.ErrCaptchaFailed), "captcha %q", answer)
		}
		Expect(store.byEmail("a@x.com").Email).To(BeEmpty())
	})
})
