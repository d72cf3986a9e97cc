package userservice

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"unicode/utf8"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/ichigozero/todogrpc/authsvc/pkg/authservice"
	"github.com/ichigozero/todogrpc/usersvc"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(ctx context.Context, username, password, email string) (usersvc.User, error)
	Login(ctx context.Context, username, password string) (usersvc.User, string, error)
}

// ErrLoginDisabled is returned by Login when no token signing secret is
// configured.
var ErrLoginDisabled = errors.New("login is not available on this server")

func New(users usersvc.UserRepository, tokenizer authservice.Tokenizer, logger log.Logger) Service {
	var svc Service
	{
		svc = NewBasicService(users, tokenizer, logger)
		svc = LoggingMiddleware(logger)(svc)
	}
	return svc
}

type basicService struct {
	users     usersvc.UserRepository
	tokenizer authservice.Tokenizer
	logger    log.Logger
}

// NewBasicService returns a Service without middleware. A nil tokenizer
// disables Login.
func NewBasicService(users usersvc.UserRepository, tokenizer authservice.Tokenizer, logger log.Logger) Service {
	return basicService{users: users, tokenizer: tokenizer, logger: logger}
}

var (
	bcryptCost             = 12
	compareHashAndPassword = bcrypt.CompareHashAndPassword
)

// Unknown usernames are checked against this hash so both failure paths pay
// for one bcrypt comparison.
var (
	decoyOnce sync.Once
	decoyHash []byte
)

func decoy() []byte {
	decoyOnce.Do(func() {
		decoyHash, _ = bcrypt.GenerateFromPassword([]byte("decoy password"), bcryptCost)
	})
	return decoyHash
}

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

func (s basicService) Register(ctx context.Context, username, password, email string) (usersvc.User, error) {
	if err := validRegistration(username, password, email); err != nil {
		return usersvc.User{}, err
	}

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return usersvc.User{}, err
	}
	if taken {
		return usersvc.User{}, fmt.Errorf("%w: The username '%s' is already taken.", usersvc.ErrUsernameTaken, username)
	}

	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return usersvc.User{}, err
	}
	if taken {
		return usersvc.User{}, fmt.Errorf("%w: The email '%s' is already registered.", usersvc.ErrEmailTaken, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return usersvc.User{}, err
	}

	return s.users.Create(ctx, usersvc.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
}

func (s basicService) Login(ctx context.Context, username, password string) (usersvc.User, string, error) {
	if username == "" || password == "" {
		return usersvc.User{}, "", fmt.Errorf("%w: Username and password are required", usersvc.ErrInvalidArgument)
	}
	if s.tokenizer == nil {
		return usersvc.User{}, "", ErrLoginDisabled
	}

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, usersvc.ErrUserNotFound) {
		compareHashAndPassword(decoy(), []byte(password))
		return usersvc.User{}, "", usersvc.ErrInvalidCredentials
	}
	if err != nil {
		return usersvc.User{}, "", err
	}

	if err := compareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return usersvc.User{}, "", usersvc.ErrInvalidCredentials
	}

	token, err := s.tokenizer.Generate(user.ID, user.Username)
	if err != nil {
		return usersvc.User{}, "", err
	}

	err = s.users.UpsertSession(ctx, usersvc.Session{
		UserID:       user.ID,
		SessionToken: token.SessionID,
		JWTToken:     token.Value,
		ExpiresAt:    token.ExpiresAt,
	})
	if err != nil {
		level.Warn(s.logger).Log("msg", "could not store session", "user_id", user.ID, "err", err)
	}

	return user, token.Value, nil
}

func validRegistration(username, password, email string) error {
	switch {
	case username == "" || password == "" || email == "":
		return fmt.Errorf("%w: Username, password, and email are required to create an account.", usersvc.ErrInvalidArgument)
	case !emailPattern.MatchString(email):
		return fmt.Errorf("%w: Please enter a valid email address (e.g., user@example.com).", usersvc.ErrInvalidArgument)
	case utf8.RuneCountInString(password) < usersvc.MinPasswordLength:
		return fmt.Errorf("%w: Password must be at least %d characters long", usersvc.ErrInvalidArgument, usersvc.MinPasswordLength)
	case !usernamePattern.MatchString(username):
		return fmt.Errorf("%w: Username can only contain letters, numbers, and underscores.", usersvc.ErrInvalidArgument)
	case len(username) < usersvc.MinUsernameLength || len(username) > usersvc.MaxUsernameLength:
		return fmt.Errorf("%w: Username must be between %d and %d characters long.", usersvc.ErrInvalidArgument, usersvc.MinUsernameLength, usersvc.MaxUsernameLength)
	}
	return nil
}
