package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/2beens/fitstreak/internal/apperr"
	"github.com/2beens/fitstreak/internal/telemetry/tracing"
	"github.com/2beens/fitstreak/internal/users"
	"github.com/2beens/fitstreak/pkg"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=authenticator_mocks_test.go -package=auth_test

const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
	MinPasswordLength = 6
)

var (
	ErrUserNotFound  = errors.New("no such user")
	ErrWrongPassword = errors.New("wrong password")
	ErrUsernameTaken = errors.New("username already taken")

	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
)

type usersRepo interface {
	FindByUsername(ctx context.Context, username string) (*users.User, error)
	Insert(ctx context.Context, username, passwordHash string) error
}

type Authenticator struct {
	repo     usersRepo
	hashCost int
}

func NewAuthenticator(repo usersRepo, hashCost int) *Authenticator {
	return &Authenticator{
		repo:     repo,
		hashCost: hashCost,
	}
}

func (a *Authenticator) Register(ctx context.Context, username, password string) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.register")
	defer span.End()
	span.SetAttributes(attribute.String("username", username))

	if err := ValidateCredentials(username, password); err != nil {
		return err
	}

	hash, err := pkg.HashPassword(password, a.hashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := a.repo.Insert(ctx, username, hash); err != nil {
		if errors.Is(err, users.ErrDuplicateKey) {
			return ErrUsernameTaken
		}
		span.RecordError(err)
		return err
	}
	return nil
}

// Login checks the credentials only, starting the session is up to the caller.
func (a *Authenticator) Login(ctx context.Context, username, password string) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.login")
	defer span.End()
	span.SetAttributes(attribute.String("username", username))

	if username == "" || password == "" {
		return apperr.Validation("username and password are required")
	}

	user, err := a.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return ErrUserNotFound
		}
		span.RecordError(err)
		return err
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		return ErrWrongPassword
	}
	return nil
}

func ValidateCredentials(username, password string) error {
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return apperr.Validation(fmt.Sprintf("username must be %d to %d characters long", MinUsernameLength, MaxUsernameLength))
	}
	if !usernameRegex.MatchString(username) {
		return apperr.Validation("username may contain only letters, digits, '.', '_' and '-'")
	}
	if len(password) < MinPasswordLength {
		return apperr.Validation(fmt.Sprintf("password must be at least %d characters long", MinPasswordLength))
	}
	return nil
}
