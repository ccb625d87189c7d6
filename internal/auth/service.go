package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	"github.com/google/uuid"
)

var (
	ErrInvalidRegistration = errors.New("invalid registration data")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so login failures never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type authRepo interface {
	Add(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type Service struct {
	repo   authRepo
	tokens *TokenService
}

func NewService(repo authRepo, tokens *TokenService) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
	}
}

func (s *Service) Register(ctx context.Context, email, password string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email empty", ErrInvalidRegistration)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password empty", ErrInvalidRegistration)
	}

	passwordHash, err := pkg.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Add(ctx, user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}
