package auth

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/gymlog/pkg"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *repoMock) {
	repo := NewMockAuthRepo()
	tokens := NewTokenService("test-secret", 30*time.Minute)
	return NewService(repo, tokens), repo
}

func TestService_Register(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	user, err := service.Register(ctx, "serj@tubin.com", "testpass")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, "", user.ID.String())
	assert.Equal(t, "serj@tubin.com", user.Email)

	// the stored hash verifies against the original password
	stored, err := repo.GetByEmail(ctx, "serj@tubin.com")
	require.NoError(t, err)
	assert.NotEqual(t, "testpass", stored.PasswordHash)
	assert.True(t, pkg.CheckPasswordHash("testpass", stored.PasswordHash))
}

func TestService_Register_EmailTaken(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, "serj@tubin.com", "testpass")
	require.NoError(t, err)

	_, err = service.Register(ctx, "serj@tubin.com", "otherpass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Register_InvalidInput(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, "", "testpass")
	assert.ErrorIs(t, err, ErrInvalidRegistration)

	_, err = service.Register(ctx, "   ", "testpass")
	assert.ErrorIs(t, err, ErrInvalidRegistration)

	_, err = service.Register(ctx, "serj@tubin.com", "")
	assert.ErrorIs(t, err, ErrInvalidRegistration)
}

func TestService_Register_DistinctUsers(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		email := gofakeit.Email()
		user, err := service.Register(ctx, email, gofakeit.Password(true, true, true, false, false, 12))
		require.NoError(t, err)
		assert.Equal(t, email, user.Email)

		stored, err := repo.GetByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, stored.ID)
	}

	assert.Len(t, repo.users, 3)
}

func TestService_Login(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	user, err := service.Register(ctx, "serj@tubin.com", "testpass")
	require.NoError(t, err)

	token, err := service.Login(ctx, "serj@tubin.com", "testpass")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, email, err := service.tokens.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), userID)
	assert.Equal(t, "serj@tubin.com", email)
}

func TestService_Login_BadCredentials(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, "serj@tubin.com", "testpass")
	require.NoError(t, err)

	// unknown email and wrong password fail identically
	_, errUnknownEmail := service.Login(ctx, "who@tubin.com", "testpass")
	_, errWrongPassword := service.Login(ctx, "serj@tubin.com", "wrongpass")

	assert.ErrorIs(t, errUnknownEmail, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.Equal(t, errUnknownEmail, errWrongPassword)
}
