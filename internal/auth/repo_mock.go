package auth

import (
	"context"
)

type repoMock struct {
	users map[string]*User
}

func NewMockAuthRepo() *repoMock {
	return &repoMock{
		users: make(map[string]*User),
	}
}

func (r *repoMock) Add(_ context.Context, user User) error {
	if _, ok := r.users[user.Email]; ok {
		return ErrEmailTaken
	}
	r.users[user.Email] = &user
	return nil
}

func (r *repoMock) GetByEmail(_ context.Context, email string) (*User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}
