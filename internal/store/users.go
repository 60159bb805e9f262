package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"trendpulse-backend/internal/models"
)

// ErrUsernameTaken is returned by CreateUser when the username is already
// in use. Uniqueness is enforced by a linear scan, not an index.
var ErrUsernameTaken = errors.New("username already taken")

// CreateUser stores a new account with a bcrypt hash of the password.
// The plaintext is never retained.
func (s *Store) CreateUser(ctx context.Context, ins models.InsertUser) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == ins.Username {
			return models.User{}, ErrUsernameTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(ins.Password), 12)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := models.User{
		ID:           s.nextUserID,
		Username:     ins.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	s.nextUserID++
	s.users[u.ID] = u

	return u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	return u, ok
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}
