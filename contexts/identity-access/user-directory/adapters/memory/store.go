package memory

import (
	"context"
	"sync"
	"time"

	"parcelhub/contexts/identity-access/user-directory/domain/entities"
	domainerrors "parcelhub/contexts/identity-access/user-directory/domain/errors"
)

type Store struct {
	mu    sync.RWMutex
	users map[string]entities.User
}

func NewStore() *Store {
	return &Store{users: make(map[string]entities.User)}
}

func (s *Store) InsertOrTouch(_ context.Context, user entities.User) (entities.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.users[user.Email]; ok {
		existing.LastLoggedIn = user.LastLoggedIn.UTC()
		s.users[user.Email] = existing
		return cloneUser(existing), false, nil
	}
	s.users[user.Email] = cloneUser(user)
	return cloneUser(user), true, nil
}

func (s *Store) GetUser(_ context.Context, email string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (s *Store) UpdateRole(_ context.Context, email string, role entities.Role) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	user.Role = role
	s.users[email] = user
	return cloneUser(user), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func cloneUser(user entities.User) entities.User {
	profile := make(map[string]any, len(user.Profile))
	for key, value := range user.Profile {
		profile[key] = value
	}
	user.Profile = profile
	return user
}
