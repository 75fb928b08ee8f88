package store

import (
	"fmt"

	"sanctuary-api/internal/apierr"
	"sanctuary-api/internal/models"
)

// Users returns clones of every user.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.data.users))
	for i, user := range s.data.users {
		out[i] = user.Clone()
	}
	return out
}

// UserByID retrieves a user by ID.
func (s *Store) UserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.data.users {
		if user.ID == id {
			return user.Clone(), nil
		}
	}
	return models.User{}, apierr.NotFound(apierr.KindUserNotFound, fmt.Sprintf("User %s not found", id))
}

// CredentialByEmail looks up the seed credential for a login email.
func (s *Store) CredentialByEmail(email string) (models.Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, credential := range s.data.credentials {
		if credential.Email == email {
			return credential, true
		}
	}
	return models.Credential{}, false
}

// TouchLogin stamps a user's last login and update times.
func (s *Store) TouchLogin(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.users {
		if s.data.users[i].ID == id {
			now := s.now()
			s.data.users[i].LastLoginAt = &now
			s.data.users[i].UpdatedAt = now
			return nil
		}
	}
	return apierr.NotFound(apierr.KindUserNotFound, fmt.Sprintf("User %s not found", id))
}
