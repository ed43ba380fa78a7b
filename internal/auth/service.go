package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Service checks the single admin credential configured via environment.
// The catalog has no user accounts of its own; auth exists only to guard
// mutating endpoints like catalog reload.
type Service struct {
	adminEmail string
	// bcrypt hash of the admin password
	adminPasswordHash string
}

func NewService(adminEmail, adminPasswordHash string) *Service {
	return &Service{adminEmail: adminEmail, adminPasswordHash: adminPasswordHash}
}

func (s *Service) Authenticate(email, password string) error {
	if s.adminEmail == "" || s.adminPasswordHash == "" {
		return ErrInvalidCredentials
	}
	if email != s.adminEmail {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
