package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
)

// MinPasswordLength is the minimum accepted admin password length.
const MinPasswordLength = 12

// RoleAdmin is the only role the backend issues. Admin endpoints and
// mutating news endpoints require it.
const RoleAdmin = "admin"

// Credentials represents a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// Service validates admin credentials configured through the environment.
type Service struct {
	adminEmail    string
	adminPassword string
}

// NewServiceFromEnv builds a Service from ADMIN_EMAIL and ADMIN_PASSWORD.
// It fails when either variable is missing or the password is too short,
// so a misconfigured deployment is caught at startup.
func NewServiceFromEnv() (*Service, error) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil, errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("ADMIN_PASSWORD must be at least %d characters", MinPasswordLength)
	}
	return &Service{adminEmail: email, adminPassword: password}, nil
}

// ValidateCredentials checks a login attempt against the configured admin
// account using constant-time comparison.
func (s *Service) ValidateCredentials(_ context.Context, creds Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return errors.New("credentials must not be empty")
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(creds.Email), []byte(s.adminEmail)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(s.adminPassword)) == 1
	if !emailMatch || !passMatch {
		return errors.New("invalid credentials")
	}
	return nil
}
