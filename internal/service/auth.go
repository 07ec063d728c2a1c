package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// AuthService implements login and registration for guides and tourists.
type AuthService struct {
	backend  AuthBackend
	sessions *SessionStore
}

// NewAuthService constructs an AuthService. Successful logins open a session
// in sessions.
func NewAuthService(backend AuthBackend, sessions *SessionStore) *AuthService {
	return &AuthService{backend: backend, sessions: sessions}
}

// Login authenticates against the backend and opens a session.
// Returns domain.ErrValidation for a blank email or password without
// contacting the backend, and domain.ErrInvalidCredentials on a rejected login.
func (s *AuthService) Login(ctx context.Context, role domain.Role, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	user, err := s.backend.Login(ctx, role, email, password)
	if err != nil {
		return nil, fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return s.sessions.Open(user), nil
}

// Logout ends a session.
func (s *AuthService) Logout(sess *Session) error {
	if err := s.sessions.End(sess.ID); err != nil {
		return fmt.Errorf("service.AuthService.Logout: %w", err)
	}
	return nil
}

// RegisterGuide validates the form and creates a guide account.
// A password mismatch returns domain.ErrPasswordMismatch before any request.
func (s *AuthService) RegisterGuide(ctx context.Context, reg domain.GuideRegistration) (domain.Guide, error) {
	if err := validateCredentials(reg.Email, reg.Password, reg.ConfirmPassword); err != nil {
		return domain.Guide{}, err
	}
	if reg.AverageRating != nil && (*reg.AverageRating < domain.MinRating || *reg.AverageRating > domain.MaxRating) {
		return domain.Guide{}, fmt.Errorf("%w: average_rating must be between %d and %d", domain.ErrValidation, domain.MinRating, domain.MaxRating)
	}

	created, err := s.backend.RegisterGuide(ctx, reg)
	if err != nil {
		return domain.Guide{}, fmt.Errorf("service.AuthService.RegisterGuide: %w", err)
	}
	return created, nil
}

// RegisterTourist validates the form and creates a tourist account.
// A password mismatch returns domain.ErrPasswordMismatch before any request.
func (s *AuthService) RegisterTourist(ctx context.Context, reg domain.TouristRegistration) (domain.Tourist, error) {
	if err := validateCredentials(reg.Email, reg.Password, reg.ConfirmPassword); err != nil {
		return domain.Tourist{}, err
	}

	created, err := s.backend.RegisterTourist(ctx, reg)
	if err != nil {
		return domain.Tourist{}, fmt.Errorf("service.AuthService.RegisterTourist: %w", err)
	}
	return created, nil
}

// validateCredentials checks the sign-up form fields common to both roles.
// The password comparison comes first: it is the one check the sign-up
// screens have always made.
func validateCredentials(email, password, confirm string) error {
	if password != confirm {
		return domain.ErrPasswordMismatch
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	return nil
}
