package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tourguide-gateway/internal/domain"
	"github.com/pkordes/tourguide-gateway/internal/service"
)

func loginAs(user domain.User) *mockBackend {
	return &mockBackend{
		login: func(_ context.Context, role domain.Role, email, _ string) (domain.User, error) {
			user.Role = role
			user.Email = email
			return user, nil
		},
	}
}

// ---- Login -----------------------------------------------------------------

func TestAuthService_Login_OpensSession(t *testing.T) {
	sessions := service.NewSessionStore()
	svc := service.NewAuthService(loginAs(domain.User{ID: 7, FirstName: "Dana"}), sessions)

	sess, err := svc.Login(context.Background(), domain.RoleTourist, " dana@example.com ", "secret")

	require.NoError(t, err)
	assert.Equal(t, 7, sess.User.ID)
	assert.Equal(t, "dana@example.com", sess.User.Email)
	assert.Equal(t, domain.RoleTourist, sess.User.Role)
	assert.Zero(t, sess.Favorites.Len())

	got, err := sessions.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestAuthService_Login_BlankFieldsSkipBackend(t *testing.T) {
	backend := loginAs(domain.User{})
	svc := service.NewAuthService(backend, service.NewSessionStore())

	_, err := svc.Login(context.Background(), domain.RoleGuide, "  ", "secret")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Login(context.Background(), domain.RoleGuide, "a@b.c", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Zero(t, backend.calls.Load())
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	backend := &mockBackend{
		login: func(context.Context, domain.Role, string, string) (domain.User, error) {
			return domain.User{}, domain.ErrInvalidCredentials
		},
	}
	svc := service.NewAuthService(backend, service.NewSessionStore())

	sess, err := svc.Login(context.Background(), domain.RoleGuide, "a@b.c", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, sess)
}

func TestAuthService_Logout(t *testing.T) {
	sessions := service.NewSessionStore()
	svc := service.NewAuthService(loginAs(domain.User{ID: 1}), sessions)
	sess, err := svc.Login(context.Background(), domain.RoleGuide, "a@b.c", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(sess))

	_, err = sessions.Get(sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, svc.Logout(sess), domain.ErrSessionNotFound)
}

// ---- Registration ----------------------------------------------------------

func validGuideRegistration() domain.GuideRegistration {
	return domain.GuideRegistration{
		FirstName:       "Noa",
		LastName:        "Levi",
		Email:           "noa@example.com",
		Password:        "pw",
		ConfirmPassword: "pw",
		Languages:       domain.Languages{"English", "Hebrew"},
	}
}

func TestAuthService_RegisterGuide_Valid(t *testing.T) {
	backend := &mockBackend{
		registerGuide: func(_ context.Context, reg domain.GuideRegistration) (domain.Guide, error) {
			return domain.Guide{ID: 12, Email: reg.Email, Languages: reg.Languages}, nil
		},
	}
	svc := service.NewAuthService(backend, service.NewSessionStore())

	got, err := svc.RegisterGuide(context.Background(), validGuideRegistration())

	require.NoError(t, err)
	assert.Equal(t, 12, got.ID)
	assert.Equal(t, "English, Hebrew", got.Languages.String())
}

func TestAuthService_RegisterGuide_PasswordMismatchSkipsBackend(t *testing.T) {
	backend := &mockBackend{}
	svc := service.NewAuthService(backend, service.NewSessionStore())

	reg := validGuideRegistration()
	reg.ConfirmPassword = "other"
	_, err := svc.RegisterGuide(context.Background(), reg)

	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, backend.calls.Load())
}

func TestAuthService_RegisterGuide_RatingOutOfRange(t *testing.T) {
	backend := &mockBackend{}
	svc := service.NewAuthService(backend, service.NewSessionStore())

	rating := 5.5
	reg := validGuideRegistration()
	reg.AverageRating = &rating
	_, err := svc.RegisterGuide(context.Background(), reg)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, backend.calls.Load())
}

func TestAuthService_RegisterTourist_PasswordMismatchSkipsBackend(t *testing.T) {
	backend := &mockBackend{}
	svc := service.NewAuthService(backend, service.NewSessionStore())

	_, err := svc.RegisterTourist(context.Background(), domain.TouristRegistration{
		Email:           "t@example.com",
		Password:        "a",
		ConfirmPassword: "b",
	})

	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
	assert.Zero(t, backend.calls.Load())
}

func TestAuthService_RegisterTourist_Conflict(t *testing.T) {
	backend := &mockBackend{
		registerTourist: func(context.Context, domain.TouristRegistration) (domain.Tourist, error) {
			return domain.Tourist{}, domain.ErrConflict
		},
	}
	svc := service.NewAuthService(backend, service.NewSessionStore())

	_, err := svc.RegisterTourist(context.Background(), domain.TouristRegistration{
		Email:           "t@example.com",
		Password:        "a",
		ConfirmPassword: "a",
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
}
