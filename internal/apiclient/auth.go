package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// collection returns the backend collection name for a role.
func collection(role domain.Role) (string, error) {
	switch role {
	case domain.RoleGuide:
		return "/GuidesRW", nil
	case domain.RoleTourist:
		return "/Tourists", nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
}

// Login authenticates a guide or tourist.
//   - 200 returns the user record.
//   - 404 returns domain.ErrInvalidCredentials.
//   - Any other status, or a transport failure, returns domain.ErrNetwork.
func (c *Client) Login(ctx context.Context, role domain.Role, email, password string) (domain.User, error) {
	base, err := collection(role)
	if err != nil {
		return domain.User{}, fmt.Errorf("apiclient.Client.Login: %w", err)
	}
	path := base + "/login"
	op := http.MethodPost + " " + path

	status, data, err := c.do(ctx, http.MethodPost, path, loginBody{Email: email, Pass: password})
	if err != nil {
		return domain.User{}, fmt.Errorf("apiclient.Client.Login: %w", err)
	}

	switch status {
	case http.StatusOK:
	case http.StatusNotFound:
		return domain.User{}, fmt.Errorf("apiclient.Client.Login: %w", domain.ErrInvalidCredentials)
	default:
		return domain.User{}, fmt.Errorf("apiclient.Client.Login: %w", unexpected(op, status))
	}

	var w wireUser
	if err := decode(data, &w); err != nil {
		return domain.User{}, fmt.Errorf("apiclient.Client.Login: decode response: %w", err)
	}
	user := w.toUser(role)
	if user.Email == "" {
		user.Email = email
	}
	return user, nil
}

// RegisterGuide creates a guide account.
// 200/201 return the created guide; 400 returns domain.ErrValidation.
func (c *Client) RegisterGuide(ctx context.Context, reg domain.GuideRegistration) (domain.Guide, error) {
	const path = "/GuidesRW"
	op := http.MethodPost + " " + path

	body := guideRegistrationBody{
		FirstName:     reg.FirstName,
		LastName:      reg.LastName,
		Bio:           reg.Bio,
		Country:       reg.Country,
		HasCar:        reg.HasCar,
		AverageRating: reg.AverageRating,
		Password:      reg.Password,
		PhoneNumber:   reg.PhoneNumber,
		Email:         reg.Email,
		DateOfBirth:   toDate(reg.DateOfBirth),
		Languages:     reg.Languages.String(),
	}

	status, data, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return domain.Guide{}, fmt.Errorf("apiclient.Client.RegisterGuide: %w", err)
	}

	switch status {
	case http.StatusOK, http.StatusCreated:
	case http.StatusBadRequest:
		return domain.Guide{}, fmt.Errorf("apiclient.Client.RegisterGuide: %w: registration details not correct", domain.ErrValidation)
	default:
		return domain.Guide{}, fmt.Errorf("apiclient.Client.RegisterGuide: %w", unexpected(op, status))
	}

	var w wireGuide
	if err := decode(data, &w); err != nil {
		c.warnBody(ctx, op, err)
		w = wireGuide{}
	}
	created := w.toDomain()
	if created.Email == "" {
		// Empty or partial body: echo what was submitted.
		created = domain.Guide{
			ID:          created.ID,
			Email:       reg.Email,
			FirstName:   reg.FirstName,
			LastName:    reg.LastName,
			Bio:         reg.Bio,
			Country:     reg.Country,
			PhoneNumber: reg.PhoneNumber,
			Languages:   reg.Languages,
			HasCar:      reg.HasCar,
		}
		if reg.AverageRating != nil {
			created.AverageRating = *reg.AverageRating
		}
	}
	return created, nil
}

// RegisterTourist creates a tourist account.
// 200/201 return the created tourist; 400 returns domain.ErrValidation;
// 409 returns domain.ErrConflict.
func (c *Client) RegisterTourist(ctx context.Context, reg domain.TouristRegistration) (domain.Tourist, error) {
	const path = "/Tourists/register"
	op := http.MethodPost + " " + path

	body := touristRegistrationBody{
		FirstName:   reg.FirstName,
		LastName:    reg.LastName,
		Email:       reg.Email,
		Password:    reg.Password,
		PhoneNumber: reg.PhoneNumber,
		Country:     reg.Country,
		DateOfBirth: toDate(reg.DateOfBirth),
	}

	status, data, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return domain.Tourist{}, fmt.Errorf("apiclient.Client.RegisterTourist: %w", err)
	}

	switch status {
	case http.StatusOK, http.StatusCreated:
	case http.StatusBadRequest:
		return domain.Tourist{}, fmt.Errorf("apiclient.Client.RegisterTourist: %w: registration details not correct", domain.ErrValidation)
	case http.StatusConflict:
		return domain.Tourist{}, fmt.Errorf("apiclient.Client.RegisterTourist: %w", domain.ErrConflict)
	default:
		return domain.Tourist{}, fmt.Errorf("apiclient.Client.RegisterTourist: %w", unexpected(op, status))
	}

	var w wireUser
	if err := decode(data, &w); err != nil {
		c.warnBody(ctx, op, err)
		w = wireUser{}
	}
	created := w.toTourist()
	if created.Email == "" {
		created = domain.Tourist{
			ID:          created.ID,
			Email:       reg.Email,
			FirstName:   reg.FirstName,
			LastName:    reg.LastName,
			PhoneNumber: reg.PhoneNumber,
			Country:     reg.Country,
			DateOfBirth: reg.DateOfBirth,
		}
	}
	return created, nil
}
