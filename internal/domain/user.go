package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role distinguishes the two kinds of account the backend knows about.
type Role string

const (
	RoleGuide   Role = "guide"
	RoleTourist Role = "tourist"
)

// ParseRole accepts "guide" or "tourist" in any case.
// Returns ErrValidation for anything else.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleGuide, RoleTourist:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
}

// User is the identity returned by a successful login.
// It is the only session state besides the favorites set.
type User struct {
	Role      Role   `json:"role"`
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Tourist is a registered tourist account.
type Tourist struct {
	ID          int        `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	Country     string     `json:"country,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

// GuideRegistration is the guide sign-up form.
// ConfirmPassword never leaves the gateway.
type GuideRegistration struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	PhoneNumber     string
	Bio             string
	Country         string
	Languages       Languages
	HasCar          bool
	AverageRating   *float64 // nil is sent as null
	DateOfBirth     *time.Time
}

// TouristRegistration is the tourist sign-up form.
type TouristRegistration struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	PhoneNumber     string
	Country         string
	DateOfBirth     *time.Time
}
