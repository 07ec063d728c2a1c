// Package domain contains the core data types for the tour guides gateway.
// This package has no dependencies on other internal packages and is imported
// by every other layer (apiclient, service, handler).
package domain

import "strings"

// Guide is a tour guide as known to the remote backend.
// Identity is ID; the gateway never mutates a guide.
type Guide struct {
	ID            int       `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Bio           string    `json:"bio,omitempty"`
	Country       string    `json:"country,omitempty"`
	PhoneNumber   string    `json:"phone_number,omitempty"`
	Languages     Languages `json:"languages"`
	AverageRating float64   `json:"average_rating"` // 0 to 5
	HasCar        bool      `json:"has_car"`
}

// FullName returns "First Last", trimmed when either part is missing.
func (g Guide) FullName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}

// Languages is the list of languages a guide speaks.
// The backend is inconsistent about the representation; by the time a value
// reaches this type it is always a list.
type Languages []string

// String renders the list the way the guide cards show it: "English, Hebrew".
func (l Languages) String() string {
	return strings.Join(l, ", ")
}

// ParseLanguages splits a comma-separated languages string into a list.
// Entries are trimmed and empty entries dropped; the result is never nil.
func ParseLanguages(s string) Languages {
	out := Languages{}
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
