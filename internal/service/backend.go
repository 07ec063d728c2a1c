// Package service contains the business logic of the tour guides gateway.
// Services validate input, enforce the client-side rules, and orchestrate
// calls to the remote backend. No HTTP lives here: services depend on the
// small interfaces below, which *apiclient.Client satisfies.
package service

import (
	"context"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// GuideLister is the part of the backend the route resolver needs.
type GuideLister interface {
	ListGuides(ctx context.Context) ([]domain.Guide, error)
	ListRoutesForGuide(ctx context.Context, guideID int) ([]domain.Route, error)
}

// BookingBackend submits bookings.
type BookingBackend interface {
	SubmitBooking(ctx context.Context, b domain.Booking) (domain.Booking, error)
}

// AuthBackend performs login and registration against the backend.
type AuthBackend interface {
	Login(ctx context.Context, role domain.Role, email, password string) (domain.User, error)
	RegisterGuide(ctx context.Context, reg domain.GuideRegistration) (domain.Guide, error)
	RegisterTourist(ctx context.Context, reg domain.TouristRegistration) (domain.Tourist, error)
}

// CatalogBackend reads guides, routes, and reviews and posts reviews.
type CatalogBackend interface {
	GuideLister
	ListReviewsForGuide(ctx context.Context, guideID int) ([]domain.Review, error)
	ListAllRoutes(ctx context.Context) ([]domain.Route, error)
	SubmitReview(ctx context.Context, touristID, guideID, rating int, comment string) (domain.Review, error)
}
