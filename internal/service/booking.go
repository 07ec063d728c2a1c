package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// GuideResolver maps a route id to its owning guide. *Resolver implements it.
type GuideResolver interface {
	Resolve(ctx context.Context, routeID int) (domain.Guide, error)
}

// BookingService turns a tourist's booking request into a submitted booking.
type BookingService struct {
	resolver GuideResolver
	backend  BookingBackend
}

// NewBookingService constructs a BookingService.
func NewBookingService(resolver GuideResolver, backend BookingBackend) *BookingService {
	return &BookingService{resolver: resolver, backend: backend}
}

// Create validates req, resolves the route's guide, and submits a pending
// booking. Nothing is sent to the backend unless both earlier steps succeed
// and ctx is still live.
//   - Returns domain.ErrValidation when the date, special requests, tourist,
//     or route is missing.
//   - Returns domain.ErrGuideNotFound when no guide owns the route.
//   - Submission failures propagate (*domain.FetchError, domain.ErrNetwork).
func (s *BookingService) Create(ctx context.Context, req domain.BookingRequest) (domain.Booking, error) {
	if err := validateBookingRequest(req); err != nil {
		return domain.Booking{}, err
	}

	guide, err := s.resolver.Resolve(ctx, req.RouteID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}

	// The caller may have given up while the scan ran.
	if err := ctx.Err(); err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}

	booking := domain.Booking{
		TouristID:       req.TouristID,
		GuideID:         guide.ID,
		RouteID:         req.RouteID,
		TourDate:        req.TourDate,
		Status:          domain.BookingStatusPending,
		SpecialRequests: req.SpecialRequests,
	}

	created, err := s.backend.SubmitBooking(ctx, booking)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}
	return created, nil
}

// validateBookingRequest enforces the booking preconditions.
//   - TourDate must be set.
//   - SpecialRequests must be non-empty (whitespace-only is rejected).
//   - TouristID and RouteID must be set.
func validateBookingRequest(req domain.BookingRequest) error {
	if req.TourDate.IsZero() {
		return fmt.Errorf("%w: tour_date is required", domain.ErrValidation)
	}
	if strings.TrimSpace(req.SpecialRequests) == "" {
		return fmt.Errorf("%w: special_requests is required", domain.ErrValidation)
	}
	if req.TouristID == 0 {
		return fmt.Errorf("%w: tourist is required", domain.ErrValidation)
	}
	if req.RouteID == 0 {
		return fmt.Errorf("%w: route_id is required", domain.ErrValidation)
	}
	return nil
}
