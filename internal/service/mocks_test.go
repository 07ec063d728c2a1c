package service_test

import (
	"context"
	"sync/atomic"

	"github.com/pkordes/tourguide-gateway/internal/domain"
	"github.com/pkordes/tourguide-gateway/internal/service"
)

// mockBackend is a hand-written test double for every backend interface the
// services depend on. Each method is a function field; set only the ones
// your test needs. Calls to an unset field panic, which fails the test.
type mockBackend struct {
	listGuides          func(ctx context.Context) ([]domain.Guide, error)
	listRoutesForGuide  func(ctx context.Context, guideID int) ([]domain.Route, error)
	listReviewsForGuide func(ctx context.Context, guideID int) ([]domain.Review, error)
	listAllRoutes       func(ctx context.Context) ([]domain.Route, error)
	submitReview        func(ctx context.Context, touristID, guideID, rating int, comment string) (domain.Review, error)
	submitBooking       func(ctx context.Context, b domain.Booking) (domain.Booking, error)
	login               func(ctx context.Context, role domain.Role, email, password string) (domain.User, error)
	registerGuide       func(ctx context.Context, reg domain.GuideRegistration) (domain.Guide, error)
	registerTourist     func(ctx context.Context, reg domain.TouristRegistration) (domain.Tourist, error)

	calls atomic.Int64
}

func (m *mockBackend) ListGuides(ctx context.Context) ([]domain.Guide, error) {
	m.calls.Add(1)
	return m.listGuides(ctx)
}
func (m *mockBackend) ListRoutesForGuide(ctx context.Context, guideID int) ([]domain.Route, error) {
	m.calls.Add(1)
	return m.listRoutesForGuide(ctx, guideID)
}
func (m *mockBackend) ListReviewsForGuide(ctx context.Context, guideID int) ([]domain.Review, error) {
	m.calls.Add(1)
	return m.listReviewsForGuide(ctx, guideID)
}
func (m *mockBackend) ListAllRoutes(ctx context.Context) ([]domain.Route, error) {
	m.calls.Add(1)
	return m.listAllRoutes(ctx)
}
func (m *mockBackend) SubmitReview(ctx context.Context, touristID, guideID, rating int, comment string) (domain.Review, error) {
	m.calls.Add(1)
	return m.submitReview(ctx, touristID, guideID, rating, comment)
}
func (m *mockBackend) SubmitBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	m.calls.Add(1)
	return m.submitBooking(ctx, b)
}
func (m *mockBackend) Login(ctx context.Context, role domain.Role, email, password string) (domain.User, error) {
	m.calls.Add(1)
	return m.login(ctx, role, email, password)
}
func (m *mockBackend) RegisterGuide(ctx context.Context, reg domain.GuideRegistration) (domain.Guide, error) {
	m.calls.Add(1)
	return m.registerGuide(ctx, reg)
}
func (m *mockBackend) RegisterTourist(ctx context.Context, reg domain.TouristRegistration) (domain.Tourist, error) {
	m.calls.Add(1)
	return m.registerTourist(ctx, reg)
}

// compile-time checks: mockBackend must satisfy every backend interface.
var (
	_ service.GuideLister    = (*mockBackend)(nil)
	_ service.CatalogBackend = (*mockBackend)(nil)
	_ service.BookingBackend = (*mockBackend)(nil)
	_ service.AuthBackend    = (*mockBackend)(nil)
)

// routeTable returns a lister serving guides in order, each owning the
// listed route ids.
func routeTable(owned map[int][]int, order ...int) *mockBackend {
	return &mockBackend{
		listGuides: func(context.Context) ([]domain.Guide, error) {
			guides := make([]domain.Guide, 0, len(order))
			for _, id := range order {
				guides = append(guides, domain.Guide{ID: id})
			}
			return guides, nil
		},
		listRoutesForGuide: func(_ context.Context, guideID int) ([]domain.Route, error) {
			routes := []domain.Route{}
			for _, rid := range owned[guideID] {
				routes = append(routes, domain.Route{ID: rid, GuideID: guideID})
			}
			return routes, nil
		},
	}
}
