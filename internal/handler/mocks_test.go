package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/tourguide-gateway/internal/domain"
	"github.com/pkordes/tourguide-gateway/internal/handler"
	"github.com/pkordes/tourguide-gateway/internal/service"
)

// mockAuth is a test double for handler.AuthServicer.
// Set only the method fields your test needs.
type mockAuth struct {
	login           func(ctx context.Context, role domain.Role, email, password string) (*service.Session, error)
	logout          func(sess *service.Session) error
	registerGuide   func(ctx context.Context, reg domain.GuideRegistration) (domain.Guide, error)
	registerTourist func(ctx context.Context, reg domain.TouristRegistration) (domain.Tourist, error)
}

func (m *mockAuth) Login(ctx context.Context, role domain.Role, email, password string) (*service.Session, error) {
	return m.login(ctx, role, email, password)
}
func (m *mockAuth) Logout(sess *service.Session) error {
	return m.logout(sess)
}
func (m *mockAuth) RegisterGuide(ctx context.Context, reg domain.GuideRegistration) (domain.Guide, error) {
	return m.registerGuide(ctx, reg)
}
func (m *mockAuth) RegisterTourist(ctx context.Context, reg domain.TouristRegistration) (domain.Tourist, error) {
	return m.registerTourist(ctx, reg)
}

// mockCatalog is a test double for handler.CatalogServicer.
type mockCatalog struct {
	listGuides   func(ctx context.Context) ([]domain.Guide, error)
	listRoutes   func(ctx context.Context) ([]domain.Route, error)
	search       func(ctx context.Context) (service.SearchResult, error)
	guideProfile func(ctx context.Context, guideID int) (service.GuideProfile, error)
	submitReview func(ctx context.Context, touristID, guideID, rating int, comment string) (domain.Review, error)
}

func (m *mockCatalog) ListGuides(ctx context.Context) ([]domain.Guide, error) {
	return m.listGuides(ctx)
}
func (m *mockCatalog) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	return m.listRoutes(ctx)
}
func (m *mockCatalog) Search(ctx context.Context) (service.SearchResult, error) {
	return m.search(ctx)
}
func (m *mockCatalog) GuideProfile(ctx context.Context, guideID int) (service.GuideProfile, error) {
	return m.guideProfile(ctx, guideID)
}
func (m *mockCatalog) SubmitReview(ctx context.Context, touristID, guideID, rating int, comment string) (domain.Review, error) {
	return m.submitReview(ctx, touristID, guideID, rating, comment)
}

// mockBookings is a test double for handler.BookingServicer.
type mockBookings struct {
	create func(ctx context.Context, req domain.BookingRequest) (domain.Booking, error)
}

func (m *mockBookings) Create(ctx context.Context, req domain.BookingRequest) (domain.Booking, error) {
	return m.create(ctx, req)
}

// compile-time checks: the mocks and the real store satisfy the handler interfaces.
var (
	_ handler.AuthServicer    = (*mockAuth)(nil)
	_ handler.CatalogServicer = (*mockCatalog)(nil)
	_ handler.BookingServicer = (*mockBookings)(nil)
	_ handler.SessionFinder   = (*service.SessionStore)(nil)
)

// ---- helpers ---------------------------------------------------------------

// fixture bundles a router with the session store behind it so tests can
// open sessions directly.
type fixture struct {
	h        http.Handler
	sessions *service.SessionStore
}

func newFixture(auth handler.AuthServicer, catalog handler.CatalogServicer, bookings handler.BookingServicer) fixture {
	sessions := service.NewSessionStore()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := handler.NewServer(auth, catalog, bookings, sessions, log)
	return fixture{h: srv.Routes(), sessions: sessions}
}

// do sends a request with an optional JSON body and session.
func (f fixture) do(t *testing.T, method, path string, body any, sess *service.Session) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil {
		req.Header.Set(handler.SessionHeader, sess.ID.String())
	}
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	return rec
}

func (f fixture) tourist() *service.Session {
	return f.sessions.Open(domain.User{Role: domain.RoleTourist, ID: 7, Email: "dana@example.com"})
}

func (f fixture) guide() *service.Session {
	return f.sessions.Open(domain.User{Role: domain.RoleGuide, ID: 2, Email: "noa@example.com"})
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}
