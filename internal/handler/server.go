// Package handler implements the gateway's HTTP endpoints, one per thing the
// mobile screens do: log in, sign up, browse, open a guide profile, review,
// book, and manage favorites.
// All handlers are methods on Server. Methods are split into files by screen
// (auth.go, catalog.go, ...) but share the same struct and dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/tourguide-gateway/internal/domain"
	"github.com/pkordes/tourguide-gateway/internal/service"
	"github.com/pkordes/tourguide-gateway/spec"
)

// AuthServicer defines the login and registration operations the handlers
// depend on. Declaring it here, in the consumer, lets tests inject a mock.
type AuthServicer interface {
	Login(ctx context.Context, role domain.Role, email, password string) (*service.Session, error)
	Logout(sess *service.Session) error
	RegisterGuide(ctx context.Context, reg domain.GuideRegistration) (domain.Guide, error)
	RegisterTourist(ctx context.Context, reg domain.TouristRegistration) (domain.Tourist, error)
}

// CatalogServicer defines the browsing and review operations.
type CatalogServicer interface {
	ListGuides(ctx context.Context) ([]domain.Guide, error)
	ListRoutes(ctx context.Context) ([]domain.Route, error)
	Search(ctx context.Context) (service.SearchResult, error)
	GuideProfile(ctx context.Context, guideID int) (service.GuideProfile, error)
	SubmitReview(ctx context.Context, touristID, guideID, rating int, comment string) (domain.Review, error)
}

// BookingServicer defines the booking operation.
type BookingServicer interface {
	Create(ctx context.Context, req domain.BookingRequest) (domain.Booking, error)
}

// SessionFinder looks up the session named by the X-Session-ID header.
type SessionFinder interface {
	Get(id uuid.UUID) (*service.Session, error)
}

// SessionHeader carries the id returned by a successful login.
const SessionHeader = "X-Session-ID"

// Server holds the dependencies of every handler.
type Server struct {
	auth     AuthServicer
	catalog  CatalogServicer
	bookings BookingServicer
	sessions SessionFinder
	log      *slog.Logger
}

// NewServer constructs the Server. A nil logger falls back to slog.Default().
func NewServer(auth AuthServicer, catalog CatalogServicer, bookings BookingServicer, sessions SessionFinder, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{auth: auth, catalog: catalog, bookings: bookings, sessions: sessions, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil)
}

// Routes registers every endpoint on a new chi router.
// Middleware is applied by the caller (see cmd/api).
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Post("/login/{role}", s.Login)
	r.Delete("/session", s.Logout)
	r.Post("/register/{role}", s.Register)

	r.Get("/guides", s.ListGuides)
	r.Get("/guides/{id}", s.GetGuideProfile)
	r.Post("/guides/{id}/reviews", s.CreateReview)
	r.Get("/routes", s.ListRoutes)
	r.Get("/search", s.Search)

	r.Post("/bookings", s.CreateBooking)

	r.Get("/favorites", s.ListFavorites)
	r.Put("/favorites/{id}", s.AddFavorite)
	r.Delete("/favorites/{id}", s.RemoveFavorite)
	r.Post("/favorites/{id}/toggle", s.ToggleFavorite)

	return r
}

// session resolves the caller's session from the X-Session-ID header.
// A missing, malformed, or unknown id returns domain.ErrSessionNotFound.
func (s *Server) session(r *http.Request) (*service.Session, error) {
	id, err := uuid.Parse(r.Header.Get(SessionHeader))
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}
	return s.sessions.Get(id)
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
