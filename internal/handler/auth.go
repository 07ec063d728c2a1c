package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// LoginRequest is the body of POST /login/{role}.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the session id to send back in X-Session-ID.
type LoginResponse struct {
	SessionID string      `json:"session_id"`
	User      domain.User `json:"user"`
}

// RegisterRequest is the body of POST /register/{role}. Guide-only fields
// are ignored for tourists.
type RegisterRequest struct {
	FirstName       string              `json:"first_name"`
	LastName        string              `json:"last_name"`
	Email           string              `json:"email"`
	Password        string              `json:"password"`
	ConfirmPassword string              `json:"confirm_password"`
	PhoneNumber     string              `json:"phone_number"`
	Country         string              `json:"country"`
	DateOfBirth     *openapi_types.Date `json:"date_of_birth"`

	Bio           string   `json:"bio"`
	Languages     string   `json:"languages"`
	HasCar        bool     `json:"has_car"`
	AverageRating *float64 `json:"average_rating"`
}

// Login handles POST /login/{role}.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	role, err := domain.ParseRole(chi.URLParam(r, "role"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var body LoginRequest
	if err := decodeJSON(r, &body, false); err != nil {
		writeRequestError(w, err)
		return
	}

	sess, err := s.auth.Login(r.Context(), role, body.Email, body.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{SessionID: sess.ID.String(), User: sess.User})
}

// Logout handles DELETE /session.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.auth.Logout(sess); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Register handles POST /register/{role}.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	role, err := domain.ParseRole(chi.URLParam(r, "role"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var body RegisterRequest
	if err := decodeJSON(r, &body, false); err != nil {
		writeRequestError(w, err)
		return
	}

	switch role {
	case domain.RoleGuide:
		created, err := s.auth.RegisterGuide(r.Context(), requestToGuideRegistration(body))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	case domain.RoleTourist:
		created, err := s.auth.RegisterTourist(r.Context(), requestToTouristRegistration(body))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// --- mapping helpers --------------------------------------------------------

func requestToGuideRegistration(b RegisterRequest) domain.GuideRegistration {
	return domain.GuideRegistration{
		FirstName:       strings.TrimSpace(b.FirstName),
		LastName:        strings.TrimSpace(b.LastName),
		Email:           strings.TrimSpace(b.Email),
		Password:        b.Password,
		ConfirmPassword: b.ConfirmPassword,
		PhoneNumber:     b.PhoneNumber,
		Bio:             b.Bio,
		Country:         b.Country,
		Languages:       domain.ParseLanguages(b.Languages),
		HasCar:          b.HasCar,
		AverageRating:   b.AverageRating,
		DateOfBirth:     fromDate(b.DateOfBirth),
	}
}

func requestToTouristRegistration(b RegisterRequest) domain.TouristRegistration {
	return domain.TouristRegistration{
		FirstName:       strings.TrimSpace(b.FirstName),
		LastName:        strings.TrimSpace(b.LastName),
		Email:           strings.TrimSpace(b.Email),
		Password:        b.Password,
		ConfirmPassword: b.ConfirmPassword,
		PhoneNumber:     b.PhoneNumber,
		Country:         b.Country,
		DateOfBirth:     fromDate(b.DateOfBirth),
	}
}
