package handler

import (
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// BookingRequest is the body of POST /bookings.
// The guide is not part of the request; the gateway works it out from the route.
type BookingRequest struct {
	RouteID         int                 `json:"route_id"`
	TourDate        *openapi_types.Date `json:"tour_date"`
	SpecialRequests string              `json:"special_requests"`
}

// CreateBooking handles POST /bookings for the logged-in tourist.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if sess.User.Role != domain.RoleTourist {
		writeJSON(w, http.StatusForbidden, errorBody("forbidden", "only tourists can book routes"))
		return
	}

	var body BookingRequest
	if err := decodeJSON(r, &body, false); err != nil {
		writeRequestError(w, err)
		return
	}

	var tourDate time.Time
	if body.TourDate != nil {
		tourDate = body.TourDate.Time
	}

	created, err := s.bookings.Create(r.Context(), domain.BookingRequest{
		RouteID:         body.RouteID,
		TouristID:       sess.User.ID,
		TourDate:        tourDate,
		SpecialRequests: body.SpecialRequests,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
