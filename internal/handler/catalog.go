package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// SearchResponse is the body of GET /search.
type SearchResponse struct {
	Guides []domain.Guide `json:"guides"`
	Routes []domain.Route `json:"routes"`
}

// GuideProfileResponse is the body of GET /guides/{id}.
type GuideProfileResponse struct {
	GuideID int             `json:"guide_id"`
	Routes  []domain.Route  `json:"routes"`
	Reviews []domain.Review `json:"reviews"`
}

// ReviewRequest is the body of POST /guides/{id}/reviews.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ListGuides handles GET /guides.
func (s *Server) ListGuides(w http.ResponseWriter, r *http.Request) {
	guides, err := s.catalog.ListGuides(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, guides)
}

// ListRoutes handles GET /routes.
func (s *Server) ListRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := s.catalog.ListRoutes(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, routes)
}

// Search handles GET /search: guides and routes in one round trip.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	res, err := s.catalog.Search(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SearchResponse{Guides: res.Guides, Routes: res.Routes})
}

// GetGuideProfile handles GET /guides/{id}.
func (s *Server) GetGuideProfile(w http.ResponseWriter, r *http.Request) {
	guideID, err := pathID(r)
	if err != nil {
		writeRequestError(w, err)
		return
	}

	p, err := s.catalog.GuideProfile(r.Context(), guideID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, GuideProfileResponse{GuideID: p.GuideID, Routes: p.Routes, Reviews: p.Reviews})
}

// CreateReview handles POST /guides/{id}/reviews. Only tourists may review.
func (s *Server) CreateReview(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if sess.User.Role != domain.RoleTourist {
		writeJSON(w, http.StatusForbidden, errorBody("forbidden", "only tourists can review guides"))
		return
	}

	guideID, err := pathID(r)
	if err != nil {
		writeRequestError(w, err)
		return
	}

	var body ReviewRequest
	if err := decodeJSON(r, &body, false); err != nil {
		writeRequestError(w, err)
		return
	}

	review, err := s.catalog.SubmitReview(r.Context(), sess.User.ID, guideID, body.Rating, body.Comment)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

// pathID parses the {id} path parameter as a positive integer.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

// fromDate converts an optional wire date to *time.Time.
func fromDate(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
