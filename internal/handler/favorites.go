package handler

import (
	"net/http"

	"github.com/pkordes/tourguide-gateway/internal/domain"
	"github.com/pkordes/tourguide-gateway/internal/service"
)

// FavoriteRequest optionally carries the full guide card so GET /favorites
// can show it without another backend call.
type FavoriteRequest struct {
	Guide *domain.Guide `json:"guide"`
}

// FavoriteResponse reports the guide's membership after the change.
type FavoriteResponse struct {
	GuideID  int  `json:"guide_id"`
	Favorite bool `json:"favorite"`
}

// ListFavorites handles GET /favorites.
func (s *Server) ListFavorites(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Favorites.List())
}

// AddFavorite handles PUT /favorites/{id}. Repeating it changes nothing.
func (s *Server) AddFavorite(w http.ResponseWriter, r *http.Request) {
	sess, guide, ok := s.favoriteTarget(w, r)
	if !ok {
		return
	}
	sess.Favorites.Add(guide)
	writeJSON(w, http.StatusOK, FavoriteResponse{GuideID: guide.ID, Favorite: true})
}

// RemoveFavorite handles DELETE /favorites/{id}. Removing an absent guide
// is not an error.
func (s *Server) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	sess, guide, ok := s.favoriteTarget(w, r)
	if !ok {
		return
	}
	sess.Favorites.Remove(guide)
	writeJSON(w, http.StatusOK, FavoriteResponse{GuideID: guide.ID, Favorite: false})
}

// ToggleFavorite handles POST /favorites/{id}/toggle, the heart icon.
func (s *Server) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	sess, guide, ok := s.favoriteTarget(w, r)
	if !ok {
		return
	}
	on := sess.Favorites.Toggle(guide)
	writeJSON(w, http.StatusOK, FavoriteResponse{GuideID: guide.ID, Favorite: on})
}

// favoriteTarget resolves the session and the guide named by the path,
// writing the error response itself when either is missing.
func (s *Server) favoriteTarget(w http.ResponseWriter, r *http.Request) (*service.Session, domain.Guide, bool) {
	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, r, err)
		return nil, domain.Guide{}, false
	}

	id, err := pathID(r)
	if err != nil {
		writeRequestError(w, err)
		return nil, domain.Guide{}, false
	}

	var body FavoriteRequest
	if err := decodeJSON(r, &body, true); err != nil {
		writeRequestError(w, err)
		return nil, domain.Guide{}, false
	}

	guide := domain.Guide{ID: id}
	if body.Guide != nil {
		guide = *body.Guide
		guide.ID = id
	}
	return sess, guide, true
}
