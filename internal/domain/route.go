package domain

// Route is a tour offered by a guide.
// GuideID is zero when the backend payload did not say who owns the route;
// service.Resolver exists to recover it in that case.
type Route struct {
	ID              int     `json:"route_id"`
	GuideID         int     `json:"guide_id,omitempty"`
	Description     string  `json:"description"`
	DurationHours   float64 `json:"duration_hours"`
	DifficultyLevel string  `json:"difficulty_level,omitempty"`
	StartPoint      string  `json:"start_point,omitempty"`
	EndPoint        string  `json:"end_point,omitempty"`
	RouteType       string  `json:"route_type,omitempty"`
}

// HasOwner reports whether the payload carried the owning guide's id.
func (r Route) HasOwner() bool {
	return r.GuideID != 0
}
