package domain

// MinRating and MaxRating bound Review.Rating.
const (
	MinRating = 0
	MaxRating = 5
)

// Review is a tourist's rating of a guide. Reviews are append-only from the
// gateway's point of view.
type Review struct {
	ID        int    `json:"id,omitempty"`
	TouristID int    `json:"tourist_id"`
	GuideID   int    `json:"guide_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}
