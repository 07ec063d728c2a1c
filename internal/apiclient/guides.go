package apiclient

import (
	"context"
	"fmt"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// ListGuides returns every guide in backend order.
func (c *Client) ListGuides(ctx context.Context) ([]domain.Guide, error) {
	raw, err := getList[wireGuide](ctx, c, "/GuidesRW")
	if err != nil {
		return nil, fmt.Errorf("apiclient.Client.ListGuides: %w", err)
	}
	guides := make([]domain.Guide, len(raw))
	for i, w := range raw {
		guides[i] = w.toDomain()
	}
	return guides, nil
}

// ListRoutesForGuide returns the routes of one guide in backend order.
// Routes whose payload omits the owner are stamped with guideID.
func (c *Client) ListRoutesForGuide(ctx context.Context, guideID int) ([]domain.Route, error) {
	raw, err := getList[wireRoute](ctx, c, fmt.Sprintf("/GuidesRW/%d/routes", guideID))
	if err != nil {
		return nil, fmt.Errorf("apiclient.Client.ListRoutesForGuide: %w", err)
	}
	routes := make([]domain.Route, len(raw))
	for i, w := range raw {
		routes[i] = w.toDomain()
		if !routes[i].HasOwner() {
			routes[i].GuideID = guideID
		}
	}
	return routes, nil
}

// ListReviewsForGuide returns the reviews left for one guide.
func (c *Client) ListReviewsForGuide(ctx context.Context, guideID int) ([]domain.Review, error) {
	raw, err := getList[wireReview](ctx, c, fmt.Sprintf("/GuidesRW/%d/reviews", guideID))
	if err != nil {
		return nil, fmt.Errorf("apiclient.Client.ListReviewsForGuide: %w", err)
	}
	reviews := make([]domain.Review, len(raw))
	for i, w := range raw {
		reviews[i] = w.toDomain()
		if reviews[i].GuideID == 0 {
			reviews[i].GuideID = guideID
		}
	}
	return reviews, nil
}

// ListAllRoutes returns every route across guides. The backend does not
// reliably include the owning guide here.
func (c *Client) ListAllRoutes(ctx context.Context) ([]domain.Route, error) {
	raw, err := getList[wireRoute](ctx, c, "/GuidesRW/routes")
	if err != nil {
		return nil, fmt.Errorf("apiclient.Client.ListAllRoutes: %w", err)
	}
	routes := make([]domain.Route, len(raw))
	for i, w := range raw {
		routes[i] = w.toDomain()
	}
	return routes, nil
}
