package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// SearchResult is what the search screen shows on open.
type SearchResult struct {
	Guides []domain.Guide
	Routes []domain.Route
}

// GuideProfile is what the guide profile screen shows.
type GuideProfile struct {
	GuideID int
	Routes  []domain.Route
	Reviews []domain.Review
}

// CatalogService reads guides, routes, and reviews, and records reviews.
type CatalogService struct {
	backend CatalogBackend
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(backend CatalogBackend) *CatalogService {
	return &CatalogService{backend: backend}
}

// ListGuides returns every guide.
func (s *CatalogService) ListGuides(ctx context.Context) ([]domain.Guide, error) {
	guides, err := s.backend.ListGuides(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.ListGuides: %w", err)
	}
	return guides, nil
}

// ListRoutes returns every route.
func (s *CatalogService) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	routes, err := s.backend.ListAllRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.ListRoutes: %w", err)
	}
	return routes, nil
}

// Search fetches guides and routes concurrently. Either may finish first;
// if either fails the whole call fails.
func (s *CatalogService) Search(ctx context.Context) (SearchResult, error) {
	var res SearchResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		guides, err := s.backend.ListGuides(gctx)
		res.Guides = guides
		return err
	})
	g.Go(func() error {
		routes, err := s.backend.ListAllRoutes(gctx)
		res.Routes = routes
		return err
	})
	if err := g.Wait(); err != nil {
		return SearchResult{}, fmt.Errorf("service.CatalogService.Search: %w", err)
	}
	return res, nil
}

// GuideProfile fetches a guide's routes and reviews concurrently.
func (s *CatalogService) GuideProfile(ctx context.Context, guideID int) (GuideProfile, error) {
	if guideID <= 0 {
		return GuideProfile{}, fmt.Errorf("%w: guide id must be positive", domain.ErrValidation)
	}

	p := GuideProfile{GuideID: guideID}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		routes, err := s.backend.ListRoutesForGuide(gctx, guideID)
		p.Routes = routes
		return err
	})
	g.Go(func() error {
		reviews, err := s.backend.ListReviewsForGuide(gctx, guideID)
		p.Reviews = reviews
		return err
	})
	if err := g.Wait(); err != nil {
		return GuideProfile{}, fmt.Errorf("service.CatalogService.GuideProfile: %w", err)
	}
	return p, nil
}

// SubmitReview records a tourist's review of a guide.
// Returns domain.ErrValidation for a rating outside 0..5 or a missing
// tourist or guide.
func (s *CatalogService) SubmitReview(ctx context.Context, touristID, guideID, rating int, comment string) (domain.Review, error) {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return domain.Review{}, fmt.Errorf("%w: rating must be between %d and %d", domain.ErrValidation, domain.MinRating, domain.MaxRating)
	}
	if touristID <= 0 || guideID <= 0 {
		return domain.Review{}, fmt.Errorf("%w: tourist and guide are required", domain.ErrValidation)
	}

	review, err := s.backend.SubmitReview(ctx, touristID, guideID, rating, comment)
	if err != nil {
		return domain.Review{}, fmt.Errorf("service.CatalogService.SubmitReview: %w", err)
	}
	return review, nil
}
