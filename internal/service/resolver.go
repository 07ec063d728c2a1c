package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// Strategy selects how Resolver fans out the per-guide route fetches.
type Strategy string

const (
	// StrategySequential fetches one guide's routes at a time, in list order.
	StrategySequential Strategy = "sequential"
	// StrategyConcurrent fetches several guides' routes at once but still
	// answers with the first matching guide in list order.
	StrategyConcurrent Strategy = "concurrent"
)

// DefaultConcurrency bounds in-flight route fetches for StrategyConcurrent.
const DefaultConcurrency = 4

// ParseStrategy accepts "sequential" or "concurrent" in any case.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(s))); st {
	case StrategySequential, StrategyConcurrent:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown resolver strategy %q", domain.ErrValidation, s)
	}
}

// ResolverOptions configures a Resolver. The zero value is a sequential
// resolver logging to slog.Default().
type ResolverOptions struct {
	Strategy    Strategy
	Concurrency int
	Logger      *slog.Logger
}

// Resolver finds the guide that owns a route when the route payload does not
// say. It scans every guide's route list; cost is one round trip per guide.
//
// If two guides both list the same route id, the one earlier in the backend's
// guide order wins. That is a data problem upstream and is not corrected here.
type Resolver struct {
	guides      GuideLister
	strategy    Strategy
	concurrency int
	log         *slog.Logger
}

// NewResolver constructs a Resolver backed by guides.
func NewResolver(guides GuideLister, opts ResolverOptions) *Resolver {
	r := &Resolver{
		guides:      guides,
		strategy:    opts.Strategy,
		concurrency: opts.Concurrency,
		log:         opts.Logger,
	}
	if r.strategy == "" {
		r.strategy = StrategySequential
	}
	if r.concurrency <= 0 {
		r.concurrency = DefaultConcurrency
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	return r
}

// Resolve returns the guide owning routeID.
// Returns domain.ErrGuideNotFound when no guide lists the route.
// A failed route fetch for one guide is logged and skipped; only a failure
// to list the guides themselves (or cancellation of ctx) is returned.
func (r *Resolver) Resolve(ctx context.Context, routeID int) (domain.Guide, error) {
	guides, err := r.guides.ListGuides(ctx)
	if err != nil {
		return domain.Guide{}, fmt.Errorf("service.Resolver.Resolve: %w", err)
	}

	var (
		owner domain.Guide
		found bool
	)
	if r.strategy == StrategyConcurrent {
		owner, found, err = r.scanConcurrent(ctx, guides, routeID)
	} else {
		owner, found, err = r.scanSequential(ctx, guides, routeID)
	}
	if err != nil {
		return domain.Guide{}, fmt.Errorf("service.Resolver.Resolve: %w", err)
	}
	if !found {
		return domain.Guide{}, fmt.Errorf("service.Resolver.Resolve: route %d: %w", routeID, domain.ErrGuideNotFound)
	}
	return owner, nil
}

func (r *Resolver) scanSequential(ctx context.Context, guides []domain.Guide, routeID int) (domain.Guide, bool, error) {
	for _, g := range guides {
		if err := ctx.Err(); err != nil {
			return domain.Guide{}, false, err
		}
		owns, err := r.ownsRoute(ctx, g.ID, routeID)
		if err != nil {
			r.skip(ctx, g.ID, err)
			continue
		}
		if owns {
			return g, true, nil
		}
	}
	// A cancellation during the last fetch would otherwise read as "not found".
	if err := ctx.Err(); err != nil {
		return domain.Guide{}, false, err
	}
	return domain.Guide{}, false, nil
}

// scanConcurrent launches up to r.concurrency fetches at a time, then walks
// the results in guide order. It returns as soon as every guide before the
// first match has reported, and cancels whatever is still in flight.
func (r *Resolver) scanConcurrent(ctx context.Context, guides []domain.Guide, routeID int) (domain.Guide, bool, error) {
	type outcome struct {
		owns bool
		err  error
	}
	results := make([]outcome, len(guides))
	done := make([]chan struct{}, len(guides))
	for i := range done {
		done[i] = make(chan struct{})
	}

	scanCtx, cancel := context.WithCancel(ctx)
	var g errgroup.Group
	g.SetLimit(r.concurrency)

	launched := make(chan struct{})
	go func() {
		defer close(launched)
		for i, guide := range guides {
			g.Go(func() error {
				defer close(done[i])
				if err := scanCtx.Err(); err != nil {
					results[i] = outcome{err: err}
					return nil
				}
				owns, err := r.ownsRoute(scanCtx, guide.ID, routeID)
				results[i] = outcome{owns: owns, err: err}
				return nil
			})
		}
	}()
	defer func() {
		cancel()
		<-launched
		_ = g.Wait()
	}()

	for i, guide := range guides {
		select {
		case <-done[i]:
		case <-ctx.Done():
			return domain.Guide{}, false, ctx.Err()
		}
		res := results[i]
		if res.err != nil {
			if err := ctx.Err(); err != nil {
				return domain.Guide{}, false, err
			}
			r.skip(ctx, guide.ID, res.err)
			continue
		}
		if res.owns {
			return guide, true, nil
		}
	}
	return domain.Guide{}, false, nil
}

func (r *Resolver) ownsRoute(ctx context.Context, guideID, routeID int) (bool, error) {
	routes, err := r.guides.ListRoutesForGuide(ctx, guideID)
	if err != nil {
		return false, err
	}
	for _, rt := range routes {
		if rt.ID == routeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *Resolver) skip(ctx context.Context, guideID int, err error) {
	r.log.WarnContext(ctx, "skipping guide: route fetch failed",
		"guide_id", guideID,
		"error", err,
	)
}
