package apiclient

import (
	"context"
	"fmt"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// SubmitReview posts a tourist's review of a guide.
// Any non-2xx status returns a *domain.FetchError.
func (c *Client) SubmitReview(ctx context.Context, touristID, guideID, rating int, comment string) (domain.Review, error) {
	path := fmt.Sprintf("/tourists/%d/reviews/%d", touristID, guideID)
	op := http.MethodPost + " " + path

	status, data, err := c.do(ctx, http.MethodPost, path, reviewBody{Rating: rating, Comment: comment})
	if err != nil {
		return domain.Review{}, fmt.Errorf("apiclient.Client.SubmitReview: %w", err)
	}
	if !isSuccess(status) {
		return domain.Review{}, fmt.Errorf("apiclient.Client.SubmitReview: %w", &domain.FetchError{Op: op, Status: status})
	}

	// The status alone decides success; an unreadable body falls back to the
	// submitted values.
	sent := wireReview{Rating: float64(rating), Comment: comment}
	w := sent
	if err := decode(data, &w); err != nil {
		c.warnBody(ctx, op, err)
		w = sent
	}
	review := w.toDomain()
	if review.TouristID == 0 {
		review.TouristID = touristID
	}
	if review.GuideID == 0 {
		review.GuideID = guideID
	}
	return review, nil
}

// SubmitBooking posts a booking. Only 201 counts as success; every other
// status, 200 included, returns a *domain.FetchError.
func (c *Client) SubmitBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	const path = "/Tourists/addBooking"
	op := http.MethodPost + " " + path

	body := bookingBody{
		TouristID:       b.TouristID,
		GuideID:         b.GuideID,
		RouteID:         b.RouteID,
		TourDate:        openapi_types.Date{Time: b.TourDate},
		BookingStatus:   b.Status,
		SpecialRequests: b.SpecialRequests,
	}

	status, data, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("apiclient.Client.SubmitBooking: %w", err)
	}
	if status != http.StatusCreated {
		return domain.Booking{}, fmt.Errorf("apiclient.Client.SubmitBooking: %w", &domain.FetchError{Op: op, Status: status})
	}

	// 201 means the booking exists upstream; an unreadable body falls back to
	// what was sent.
	var w wireBooking
	if err := decode(data, &w); err != nil {
		c.warnBody(ctx, op, err)
		return mergeBooking(domain.Booking{}, b), nil
	}
	return mergeBooking(w.toDomain(), b), nil
}

// mergeBooking fills fields the backend left out of its response with the
// values that were submitted.
func mergeBooking(got, sent domain.Booking) domain.Booking {
	if got.TouristID == 0 {
		got.TouristID = sent.TouristID
	}
	if got.GuideID == 0 {
		got.GuideID = sent.GuideID
	}
	if got.RouteID == 0 {
		got.RouteID = sent.RouteID
	}
	if got.TourDate.IsZero() {
		got.TourDate = sent.TourDate
	}
	if got.Status == "" {
		got.Status = sent.Status
	}
	if got.SpecialRequests == "" {
		got.SpecialRequests = sent.SpecialRequests
	}
	return got
}
