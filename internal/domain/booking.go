package domain

import "time"

// BookingStatusPending is the status every booking is created with.
// The gateway has no update or cancel flow, so it never sets another value.
const BookingStatusPending = "pending"

// Booking is a tourist's reservation of a guide's route on a given day.
// GuideID must be the owner of RouteID.
type Booking struct {
	ID              int       `json:"id,omitempty"`
	TouristID       int       `json:"tourist_id"`
	GuideID         int       `json:"guide_id"`
	RouteID         int       `json:"route_id"`
	TourDate        time.Time `json:"tour_date"`
	Status          string    `json:"status"`
	SpecialRequests string    `json:"special_requests"`
}

// BookingRequest is what a tourist supplies when booking a route.
// The owning guide is not part of it; it is resolved from RouteID.
type BookingRequest struct {
	RouteID         int
	TouristID       int
	TourDate        time.Time
	SpecialRequests string
}
