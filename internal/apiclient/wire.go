package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// The wire* types mirror what the backend actually sends. encoding/json
// matches keys case-insensitively, which absorbs the firstName/FirstName
// drift; the remaining inconsistencies (alternative id keys, languages as a
// string or a list, numbers where text is expected) are handled here so they
// never reach the domain types.

type wireGuide struct {
	ID            int           `json:"id"`
	GuideID       int           `json:"guideId"`
	Email         string        `json:"email"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	Bio           string        `json:"bio"`
	Country       string        `json:"country"`
	PhoneNumber   string        `json:"phoneNumber"`
	Languages     wireLanguages `json:"languages"`
	AverageRating float64       `json:"averageRating"`
	HasCar        bool          `json:"hasCar"`
}

func (w wireGuide) toDomain() domain.Guide {
	return domain.Guide{
		ID:            firstNonZero(w.GuideID, w.ID),
		Email:         w.Email,
		FirstName:     w.FirstName,
		LastName:      w.LastName,
		Bio:           w.Bio,
		Country:       w.Country,
		PhoneNumber:   w.PhoneNumber,
		Languages:     domain.Languages(w.Languages),
		AverageRating: clamp(w.AverageRating, domain.MinRating, domain.MaxRating),
		HasCar:        w.HasCar,
	}
}

type wireRoute struct {
	ID              int      `json:"id"`
	RouteID         int      `json:"routeId"`
	GuideID         int      `json:"guideId"`
	Description     string   `json:"description"`
	Duration        float64  `json:"duration"`
	DifficultyLevel wireText `json:"difficultyLevel"`
	StartPoint      string   `json:"startPoint"`
	EndPoint        string   `json:"endPoint"`
	RouteType       wireText `json:"routeType"`
}

func (w wireRoute) toDomain() domain.Route {
	return domain.Route{
		ID:              firstNonZero(w.RouteID, w.ID),
		GuideID:         w.GuideID,
		Description:     w.Description,
		DurationHours:   w.Duration,
		DifficultyLevel: string(w.DifficultyLevel),
		StartPoint:      w.StartPoint,
		EndPoint:        w.EndPoint,
		RouteType:       string(w.RouteType),
	}
}

type wireReview struct {
	ID        int     `json:"id"`
	ReviewID  int     `json:"reviewId"`
	TouristID int     `json:"touristId"`
	GuideID   int     `json:"guideId"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
}

func (w wireReview) toDomain() domain.Review {
	return domain.Review{
		ID:        firstNonZero(w.ReviewID, w.ID),
		TouristID: w.TouristID,
		GuideID:   w.GuideID,
		Rating:    int(math.Round(clamp(w.Rating, domain.MinRating, domain.MaxRating))),
		Comment:   w.Comment,
	}
}

type wireBooking struct {
	ID              int      `json:"id"`
	BookingID       int      `json:"bookingId"`
	TouristID       int      `json:"touristId"`
	GuideID         int      `json:"guideId"`
	RouteID         int      `json:"routeId"`
	TourDate        wireTime `json:"tourDate"`
	BookingStatus   string   `json:"bookingStatus"`
	SpecialRequests string   `json:"specialRequests"`
}

func (w wireBooking) toDomain() domain.Booking {
	return domain.Booking{
		ID:              firstNonZero(w.BookingID, w.ID),
		TouristID:       w.TouristID,
		GuideID:         w.GuideID,
		RouteID:         w.RouteID,
		TourDate:        time.Time(w.TourDate),
		Status:          w.BookingStatus,
		SpecialRequests: w.SpecialRequests,
	}
}

// wireUser is a login response. Guides come back keyed by id or guideId,
// tourists by touristId (the id the booking payload needs) or id.
type wireUser struct {
	ID          int       `json:"id"`
	GuideID     int       `json:"guideId"`
	TouristID   int       `json:"touristId"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	Country     string    `json:"country"`
	DateOfBirth *wireTime `json:"dateOfBirth"`
}

func (w wireUser) toUser(role domain.Role) domain.User {
	id := firstNonZero(w.GuideID, w.ID)
	if role == domain.RoleTourist {
		id = firstNonZero(w.TouristID, w.ID)
	}
	return domain.User{
		Role:      role,
		ID:        id,
		Email:     w.Email,
		FirstName: w.FirstName,
		LastName:  w.LastName,
	}
}

func (w wireUser) toTourist() domain.Tourist {
	t := domain.Tourist{
		ID:          firstNonZero(w.TouristID, w.ID),
		Email:       w.Email,
		FirstName:   w.FirstName,
		LastName:    w.LastName,
		PhoneNumber: w.PhoneNumber,
		Country:     w.Country,
	}
	if w.DateOfBirth != nil && !time.Time(*w.DateOfBirth).IsZero() {
		dob := time.Time(*w.DateOfBirth)
		t.DateOfBirth = &dob
	}
	return t
}

// wireLanguages decodes either "English, Hebrew" or ["English","Hebrew"].
type wireLanguages []string

func (l *wireLanguages) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*l = wireLanguages{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = wireLanguages(domain.ParseLanguages(s))
		return nil
	default:
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("languages: %w", err)
		}
		out := wireLanguages{}
		for _, s := range list {
			if t := strings.TrimSpace(s); t != "" {
				out = append(out, t)
			}
		}
		*l = out
		return nil
	}
}

// wireText accepts a JSON string or a bare number and keeps its text.
type wireText string

func (t *wireText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = wireText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*t = wireText(n.String())
	return nil
}

// wireTime accepts the date and datetime layouts the backend has been seen to
// emit for TourDate and DateOfBirth. Anything else (null, numbers, empty or
// unknown strings) decodes to the zero time, so one odd date never discards
// the rest of a record.
type wireTime time.Time

var wireTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	openapi_types.DateFormat,
}

func (t *wireTime) UnmarshalJSON(data []byte) error {
	*t = wireTime{}
	var s string
	if err := json.Unmarshal(data, &s); err != nil || s == "" {
		return nil
	}
	for _, layout := range wireTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = wireTime(parsed)
			return nil
		}
	}
	return nil
}

// ---- request bodies --------------------------------------------------------

type loginBody struct {
	Email string `json:"Email"`
	Pass  string `json:"pass"`
}

type guideRegistrationBody struct {
	FirstName     string              `json:"FirstName"`
	LastName      string              `json:"LastName"`
	Bio           string              `json:"Bio"`
	Country       string              `json:"Country"`
	HasCar        bool                `json:"HasCar"`
	AverageRating *float64            `json:"AverageRating"`
	Password      string              `json:"Password"`
	PhoneNumber   string              `json:"PhoneNumber"`
	Email         string              `json:"Email"`
	DateOfBirth   *openapi_types.Date `json:"DateOfBirth"`
	Languages     string              `json:"Languages"`
}

type touristRegistrationBody struct {
	FirstName   string              `json:"FirstName"`
	LastName    string              `json:"LastName"`
	Email       string              `json:"Email"`
	Password    string              `json:"Password"`
	PhoneNumber string              `json:"PhoneNumber"`
	Country     string              `json:"Country"`
	DateOfBirth *openapi_types.Date `json:"DateOfBirth"`
}

type reviewBody struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type bookingBody struct {
	TouristID       int                `json:"TouristId"`
	GuideID         int                `json:"GuideId"`
	RouteID         int                `json:"RouteId"`
	TourDate        openapi_types.Date `json:"TourDate"`
	BookingStatus   string             `json:"BookingStatus"`
	SpecialRequests string             `json:"SpecialRequests"`
}

// ---- helpers ---------------------------------------------------------------

// toDate converts an optional time to the YYYY-MM-DD wire form; nil stays nil
// so the backend receives null.
func toDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}

func firstNonZero(ids ...int) int {
	for _, id := range ids {
		if id != 0 {
			return id
		}
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
