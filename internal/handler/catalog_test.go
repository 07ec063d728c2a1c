package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tourguide-gateway/internal/domain"
	"github.com/pkordes/tourguide-gateway/internal/handler"
	"github.com/pkordes/tourguide-gateway/internal/service"
)

func TestListGuides(t *testing.T) {
	catalog := &mockCatalog{
		listGuides: func(context.Context) ([]domain.Guide, error) {
			return []domain.Guide{{ID: 1, FirstName: "Noa", Languages: domain.Languages{"English"}}}, nil
		},
	}
	f := newFixture(nil, catalog, nil)

	rec := f.do(t, http.MethodGet, "/guides", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Guide
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Noa", got[0].FirstName)
}

func TestSearch(t *testing.T) {
	catalog := &mockCatalog{
		search: func(context.Context) (service.SearchResult, error) {
			return service.SearchResult{
				Guides: []domain.Guide{{ID: 1}},
				Routes: []domain.Route{{ID: 10}, {ID: 20}},
			}, nil
		},
	}
	f := newFixture(nil, catalog, nil)

	rec := f.do(t, http.MethodGet, "/search", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got handler.SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got.Guides, 1)
	assert.Len(t, got.Routes, 2)
}

func TestGetGuideProfile(t *testing.T) {
	catalog := &mockCatalog{
		guideProfile: func(_ context.Context, guideID int) (service.GuideProfile, error) {
			return service.GuideProfile{
				GuideID: guideID,
				Routes:  []domain.Route{{ID: 20, GuideID: guideID}},
				Reviews: []domain.Review{{GuideID: guideID, Rating: 5}},
			}, nil
		},
	}
	f := newFixture(nil, catalog, nil)

	rec := f.do(t, http.MethodGet, "/guides/2", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got handler.GuideProfileResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 2, got.GuideID)
	assert.Len(t, got.Routes, 1)
	assert.Len(t, got.Reviews, 1)
}

func TestGetGuideProfile_BadID(t *testing.T) {
	f := newFixture(nil, &mockCatalog{}, nil)

	rec := f.do(t, http.MethodGet, "/guides/abc", nil, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReview(t *testing.T) {
	var gotTourist, gotGuide, gotRating int
	catalog := &mockCatalog{
		submitReview: func(_ context.Context, touristID, guideID, rating int, comment string) (domain.Review, error) {
			gotTourist, gotGuide, gotRating = touristID, guideID, rating
			return domain.Review{TouristID: touristID, GuideID: guideID, Rating: rating, Comment: comment}, nil
		},
	}
	f := newFixture(nil, catalog, nil)

	rec := f.do(t, http.MethodPost, "/guides/2/reviews", handler.ReviewRequest{Rating: 4, Comment: "great"}, f.tourist())

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 7, gotTourist)
	assert.Equal(t, 2, gotGuide)
	assert.Equal(t, 4, gotRating)
}

func TestCreateReview_GuideForbidden(t *testing.T) {
	f := newFixture(nil, &mockCatalog{}, nil)

	rec := f.do(t, http.MethodPost, "/guides/2/reviews", handler.ReviewRequest{Rating: 4}, f.guide())

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden", decodeError(t, rec).Code)
}

func TestCreateReview_NoSession(t *testing.T) {
	f := newFixture(nil, &mockCatalog{}, nil)

	rec := f.do(t, http.MethodPost, "/guides/2/reviews", handler.ReviewRequest{Rating: 4}, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
