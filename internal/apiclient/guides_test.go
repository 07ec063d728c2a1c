package apiclient_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tourguide-gateway/internal/domain"
	"github.com/pkordes/tourguide-gateway/testutil"
)

func TestClient_ListGuides_Normalizes(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Respond(http.MethodGet, "/GuidesRW", http.StatusOK, []map[string]any{
		{"id": 1, "firstName": "Noa", "languages": "English,  Hebrew,", "averageRating": 4.5},
		{"guideId": 2, "FirstName": "Avi", "languages": []string{"French"}, "averageRating": 9},
		{"id": 3, "languages": nil},
	})

	guides, err := newClient(t, b).ListGuides(context.Background())

	require.NoError(t, err)
	require.Len(t, guides, 3)
	assert.Equal(t, domain.Languages{"English", "Hebrew"}, guides[0].Languages)
	assert.InDelta(t, 4.5, guides[0].AverageRating, 1e-9)
	assert.Equal(t, 2, guides[1].ID)
	assert.Equal(t, "Avi", guides[1].FirstName)
	assert.Equal(t, domain.Languages{"French"}, guides[1].Languages)
	assert.InDelta(t, 5.0, guides[1].AverageRating, 1e-9)
	assert.NotNil(t, guides[2].Languages)
	assert.Empty(t, guides[2].Languages)
}

func TestClient_ListGuides_EmptyBodyIsEmptyList(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Respond(http.MethodGet, "/GuidesRW", http.StatusOK, nil)

	guides, err := newClient(t, b).ListGuides(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, guides)
	assert.Empty(t, guides)
}

func TestClient_ListGuides_ErrorStatus(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Respond(http.MethodGet, "/GuidesRW", http.StatusServiceUnavailable, nil)

	_, err := newClient(t, b).ListGuides(context.Background())

	var fe *domain.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusServiceUnavailable, fe.Status)
	assert.Equal(t, "GET /GuidesRW", fe.Op)
}

func TestClient_ListRoutesForGuide_StampsOwner(t *testing.T) {
	b := testutil.NewBackend(t)
	b.SeedGuides(testutil.GuideFixture{ID: 2, Routes: []int{20, 21}})

	routes, err := newClient(t, b).ListRoutesForGuide(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, routes, 2)
	for _, r := range routes {
		assert.Equal(t, 2, r.GuideID)
	}
	assert.Equal(t, 20, routes[0].ID)
	assert.Equal(t, "Route 20", routes[0].Description)
}

func TestClient_ListAllRoutes_TextFields(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Respond(http.MethodGet, "/GuidesRW/routes", http.StatusOK, []map[string]any{
		{"routeId": 10, "difficultyLevel": 3, "routeType": "hiking", "duration": 2.5, "startPoint": "Jaffa"},
	})

	routes, err := newClient(t, b).ListAllRoutes(context.Background())

	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "3", routes[0].DifficultyLevel)
	assert.Equal(t, "hiking", routes[0].RouteType)
	assert.InDelta(t, 2.5, routes[0].DurationHours, 1e-9)
	assert.False(t, routes[0].HasOwner())
}

func TestClient_ListReviewsForGuide(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Respond(http.MethodGet, "/GuidesRW/2/reviews", http.StatusOK, []map[string]any{
		{"reviewId": 5, "touristId": 7, "rating": 4.6, "comment": "great"},
	})

	reviews, err := newClient(t, b).ListReviewsForGuide(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, domain.Review{ID: 5, TouristID: 7, GuideID: 2, Rating: 5, Comment: "great"}, reviews[0])
}
