package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelabs/drivescore/internal/pkg/models"
)

func testClient(baseURL string) *RoadsClient {
	cfg := models.RoadsConfig{
		BaseURL:          baseURL,
		APIKey:           "test-key",
		RequestTimeoutMs: 5000,
	}
	return NewRoadsClient(cfg).(*RoadsClient)
}

func TestSnapToRoads_Success(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/v1/nearestRoads", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"snappedPoints": [
				{
					"location": {"latitude": -6.175401, "longitude": 106.827160},
					"originalIndex": 0,
					"placeId": "abc123"
				}
			]
		}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	coords := []models.Coordinate{{Latitude: -6.175392, Longitude: 106.827153}}

	snapped, err := client.SnapToRoads(context.Background(), coords)
	require.NoError(t, err)
	require.Len(t, snapped, 1)

	assert.InDelta(t, -6.175401, snapped[0].Location.Latitude, 1e-9)
	assert.InDelta(t, 106.827160, snapped[0].Location.Longitude, 1e-9)
	require.NotNil(t, snapped[0].OriginalIndex)
	assert.Equal(t, 0, *snapped[0].OriginalIndex)
	assert.Equal(t, "abc123", snapped[0].PlaceID)

	assert.Contains(t, gotQuery, "key=test-key")
}

func TestSnapToRoads_JoinsBatchWithPipe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		points := r.URL.Query().Get("points")
		assert.Equal(t, "-6.175392,106.827153|-6.180000,106.830000", points)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"snappedPoints": []}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	coords := []models.Coordinate{
		{Latitude: -6.175392, Longitude: 106.827153},
		{Latitude: -6.18, Longitude: 106.83},
	}

	snapped, err := client.SnapToRoads(context.Background(), coords)
	require.NoError(t, err)
	assert.Empty(t, snapped)
}

func TestSnapToRoads_EmptyBodyIsValidNegative(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	snapped, err := client.SnapToRoads(context.Background(), []models.Coordinate{{Latitude: 1, Longitude: 2}})

	require.NoError(t, err)
	assert.Empty(t, snapped)
}

func TestSnapToRoads_NonOKStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.SnapToRoads(context.Background(), []models.Coordinate{{Latitude: 1, Longitude: 2}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestSnapToRoads_TimeoutIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	cfg := models.RoadsConfig{
		BaseURL:          server.URL,
		APIKey:           "test-key",
		RequestTimeoutMs: 50,
	}
	client := NewRoadsClient(cfg)

	_, err := client.SnapToRoads(context.Background(), []models.Coordinate{{Latitude: 1, Longitude: 2}})
	require.Error(t, err)
}

func TestSnapToRoads_NoCoordinates(t *testing.T) {
	client := testClient("http://unused.example.com")

	snapped, err := client.SnapToRoads(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, snapped)
}

func TestSnapToRoads_MalformedJSONIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.SnapToRoads(context.Background(), []models.Coordinate{{Latitude: 1, Longitude: 2}})

	require.Error(t, err)
}
