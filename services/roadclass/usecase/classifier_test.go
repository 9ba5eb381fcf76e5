package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelabs/drivescore/internal/pkg/models"
	"github.com/ridelabs/drivescore/internal/utils"
	"github.com/ridelabs/drivescore/services/roadclass"
	"github.com/ridelabs/drivescore/services/roadclass/mocks"
)

func testRoadsConfig() models.RoadsConfig {
	return models.RoadsConfig{
		BaseURL:          "https://roads.example.com",
		APIKey:           "test-key",
		RequestTimeoutMs: 5000,
		ToleranceMeters:  10.0,
		CacheTTLMs:       30000,
		CacheCapacity:    128,
		FallbackCenter:   models.LatLng{Latitude: -6.2, Longitude: 106.8},
		FallbackZoom:     15,
	}
}

func testMapView(cfg models.RoadsConfig) *ConfigMapView {
	return NewConfigMapView(cfg)
}

func intPtr(i int) *int { return &i }

func TestClassify_OnRoadWithinTolerance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockRoadsGW(ctrl)
	mockCache := mocks.NewMockClassificationCache(ctrl)
	cfg := testRoadsConfig()
	classifier := NewRoadClassifier(mockGW, mockCache, testMapView(cfg), cfg)

	query := models.Coordinate{Latitude: -6.175392, Longitude: 106.827153}
	// Snapped about 2 meters away
	snapped := models.Coordinate{Latitude: -6.175410, Longitude: 106.827153}
	require.Less(t, utils.DistanceMeters(query, snapped), 10.0)

	key := utils.RoundedKey(query.Latitude, query.Longitude)
	mockCache.EXPECT().Get(gomock.Any(), key).Return(false, false, nil)
	mockGW.EXPECT().
		SnapToRoads(gomock.Any(), []models.Coordinate{query}).
		Return([]models.SnappedPoint{{Location: snapped}}, nil)
	mockCache.EXPECT().Put(gomock.Any(), key, true).Return(nil)

	onRoad := classifier.Classify(context.Background(), query.Latitude, query.Longitude)

	assert.True(t, onRoad)
	assert.Equal(t, roadclass.ModeLive, classifier.Mode())
}

func TestClassify_OffRoadBeyondTolerance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockRoadsGW(ctrl)
	mockCache := mocks.NewMockClassificationCache(ctrl)
	cfg := testRoadsConfig()
	classifier := NewRoadClassifier(mockGW, mockCache, testMapView(cfg), cfg)

	query := models.Coordinate{Latitude: -6.175392, Longitude: 106.827153}
	// Snapped about 100 meters away
	snapped := models.Coordinate{Latitude: -6.174493, Longitude: 106.827153}
	require.Greater(t, utils.DistanceMeters(query, snapped), 10.0)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(false, false, nil)
	mockGW.EXPECT().
		SnapToRoads(gomock.Any(), gomock.Any()).
		Return([]models.SnappedPoint{{Location: snapped}}, nil)
	mockCache.EXPECT().Put(gomock.Any(), gomock.Any(), false).Return(nil)

	assert.False(t, classifier.Classify(context.Background(), query.Latitude, query.Longitude))
}

func TestClassify_EmptyResponseIsValidNegative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockRoadsGW(ctrl)
	mockCache := mocks.NewMockClassificationCache(ctrl)
	cfg := testRoadsConfig()
	classifier := NewRoadClassifier(mockGW, mockCache, testMapView(cfg), cfg)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(false, false, nil)
	mockGW.EXPECT().SnapToRoads(gomock.Any(), gomock.Any()).Return(nil, nil)
	// No road nearby is a cacheable negative, not an error
	mockCache.EXPECT().Put(gomock.Any(), gomock.Any(), false).Return(nil)

	assert.False(t, classifier.Classify(context.Background(), -6.175392, 106.827153))
	assert.Equal(t, roadclass.ModeLive, classifier.Mode())
}

func TestClassify_CacheHitSkipsRemoteQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockRoadsGW(ctrl)
	mockCache := mocks.NewMockClassificationCache(ctrl)
	cfg := testRoadsConfig()
	classifier := NewRoadClassifier(mockGW, mockCache, testMapView(cfg), cfg)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(true, true, nil)
	// No SnapToRoads expectation: a cache hit must not reach the network

	assert.True(t, classifier.Classify(context.Background(), -6.175392, 106.827153))
}

func TestClassify_FailureEntersStickyFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockRoadsGW(ctrl)
	mockCache := mocks.NewMockClassificationCache(ctrl)
	cfg := testRoadsConfig()
	classifier := NewRoadClassifier(mockGW, mockCache, testMapView(cfg), cfg)

	// Two classifications but only one remote attempt: after the failure
	// the classifier stays in fallback
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(false, false, nil).Times(2)
	mockGW.EXPECT().
		SnapToRoads(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(1)

	classifier.Classify(context.Background(), -6.175392, 106.827153)
	assert.Equal(t, roadclass.ModeFallback, classifier.Mode())

	classifier.Classify(context.Background(), -6.175392, 106.827153)
	assert.Equal(t, roadclass.ModeFallback, classifier.Mode())
}

func TestClassify_NoCredentialStartsInFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockClassificationCache(ctrl)
	cfg := testRoadsConfig()
	cfg.APIKey = ""
	// A nil gateway proves the remote is never attempted
	classifier := NewRoadClassifier(nil, mockCache, testMapView(cfg), cfg)

	assert.Equal(t, roadclass.ModeFallback, classifier.Mode())

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(false, false, nil)
	classifier.Classify(context.Background(), -6.2, 106.8)
	assert.Equal(t, roadclass.ModeFallback, classifier.Mode())
}

func TestClassifyBatch_MatchesByOriginalIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockRoadsGW(ctrl)
	mockCache := mocks.NewMockClassificationCache(ctrl)
	cfg := testRoadsConfig()
	classifier := NewRoadClassifier(mockGW, mockCache, testMapView(cfg), cfg)

	coords := []models.Coordinate{
		{Latitude: -6.175392, Longitude: 106.827153},
		{Latitude: -6.180000, Longitude: 106.830000},
		{Latitude: -6.190000, Longitude: 106.840000},
	}

	// Only the last coordinate snaps to a road; the response reports it
	// via originalIndex, out of positional order
	mockGW.EXPECT().
		SnapToRoads(gomock.Any(), coords).
		Return([]models.SnappedPoint{
			{Location: coords[2], OriginalIndex: intPtr(2)},
		}, nil)
	mockCache.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	results := classifier.ClassifyBatch(context.Background(), coords)

	require.Len(t, results, 3)
	assert.False(t, results[0])
	assert.False(t, results[1])
	assert.True(t, results[2])
}

func TestClassifyBatch_FailureFallsBackPerCoordinate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockRoadsGW(ctrl)
	mockCache := mocks.NewMockClassificationCache(ctrl)
	cfg := testRoadsConfig()
	mapView := testMapView(cfg)
	classifier := NewRoadClassifier(mockGW, mockCache, mapView, cfg)

	coords := []models.Coordinate{
		{Latitude: -6.2001, Longitude: 106.8001},
		{Latitude: -6.2003, Longitude: 106.8003},
	}

	mockGW.EXPECT().SnapToRoads(gomock.Any(), coords).Return(nil, errors.New("timeout"))

	results := classifier.ClassifyBatch(context.Background(), coords)

	require.Len(t, results, 2)
	assert.Equal(t, roadclass.ModeFallback, classifier.Mode())

	// The fallback grid is deterministic for a fixed map center
	again := classifier.ClassifyBatch(context.Background(), coords)
	assert.Equal(t, results, again)
}

func TestClassifyBatch_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testRoadsConfig()
	classifier := NewRoadClassifier(mocks.NewMockRoadsGW(ctrl), mocks.NewMockClassificationCache(ctrl), testMapView(cfg), cfg)

	assert.Empty(t, classifier.ClassifyBatch(context.Background(), nil))
}

func TestTolerance_RuntimeAdjustable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testRoadsConfig()
	classifier := NewRoadClassifier(mocks.NewMockRoadsGW(ctrl), mocks.NewMockClassificationCache(ctrl), testMapView(cfg), cfg)

	assert.Equal(t, 10.0, classifier.Tolerance())
	classifier.SetTolerance(25.0)
	assert.Equal(t, 25.0, classifier.Tolerance())
}
