package utils

import (
	"fmt"
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/ridelabs/drivescore/internal/pkg/models"
)

// earthRadiusMeters is the mean Earth radius used by the haversine formula
const earthRadiusMeters = 6371000.0

// cellPrecision is the geohash length used for trail cell bucketing
// (precision 7 is roughly a 150m x 150m cell)
const cellPrecision = 7

// DistanceMeters calculates the great-circle distance between two points in
// meters using the haversine formula.
func DistanceMeters(p1, p2 models.Coordinate) float64 {
	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// RoundedKey collapses a coordinate to a cache key at 5 decimal places,
// about 1.1m of precision at the equator.
func RoundedKey(lat, lng float64) string {
	return fmt.Sprintf("%.5f,%.5f", lat, lng)
}

// CellKey returns the geohash cell a coordinate falls into, used to bucket
// trail points for per-area statistics.
func CellKey(c models.Coordinate) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, cellPrecision)
}

// DecodeCell converts a geohash cell back to its center coordinate
func DecodeCell(cell string) models.Coordinate {
	lat, lng := geohash.Decode(cell)
	return models.Coordinate{Latitude: lat, Longitude: lng}
}
