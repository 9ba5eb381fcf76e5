package models

// SnappedPoint is one point returned by the nearest-roads service.
// OriginalIndex refers back to the position of the queried coordinate in a
// batch request; single-point requests leave it nil.
type SnappedPoint struct {
	Location      Coordinate `json:"location"`
	OriginalIndex *int       `json:"originalIndex,omitempty"`
	PlaceID       string     `json:"placeId,omitempty"`
}

// CacheStats reports classification cache health
type CacheStats struct {
	Entries int     `json:"entries"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}
