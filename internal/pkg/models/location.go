package models

import "time"

// Coordinate is a WGS84 position in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TickSample is one motion sample supplied by the simulation loop
type TickSample struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Speed        float64 `json:"speed"`
	DeltaSeconds float64 `json:"delta_seconds"`
}

// Coordinate returns the sample position as a Coordinate
func (t TickSample) Coordinate() Coordinate {
	return Coordinate{Latitude: t.Latitude, Longitude: t.Longitude}
}

// TrackPoint is one recorded position of a session's driving trail
type TrackPoint struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	OnRoad    bool      `json:"on_road"`
	Timestamp time.Time `json:"timestamp"`
}
