package models

import "time"

// ScoreSnapshot is the externally visible score state of a session
type ScoreSnapshot struct {
	SessionID      string    `json:"session_id"`
	Points         int       `json:"points"`
	Multiplier     float64   `json:"multiplier"`
	DistanceOnRoad float64   `json:"distance_on_road"`
	OnRoad         bool      `json:"on_road"`
	ClassifierMode string    `json:"classifier_mode"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ScoreUpdatedEvent is published after a tick has been applied to a session
type ScoreUpdatedEvent struct {
	SessionID      string    `json:"session_id"`
	Seq            uint64    `json:"seq"`
	Points         int       `json:"points"`
	Multiplier     float64   `json:"multiplier"`
	DistanceOnRoad float64   `json:"distance_on_road"`
	OnRoad         bool      `json:"on_road"`
	Timestamp      time.Time `json:"timestamp"`
}

// ClassifierStatusEvent is published when the classifier health changes
type ClassifierStatusEvent struct {
	Label     string    `json:"label"`
	Color     string    `json:"color"`
	Mode      string    `json:"mode"`
	Timestamp time.Time `json:"timestamp"`
}
