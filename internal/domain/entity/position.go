package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Position is a single device location fix.
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"` // Horizontal accuracy in meters, 0 when unknown.
	Timestamp time.Time `json:"timestamp"`
}

// Point returns the position as an orb point (lng, lat).
func (p Position) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}
