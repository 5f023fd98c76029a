package service

import (
	"context"
	"time"

	"georemind/internal/domain/entity"
)

// SubscribeConfig tunes how often the provider delivers position updates.
type SubscribeConfig struct {
	Interval     time.Duration // Desired update interval
	MinDistance  float64       // Minimum movement in meters between updates
	HighAccuracy bool
}

// LocationUpdate is one event on a subscription: either a position fix or a feed error.
type LocationUpdate struct {
	Position entity.Position
	Err      error // Permission revoked mid-session, sensor failure, ...
}

// Subscription is a live stream of location updates.
// Updates is closed by the provider once the subscription is cancelled.
type Subscription struct {
	ID      string
	Updates <-chan LocationUpdate
}

// LocationProvider abstracts the platform location service.
type LocationProvider interface {
	// RequestForegroundPermission asks for location access while the app is visible
	RequestForegroundPermission(ctx context.Context) (bool, error)

	// RequestBackgroundPermission asks for location access while the app is backgrounded
	RequestBackgroundPermission(ctx context.Context) (bool, error)

	Subscribe(ctx context.Context, cfg SubscribeConfig) (*Subscription, error)

	// Unsubscribe stops delivery and closes the subscription's Updates channel
	Unsubscribe(ctx context.Context, sub *Subscription) error

	// CurrentPosition returns the most recent fix, or nil when none is known
	CurrentPosition(ctx context.Context) (*entity.Position, error)
}
