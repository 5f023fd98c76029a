// Package location implements the LocationProvider contract for a device that
// pushes its fixes and permission state to the service over HTTP.
package location

import (
	"context"
	"log/slog"
	"sync"

	"georemind/config"
	"georemind/internal/domain/entity"
	domainerrors "georemind/internal/domain/errors"
	"georemind/internal/domain/service"
	"georemind/internal/geo"

	"github.com/google/uuid"
)

// PushProvider fans device-reported positions out to engine subscriptions.
// A position is forwarded to a subscription once the device has moved at least
// MinDistance meters or Interval has elapsed since the last forwarded fix.
type PushProvider struct {
	mu         sync.Mutex
	foreground bool
	background bool
	current    *entity.Position
	subs       map[string]*pushSubscription

	buffer int
	logger *slog.Logger
}

type pushSubscription struct {
	updates chan service.LocationUpdate
	cfg     service.SubscribeConfig
	last    *entity.Position
}

// NewPushProvider builds a provider whose permission state starts from config until the device reports otherwise.
func NewPushProvider(cfg *config.Config, logger *slog.Logger) *PushProvider {
	cfg.ApplyDefaults()

	return &PushProvider{
		foreground: cfg.Geofence.GrantForeground,
		background: cfg.Geofence.GrantBackground,
		subs:       make(map[string]*pushSubscription),
		buffer:     cfg.Geofence.UpdateBuffer,
		logger:     logger,
	}
}

func (p *PushProvider) RequestForegroundPermission(_ context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.foreground, nil
}

func (p *PushProvider) RequestBackgroundPermission(_ context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.background, nil
}

func (p *PushProvider) Subscribe(_ context.Context, cfg service.SubscribeConfig) (*service.Subscription, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := uuid.NewString()
	sub := &pushSubscription{
		updates: make(chan service.LocationUpdate, p.buffer),
		cfg:     cfg,
	}
	p.subs[id] = sub

	p.logger.Info("[Location] Subscription opened",
		slog.String("subscription_id", id),
		slog.Duration("interval", cfg.Interval),
		slog.Float64("min_distance_meters", cfg.MinDistance),
	)

	return &service.Subscription{ID: id, Updates: sub.updates}, nil
}

// Unsubscribe closes the subscription. Unknown or already closed subscriptions are ignored.
func (p *PushProvider) Unsubscribe(_ context.Context, subscription *service.Subscription) error {
	if subscription == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	sub, ok := p.subs[subscription.ID]
	if !ok {
		return nil
	}
	delete(p.subs, subscription.ID)
	close(sub.updates)

	p.logger.Info("[Location] Subscription closed", slog.String("subscription_id", subscription.ID))

	return nil
}

func (p *PushProvider) CurrentPosition(_ context.Context) (*entity.Position, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return nil, nil
	}
	position := *p.current

	return &position, nil
}

// Publish records the device position and forwards it to every subscription
// that is due for an update. It returns how many subscriptions received it.
func (p *PushProvider) Publish(position entity.Position) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = &position

	delivered := 0
	for id, sub := range p.subs {
		if !sub.due(position) {
			continue
		}
		if p.offer(id, sub, service.LocationUpdate{Position: position}) {
			last := position
			sub.last = &last
			delivered++
		}
	}

	return delivered
}

// ReportError forwards a device-side location failure to every subscription.
func (p *PushProvider) ReportError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, sub := range p.subs {
		p.offer(id, sub, service.LocationUpdate{Err: err})
	}
}

// SetPermissions records the OS grant state reported by the device. Revoking
// either permission is reported to live subscriptions as a feed error.
func (p *PushProvider) SetPermissions(foreground, background bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	revoked := (p.foreground && !foreground) || (p.background && !background)
	p.foreground, p.background = foreground, background

	if !revoked {
		return
	}

	err := domainerrors.ErrLocationPermissionDenied.WithDetails("location permission revoked on device")
	for id, sub := range p.subs {
		p.offer(id, sub, service.LocationUpdate{Err: err})
	}
}

// Permissions returns the last reported grant state.
func (p *PushProvider) Permissions() (foreground, background bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.foreground, p.background
}

// offer never blocks; a full subscription drops the update. Must hold mu.
func (p *PushProvider) offer(id string, sub *pushSubscription, update service.LocationUpdate) bool {
	select {
	case sub.updates <- update:
		return true
	default:
		p.logger.Warn("[Location] Subscription buffer full, dropping update", slog.String("subscription_id", id))

		return false
	}
}

func (s *pushSubscription) due(position entity.Position) bool {
	if s.last == nil {
		return true
	}
	if geo.Distance(s.last.Point(), position.Point()) >= s.cfg.MinDistance {
		return true
	}

	return s.cfg.Interval > 0 && position.Timestamp.Sub(s.last.Timestamp) >= s.cfg.Interval
}
