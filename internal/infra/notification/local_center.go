package notification

import (
	"cmp"
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"georemind/internal/domain/service"
	"georemind/internal/errors"
)

// ErrChannelNotCreated is returned when displaying on a channel that was never created.
var ErrChannelNotCreated = errors.New("notification channel has not been created")

// Displayed is a notification currently shown by the local center.
type Displayed struct {
	ID          string            `json:"id"`
	ChannelID   string            `json:"channel_id"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
	DisplayedAt time.Time         `json:"displayed_at"`
}

// LocalCenter is an in-process notification center used when no push backend
// is configured. Notifications are logged and kept until cancelled.
type LocalCenter struct {
	mu        sync.Mutex
	channels  map[string]service.ChannelConfig
	displayed map[string]Displayed

	logger *slog.Logger
	now    func() time.Time
}

// NewLocalCenter creates an empty notification center.
func NewLocalCenter(logger *slog.Logger) *LocalCenter {
	return &LocalCenter{
		channels:  make(map[string]service.ChannelConfig),
		displayed: make(map[string]Displayed),
		logger:    logger,
		now:       time.Now,
	}
}

func (c *LocalCenter) CreateChannel(_ context.Context, cfg service.ChannelConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.channels[cfg.ID] = cfg

	return nil
}

func (c *LocalCenter) Display(_ context.Context, spec service.NotificationSpec) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.channels[spec.ChannelID]; !ok {
		return "", errors.Wrapf(ErrChannelNotCreated, "channel %q", spec.ChannelID)
	}

	c.displayed[spec.ID] = Displayed{
		ID:          spec.ID,
		ChannelID:   spec.ChannelID,
		Title:       spec.Title,
		Body:        spec.Body,
		Data:        maps.Clone(spec.Data),
		DisplayedAt: c.now(),
	}

	c.logger.Info("[Notification] Displayed",
		slog.String("notification_id", spec.ID),
		slog.String("title", spec.Title),
	)

	return spec.ID, nil
}

// Cancel removes the notification. Cancelling an unknown id is a no-op.
func (c *LocalCenter) Cancel(_ context.Context, notificationID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.displayed, notificationID)

	return nil
}

func (c *LocalCenter) CancelAll(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.displayed)

	return nil
}

// List returns the displayed notifications, oldest first.
func (c *LocalCenter) List() []Displayed {
	c.mu.Lock()
	defer c.mu.Unlock()

	list := slices.Collect(maps.Values(c.displayed))
	slices.SortFunc(list, func(a, b Displayed) int {
		if n := a.DisplayedAt.Compare(b.DisplayedAt); n != 0 {
			return n
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return list
}
