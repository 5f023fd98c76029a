package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"time"

	"georemind/internal/domain/constants"
	"georemind/internal/domain/entity"
	domainerrors "georemind/internal/domain/errors"
	"georemind/internal/domain/repository"
	"georemind/internal/domain/service"
	"georemind/internal/errors"

	"github.com/google/uuid"
)

const (
	// persistTimeout bounds a single fire-and-forget status write
	persistTimeout = 5 * time.Second
)

// notificationDispatcher builds and displays reminder notifications,
// remembers the ids it displayed so they can be cancelled in bulk, and
// writes reminder statuses to the status repository.
type notificationDispatcher struct {
	notifier   service.Notifier
	statusRepo repository.StatusRepository
	channel    service.ChannelConfig
	logger     *slog.Logger

	newID func() string
	now   func() time.Time

	mu           sync.Mutex
	outstanding  map[string]struct{}
	channelReady bool

	// status writes are applied one at a time in the order they were recorded
	statusMu    sync.Mutex
	statusQueue []statusWrite
	// closed when the status writer goroutine exits; nil while idle
	statusIdle chan struct{}
}

type statusWrite struct {
	ctx        context.Context
	reminderID string
	status     entity.ReminderStatus
}

func newNotificationDispatcher(
	notifier service.Notifier,
	statusRepo repository.StatusRepository,
	channel service.ChannelConfig,
	logger *slog.Logger,
) *notificationDispatcher {
	return &notificationDispatcher{
		notifier:    notifier,
		statusRepo:  statusRepo,
		channel:     channel,
		logger:      logger,
		newID:       uuid.NewString,
		now:         time.Now,
		outstanding: make(map[string]struct{}),
	}
}

// Trigger displays the notification for a reminder and returns the id it was displayed under.
// The caller confirms a successful display with Commit. A display failure
// records nothing so the reminder can be retried on the next update.
func (d *notificationDispatcher) Trigger(ctx context.Context, reminder entity.LocationReminder, position *entity.Position) (string, error) {
	if err := d.ensureChannel(ctx); err != nil {
		return "", err
	}

	spec, err := d.buildSpec(reminder, position)
	if err != nil {
		return "", domainerrors.ErrNotificationDisplayFailed.WithDetails(err.Error())
	}

	notificationID, err := d.notifier.Display(ctx, spec)
	if err != nil {
		d.logger.Warn("[Dispatcher] Failed to display notification",
			slog.String("reminder_id", reminder.ID),
			slog.Any("error", err),
		)

		return "", domainerrors.ErrNotificationDisplayFailed.WithDetails(err.Error())
	}
	if notificationID == "" {
		notificationID = spec.ID
	}

	d.logger.Info("[Dispatcher] Reminder notification displayed",
		slog.String("reminder_id", reminder.ID),
		slog.String("notification_id", notificationID),
	)

	return notificationID, nil
}

// Commit records a displayed notification: the id becomes outstanding and the
// Sent status is queued for persistence.
func (d *notificationDispatcher) Commit(ctx context.Context, reminderID, notificationID string) {
	d.Track(notificationID)
	d.RecordStatus(ctx, reminderID, entity.ReminderStatusSent)
}

// Track remembers a displayed notification so CancelAll removes it.
func (d *notificationDispatcher) Track(notificationID string) {
	d.mu.Lock()
	d.outstanding[notificationID] = struct{}{}
	d.mu.Unlock()
}

// RecordStatus queues a reminder status write without blocking the caller.
// Writes reach the repository in the order they were recorded, so a later
// status always wins. Failures are logged and never propagated.
func (d *notificationDispatcher) RecordStatus(ctx context.Context, reminderID string, status entity.ReminderStatus) {
	if d.statusRepo == nil {
		return
	}

	d.statusMu.Lock()
	defer d.statusMu.Unlock()

	d.statusQueue = append(d.statusQueue, statusWrite{
		ctx:        context.WithoutCancel(ctx),
		reminderID: reminderID,
		status:     status,
	})
	if d.statusIdle != nil {
		return
	}

	idle := make(chan struct{})
	d.statusIdle = idle
	go d.writeStatuses(idle)
}

// writeStatuses drains the status queue and exits once it is empty.
func (d *notificationDispatcher) writeStatuses(idle chan struct{}) {
	for {
		d.statusMu.Lock()
		if len(d.statusQueue) == 0 {
			d.statusIdle = nil
			d.statusMu.Unlock()
			close(idle)

			return
		}
		write := d.statusQueue[0]
		d.statusQueue[0] = statusWrite{}
		d.statusQueue = d.statusQueue[1:]
		d.statusMu.Unlock()

		d.persist(write)
	}
}

func (d *notificationDispatcher) persist(write statusWrite) {
	ctx, cancel := context.WithTimeout(write.ctx, persistTimeout)
	defer cancel()

	if err := d.statusRepo.PersistStatus(ctx, write.reminderID, write.status); err != nil {
		d.logger.Warn("[Dispatcher] Failed to persist reminder status",
			slog.String("reminder_id", write.reminderID),
			slog.String("status", string(write.status)),
			slog.Any("error", err),
		)
	}
}

// Cancel removes one notification from the notification center and the outstanding set.
func (d *notificationDispatcher) Cancel(ctx context.Context, notificationID string) error {
	if err := d.notifier.Cancel(ctx, notificationID); err != nil {
		return errors.Wrapf(err, "cancel notification %s", notificationID)
	}

	d.mu.Lock()
	delete(d.outstanding, notificationID)
	d.mu.Unlock()

	return nil
}

// CancelAll removes every outstanding notification. The outstanding set is
// only cleared when the notifier succeeded.
func (d *notificationDispatcher) CancelAll(ctx context.Context) error {
	if err := d.notifier.CancelAll(ctx); err != nil {
		return errors.Wrap(err, "cancel all notifications")
	}

	d.mu.Lock()
	clear(d.outstanding)
	d.mu.Unlock()

	return nil
}

// Outstanding returns the ids of displayed, not yet cancelled notifications.
func (d *notificationDispatcher) Outstanding() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	ids := make([]string, 0, len(d.outstanding))
	for id := range d.outstanding {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Reset forgets outstanding ids without touching the notification center.
func (d *notificationDispatcher) Reset() {
	d.mu.Lock()
	clear(d.outstanding)
	d.mu.Unlock()
}

// Wait blocks until the status queue has been drained or ctx is done.
func (d *notificationDispatcher) Wait(ctx context.Context) error {
	for {
		d.statusMu.Lock()
		idle := d.statusIdle
		d.statusMu.Unlock()
		if idle == nil {
			return nil
		}

		select {
		case <-idle:
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		}
	}
}

func (d *notificationDispatcher) ensureChannel(ctx context.Context) error {
	d.mu.Lock()
	ready := d.channelReady
	d.mu.Unlock()
	if ready {
		return nil
	}

	if err := d.notifier.CreateChannel(ctx, d.channel); err != nil {
		d.logger.Warn("[Dispatcher] Failed to create notification channel",
			slog.String("channel_id", d.channel.ID),
			slog.Any("error", err),
		)

		return domainerrors.ErrNotificationDisplayFailed.WithDetails("notification channel unavailable: " + err.Error())
	}

	d.mu.Lock()
	d.channelReady = true
	d.mu.Unlock()

	return nil
}

func (d *notificationDispatcher) buildSpec(reminder entity.LocationReminder, position *entity.Position) (service.NotificationSpec, error) {
	data := map[string]string{
		constants.DataKeyReminderID:  reminder.ID,
		constants.DataKeyLatitude:    strconv.FormatFloat(reminder.Latitude, 'f', -1, 64),
		constants.DataKeyLongitude:   strconv.FormatFloat(reminder.Longitude, 'f', -1, 64),
		constants.DataKeyRadius:      strconv.FormatFloat(reminder.Radius, 'f', -1, 64),
		constants.DataKeyTriggeredAt: d.now().UTC().Format(time.RFC3339),
	}

	if position != nil {
		data["device_latitude"] = strconv.FormatFloat(position.Latitude, 'f', -1, 64)
		data["device_longitude"] = strconv.FormatFloat(position.Longitude, 'f', -1, 64)
	}

	if len(reminder.Payload) > 0 {
		payload, err := json.Marshal(reminder.Payload)
		if err != nil {
			return service.NotificationSpec{}, errors.Wrap(err, "encode reminder payload")
		}
		data[constants.DataKeyPayload] = string(payload)
	}

	return service.NotificationSpec{
		ID:        d.newID(),
		ChannelID: d.channel.ID,
		Title:     reminder.Title,
		Body:      reminder.Message,
		Data:      data,
	}, nil
}
