// Package impl contains the geofence reminder engine and its internal components.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"georemind/config"
	deliverycontext "georemind/internal/delivery/context"
	"georemind/internal/domain/entity"
	domainerrors "georemind/internal/domain/errors"
	"georemind/internal/domain/lifecycle"
	"georemind/internal/domain/repository"
	"georemind/internal/domain/service"
	"georemind/internal/errors"
	"georemind/internal/geo"
	"georemind/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// reminderEngine implements the ReminderEngine interface.
//
// opMu serialises lifecycle transitions and reminder CRUD so calls from one
// caller apply in program order. mu guards the registry, the service state and
// the subscription generation; it is held only for in-memory work, never across I/O.
type reminderEngine struct {
	provider     service.LocationProvider
	dispatcher   *notificationDispatcher
	publisher    service.EventPublisher
	observers    *lifecycleObservers
	subscribeCfg service.SubscribeConfig
	logger       *slog.Logger

	now   func() time.Time
	newID func() string

	opMu sync.Mutex

	mu         sync.Mutex
	registry   *reminderRegistry
	state      *serviceStateMachine
	feed       *locationFeed
	generation uint64
	// reminders deactivated by a match whose notification is still being displayed
	claims map[string]struct{}

	// tracks in-flight trigger event publishing
	background sync.WaitGroup
}

// ReminderEngineParams holds dependencies for the reminder engine, injected by Fx.
type ReminderEngineParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Provider   service.LocationProvider
	Notifier   service.Notifier
	StatusRepo repository.StatusRepository `optional:"true"`
	Publisher  service.EventPublisher      `optional:"true"`
}

// NewReminderEngine is the constructor for the reminder engine.
func NewReminderEngine(params ReminderEngineParams) usecase.ReminderEngine {
	return newReminderEngine(params)
}

func newReminderEngine(params ReminderEngineParams) *reminderEngine {
	cfg := params.Config
	cfg.ApplyDefaults()

	channel := service.ChannelConfig{
		ID:         cfg.Notification.ChannelID,
		Name:       cfg.Notification.ChannelName,
		Importance: service.ChannelImportance(cfg.Notification.Importance),
	}

	engine := &reminderEngine{
		provider:   params.Provider,
		dispatcher: newNotificationDispatcher(params.Notifier, params.StatusRepo, channel, params.Logger),
		publisher:  params.Publisher,
		observers:  newLifecycleObservers(cfg.Geofence.EventBuffer, params.Logger),
		subscribeCfg: service.SubscribeConfig{
			Interval:     cfg.Geofence.UpdateInterval,
			MinDistance:  cfg.Geofence.MinDistanceMeters,
			HighAccuracy: cfg.Geofence.HighAccuracy,
		},
		logger: params.Logger,
		now:    time.Now,
		newID:  uuid.NewString,
		state:  newServiceStateMachine(),
		claims: make(map[string]struct{}),
	}
	engine.registry = newReminderRegistry(func() time.Time { return engine.now() })

	return engine
}

// log returns a request-scoped logger if available, otherwise falls back to the engine's logger.
func (e *reminderEngine) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, e.logger)
}

func (e *reminderEngine) Start(ctx context.Context) error {
	e.opMu.Lock()
	events, err := e.start(ctx)
	e.opMu.Unlock()

	e.observers.emit(events...)

	return err
}

func (e *reminderEngine) Stop(ctx context.Context) error {
	e.opMu.Lock()
	events := e.stop(ctx, false)
	e.opMu.Unlock()

	e.observers.emit(events...)

	return nil
}

// Pause keeps the subscription alive but discards updates until Resume.
// Pausing an engine that is not running is a no-op.
func (e *reminderEngine) Pause(ctx context.Context) error {
	e.opMu.Lock()
	events, err := e.pause(ctx)
	e.opMu.Unlock()

	e.observers.emit(events...)

	return err
}

// Resume re-validates location permission before evaluating updates again.
// If permission was revoked while paused the engine stops and the denial is returned.
func (e *reminderEngine) Resume(ctx context.Context) error {
	e.opMu.Lock()
	events, err := e.resume(ctx)
	e.opMu.Unlock()

	e.observers.emit(events...)

	return err
}

// ForceStop stops tracking and drops every registered reminder.
func (e *reminderEngine) ForceStop(ctx context.Context) error {
	e.opMu.Lock()
	events := e.stop(ctx, true)
	e.opMu.Unlock()

	e.observers.emit(events...)

	return nil
}

// EmergencyStop does not wait for in-progress transitions; it only needs the state lock.
func (e *reminderEngine) EmergencyStop() {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("[Engine] Emergency stop panicked", slog.Any("panic", r))
		}
	}()

	e.mu.Lock()
	feed := e.feed
	e.feed = nil
	e.generation++
	e.registry.Clear()
	clear(e.claims)
	e.state.reset()
	e.mu.Unlock()

	e.dispatcher.Reset()

	if feed != nil {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		if err := feed.close(ctx, e.provider); err != nil {
			e.logger.Warn("[Engine] Emergency stop could not unsubscribe", slog.Any("error", err))
		}
	}

	e.logger.Warn("[Engine] Emergency stop completed")
}

// AddReminder registers the reminder and starts tracking when the engine is stopped.
// When starting fails the reminder stays registered and the start error is returned.
func (e *reminderEngine) AddReminder(ctx context.Context, spec entity.ReminderSpec) (entity.LocationReminder, error) {
	e.opMu.Lock()

	id := spec.ID
	if id == "" {
		id = e.newID()
	}

	e.mu.Lock()
	stored := e.registry.Add(entity.LocationReminder{
		ID:        id,
		Latitude:  spec.Latitude,
		Longitude: spec.Longitude,
		Radius:    spec.Radius,
		Title:     spec.Title,
		Message:   spec.Message,
		Payload:   spec.Payload,
	})
	delete(e.claims, id)
	e.syncActiveCount()
	e.dispatcher.RecordStatus(ctx, id, entity.ReminderStatusPending)
	status := e.state.Status()
	e.mu.Unlock()

	e.log(ctx).Info("[Engine] Reminder added",
		slog.String("reminder_id", id),
		slog.Float64("radius", stored.Radius),
	)

	var (
		events []entity.LifecycleEvent
		err    error
	)
	if status == entity.ServiceStatusStopped {
		events, err = e.start(ctx)
		if err != nil {
			e.log(ctx).Warn("[Engine] Reminder added but tracking could not start",
				slog.String("reminder_id", id),
				slog.Any("error", err),
			)
		}
	}
	e.opMu.Unlock()

	e.observers.emit(events...)

	return stored, err
}

// RemoveReminder deletes the reminder and stops tracking once no active reminder
// remains and no match is still being displayed. Removing an unknown id is a no-op.
func (e *reminderEngine) RemoveReminder(ctx context.Context, id string) error {
	e.opMu.Lock()

	e.mu.Lock()
	removed := e.registry.Remove(id)
	delete(e.claims, id)
	e.syncActiveCount()
	idle := e.registry.ActiveCount() == 0 && len(e.claims) == 0
	e.mu.Unlock()

	var events []entity.LifecycleEvent
	if removed {
		e.log(ctx).Info("[Engine] Reminder removed", slog.String("reminder_id", id))

		if idle {
			events = e.stop(ctx, false)
		}
	}
	e.opMu.Unlock()

	e.observers.emit(events...)

	return nil
}

// ActivateReminder re-arms the reminder as active and pending, starting tracking if needed.
func (e *reminderEngine) ActivateReminder(ctx context.Context, id string) error {
	e.opMu.Lock()

	e.mu.Lock()
	if !e.registry.Activate(id) {
		e.mu.Unlock()
		e.opMu.Unlock()

		return domainerrors.ErrReminderNotFound.WithDetails(id)
	}
	delete(e.claims, id)
	e.syncActiveCount()
	e.dispatcher.RecordStatus(ctx, id, entity.ReminderStatusPending)
	status := e.state.Status()
	e.mu.Unlock()

	var (
		events []entity.LifecycleEvent
		err    error
	)
	if status == entity.ServiceStatusStopped {
		events, err = e.start(ctx)
	}
	e.opMu.Unlock()

	e.observers.emit(events...)

	return err
}

// DeactivateReminder excludes the reminder from evaluation without changing its status.
func (e *reminderEngine) DeactivateReminder(ctx context.Context, id string) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.registry.Deactivate(id) {
		return domainerrors.ErrReminderNotFound.WithDetails(id)
	}
	delete(e.claims, id)
	e.syncActiveCount()

	return nil
}

// ExpireReminder invalidates the reminder without deleting it.
func (e *reminderEngine) ExpireReminder(ctx context.Context, id string) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	e.mu.Lock()
	if !e.registry.SetStatus(id, entity.ReminderStatusExpired) {
		e.mu.Unlock()

		return domainerrors.ErrReminderNotFound.WithDetails(id)
	}
	e.registry.Deactivate(id)
	delete(e.claims, id)
	e.syncActiveCount()
	e.dispatcher.RecordStatus(ctx, id, entity.ReminderStatusExpired)
	e.mu.Unlock()

	return nil
}

func (e *reminderEngine) GetReminder(_ context.Context, id string) (entity.LocationReminder, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	reminder, ok := e.registry.Get(id)
	if !ok {
		return entity.LocationReminder{}, domainerrors.ErrReminderNotFound.WithDetails(id)
	}

	return reminder, nil
}

func (e *reminderEngine) ServiceInfo(_ context.Context) entity.ServiceInfo {
	e.mu.Lock()
	snapshot := e.state.Snapshot()
	active := e.registry.ActiveReminders()
	inactive := e.registry.InactiveReminders()
	e.mu.Unlock()

	return entity.ServiceInfo{
		Tracking:                 snapshot.Tracking,
		Paused:                   snapshot.Paused,
		Status:                   snapshot.Status,
		ActiveRemindersCount:     snapshot.ActiveRemindersCount,
		ActiveReminders:          active,
		InactiveReminders:        inactive,
		LastLocation:             snapshot.LastLocation,
		OutstandingNotifications: e.dispatcher.Outstanding(),
	}
}

func (e *reminderEngine) RegisterCallbacks(callbacks usecase.Callbacks) {
	e.observers.register(callbacks)
}

func (e *reminderEngine) UnregisterCallbacks() {
	e.observers.unregister()
}

func (e *reminderEngine) Events() <-chan entity.LifecycleEvent {
	return e.observers.stream()
}

// Shutdown stops tracking and drains background status writes and trigger publishing.
func (e *reminderEngine) Shutdown(ctx context.Context) error {
	if err := e.Stop(ctx); err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		e.background.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "wait for trigger publishing")
	}

	return e.dispatcher.Wait(ctx)
}

// start must be called with opMu held.
func (e *reminderEngine) start(ctx context.Context) ([]entity.LifecycleEvent, error) {
	e.mu.Lock()
	status := e.state.Status()
	generation := e.generation
	e.mu.Unlock()

	if status != entity.ServiceStatusStopped {
		return nil, nil
	}

	if err := e.requestPermissions(ctx); err != nil {
		e.log(ctx).Warn("[Engine] Tracking not started", slog.Any("error", err))

		return nil, err
	}

	sub, err := e.provider.Subscribe(ctx, e.subscribeCfg)
	if err != nil {
		e.log(ctx).Error("[Engine] Failed to subscribe to location updates", slog.Any("error", err))

		return nil, domainerrors.ErrLocationSubscribeFailed.WithDetails(err.Error())
	}

	e.mu.Lock()
	if e.generation != generation {
		// an emergency stop reset the engine while the subscription was being set up
		e.mu.Unlock()
		e.discardSubscription(ctx, sub)

		return nil, domainerrors.ErrInternalError.WithDetails("engine was reset while starting")
	}
	e.generation++
	feed := newLocationFeed(sub, e.generation, e.handleLocationUpdate, e.logger)
	e.feed = feed
	if _, err := e.state.Transition(entity.ServiceStatusRunning); err != nil {
		e.feed = nil
		e.mu.Unlock()
		e.discardSubscription(ctx, sub)

		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}
	e.syncActiveCount()
	e.mu.Unlock()

	feed.run()
	e.seedLastLocation(ctx, feed.generation)

	e.log(ctx).Info("[Engine] Tracking started",
		slog.String("subscription_id", sub.ID),
		slog.Duration("interval", e.subscribeCfg.Interval),
		slog.Float64("min_distance_meters", e.subscribeCfg.MinDistance),
	)

	return []entity.LifecycleEvent{e.event(entity.EventServiceStart)}, nil
}

// stop must be called with opMu held. Unsubscribe and cancellation failures are
// logged; the engine is stopped regardless.
func (e *reminderEngine) stop(ctx context.Context, clearRegistry bool) []entity.LifecycleEvent {
	e.mu.Lock()
	if clearRegistry {
		e.registry.Clear()
		clear(e.claims)
		e.syncActiveCount()
	}
	if e.state.Status() == entity.ServiceStatusStopped {
		e.mu.Unlock()

		return nil
	}
	feed := e.feed
	e.feed = nil
	e.generation++
	if _, err := e.state.Transition(entity.ServiceStatusStopped); err != nil {
		e.logger.Error("[Engine] Unexpected stop transition failure", slog.Any("error", err))
		e.state.reset()
	}
	e.mu.Unlock()

	if feed != nil {
		if err := feed.close(ctx, e.provider); err != nil {
			e.log(ctx).Warn("[Engine] Failed to unsubscribe from location updates", slog.Any("error", err))
		}
	}

	if err := e.dispatcher.CancelAll(ctx); err != nil {
		e.log(ctx).Warn("[Engine] Failed to cancel outstanding notifications", slog.Any("error", err))
	}

	e.log(ctx).Info("[Engine] Tracking stopped", slog.Bool("cleared", clearRegistry))

	return []entity.LifecycleEvent{e.event(entity.EventServiceStop)}
}

// pause must be called with opMu held.
func (e *reminderEngine) pause(ctx context.Context) ([]entity.LifecycleEvent, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	status := e.state.Status()
	if status != entity.ServiceStatusRunning {
		e.log(ctx).Debug("[Engine] Pause ignored", slog.String("status", string(status)))

		return nil, nil
	}
	if _, err := e.state.Transition(entity.ServiceStatusPaused); err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	e.log(ctx).Info("[Engine] Tracking paused")

	return []entity.LifecycleEvent{e.event(entity.EventServicePause)}, nil
}

// resume must be called with opMu held.
func (e *reminderEngine) resume(ctx context.Context) ([]entity.LifecycleEvent, error) {
	e.mu.Lock()
	status := e.state.Status()
	generation := e.generation
	e.mu.Unlock()

	if status != entity.ServiceStatusPaused {
		return nil, nil
	}

	if err := e.requestPermissions(ctx); err != nil {
		if !errors.Is(err, domainerrors.ErrLocationPermissionDenied) {
			return nil, err
		}
		e.log(ctx).Warn("[Engine] Location permission revoked while paused, stopping")

		return e.stop(ctx, false), err
	}

	e.mu.Lock()
	if e.generation != generation {
		e.mu.Unlock()

		return nil, domainerrors.ErrInternalError.WithDetails("engine was reset while resuming")
	}
	changed, err := e.state.Transition(entity.ServiceStatusRunning)
	e.mu.Unlock()
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}
	if !changed {
		return nil, nil
	}

	e.log(ctx).Info("[Engine] Tracking resumed")

	return []entity.LifecycleEvent{e.event(entity.EventServiceResume)}, nil
}

func (e *reminderEngine) requestPermissions(ctx context.Context) error {
	granted, err := e.provider.RequestForegroundPermission(ctx)
	if err != nil {
		return errors.Wrap(err, "request foreground location permission")
	}
	if !granted {
		return domainerrors.ErrLocationPermissionDenied.WithDetails("foreground location permission denied")
	}

	granted, err = e.provider.RequestBackgroundPermission(ctx)
	if err != nil {
		return errors.Wrap(err, "request background location permission")
	}
	if !granted {
		return domainerrors.ErrLocationPermissionDenied.WithDetails("background location permission denied")
	}

	return nil
}

func (e *reminderEngine) discardSubscription(ctx context.Context, sub *service.Subscription) {
	if err := e.provider.Unsubscribe(ctx, sub); err != nil {
		e.log(ctx).Warn("[Engine] Failed to release location subscription", slog.Any("error", err))
	}
}

// seedLastLocation records the current fix so ServiceInfo has a location before the first update.
func (e *reminderEngine) seedLastLocation(ctx context.Context, generation uint64) {
	position, err := e.provider.CurrentPosition(ctx)
	if err != nil {
		e.log(ctx).Debug("[Engine] Current position unavailable", slog.Any("error", err))

		return
	}
	if position == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.generation == generation && e.state.Snapshot().LastLocation == nil {
		e.state.SetLastLocation(*position)
	}
}

// handleLocationUpdate is the feed consumer. Matching reminders are deactivated
// under the lock before any notification is displayed, so an overlapping update
// can never match the same reminder twice.
func (e *reminderEngine) handleLocationUpdate(ctx context.Context, generation uint64, update service.LocationUpdate) {
	if update.Err != nil {
		e.logger.Warn("[Feed] Location feed error", slog.Any("error", update.Err))

		return
	}
	position := update.Position

	e.mu.Lock()
	if generation != e.generation || !e.state.IsTracking() {
		e.mu.Unlock()
		e.logger.Debug("[Feed] Dropping late location update", slog.Uint64("generation", generation))

		return
	}
	e.state.SetLastLocation(position)
	if e.state.IsPaused() {
		e.mu.Unlock()

		return
	}

	var matched []entity.LocationReminder
	for _, reminder := range e.registry.ActiveReminders() {
		if !geo.MayTrigger(&reminder, position) || !geo.IsTriggered(&reminder, position) {
			continue
		}
		e.registry.Deactivate(reminder.ID)
		e.claims[reminder.ID] = struct{}{}
		matched = append(matched, reminder)
	}
	e.syncActiveCount()
	e.mu.Unlock()

	for _, reminder := range matched {
		e.deliver(ctx, generation, reminder, position)
	}
}

// deliver displays one matched reminder. A failure re-arms only that reminder.
func (e *reminderEngine) deliver(ctx context.Context, generation uint64, reminder entity.LocationReminder, position entity.Position) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("[Feed] Reminder delivery panicked",
				slog.String("reminder_id", reminder.ID),
				slog.Any("panic", r),
			)
			e.rearmClaim(reminder.ID)
		}
	}()

	notificationID, err := e.dispatcher.Trigger(ctx, reminder, &position)
	if err != nil {
		e.logger.Warn("[Feed] Reminder stays pending, notification not displayed",
			slog.String("reminder_id", reminder.ID),
			slog.Any("error", err),
		)
		e.rearmClaim(reminder.ID)

		return
	}

	claimed, current := e.confirmClaim(ctx, generation, reminder.ID, notificationID)
	if !claimed {
		e.logger.Debug("[Feed] Reminder changed while its notification was displayed",
			slog.String("reminder_id", reminder.ID),
		)
	}
	if !current {
		// tracking stopped while displaying; the stop already cancelled everything else
		if err := e.dispatcher.Cancel(context.WithoutCancel(ctx), notificationID); err != nil {
			e.logger.Warn("[Feed] Failed to cancel notification displayed after stop",
				slog.String("notification_id", notificationID),
				slog.Any("error", err),
			)
		}
	}

	e.logger.Info("[Feed] Reminder triggered",
		slog.String("reminder_id", reminder.ID),
		slog.String("notification_id", notificationID),
	)

	sent := reminder.Clone()
	sent.IsActive = false
	sent.Status = entity.ReminderStatusSent

	event := e.event(entity.EventNotificationReceived)
	event.Reminder = &sent
	event.NotificationID = notificationID
	event.Position = &position
	e.observers.emit(event)

	e.publishTrigger(ctx, sent, notificationID)
}

// confirmClaim resolves an in-flight match whose notification was displayed.
// claimed is false when a reminder mutation or a reset dropped the claim in the
// meantime; the reminder is then left as it is. current is false when tracking
// stopped since the match; the notification is then not tracked as outstanding.
// Status writes are queued under mu so they reach the repository in the same
// order as the registry changes.
func (e *reminderEngine) confirmClaim(ctx context.Context, generation uint64, id, notificationID string) (claimed, current bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	current = generation == e.generation
	_, claimed = e.claims[id]
	if claimed {
		delete(e.claims, id)
		e.registry.SetStatus(id, entity.ReminderStatusSent)
		e.syncActiveCount()
	}

	switch {
	case claimed && current:
		e.dispatcher.Commit(ctx, id, notificationID)
	case claimed:
		e.dispatcher.RecordStatus(ctx, id, entity.ReminderStatusSent)
	case current:
		e.dispatcher.Track(notificationID)
	}

	return claimed, current
}

// rearmClaim makes a reminder whose notification could not be displayed active again.
func (e *reminderEngine) rearmClaim(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.claims[id]; !ok {
		return
	}
	delete(e.claims, id)
	e.registry.Activate(id)
	e.syncActiveCount()
}

func (e *reminderEngine) publishTrigger(ctx context.Context, reminder entity.LocationReminder, notificationID string) {
	if e.publisher == nil {
		return
	}

	event := &service.TriggerEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notificationID,
		ReminderID:     reminder.ID,
		Title:          reminder.Title,
		Message:        reminder.Message,
		Latitude:       reminder.Latitude,
		Longitude:      reminder.Longitude,
		Radius:         reminder.Radius,
		Payload:        reminder.Payload,
		TriggeredAt:    e.now().UTC().Format(time.RFC3339),
	}
	publishCtx := context.WithoutCancel(ctx)

	e.background.Add(1)
	go func() {
		defer e.background.Done()

		ctx, cancel := context.WithTimeout(publishCtx, persistTimeout)
		defer cancel()

		if err := e.publisher.PublishTriggerEvent(ctx, event); err != nil {
			e.logger.Warn("[Feed] Failed to publish trigger event",
				slog.String("reminder_id", event.ReminderID),
				slog.Any("error", err),
			)
		}
	}()
}

// syncActiveCount must be called with mu held after every registry mutation.
func (e *reminderEngine) syncActiveCount() {
	e.state.SetActiveRemindersCount(e.registry.ActiveCount())
}

func (e *reminderEngine) event(kind entity.LifecycleEventKind) entity.LifecycleEvent {
	return entity.LifecycleEvent{Kind: kind, OccurredAt: e.now()}
}
