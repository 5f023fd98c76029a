package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"georemind/internal/domain/entity"
	domainerrors "georemind/internal/domain/errors"
	"georemind/internal/domain/service"
	"georemind/internal/errors"
	mockRepo "georemind/internal/mocks/repository"
	mockSvc "georemind/internal/mocks/service"
	"georemind/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func drainEvents(engine *reminderEngine) []entity.LifecycleEventKind {
	var kinds []entity.LifecycleEventKind
	for {
		select {
		case event := <-engine.Events():
			kinds = append(kinds, event.Kind)
		default:
			return kinds
		}
	}
}

func TestReminderEngine_TriggersInsideRadius(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)

	fx.deliver(northOf(testLat, testLng, 80))

	reminder := fx.reminder(t, "r1")
	assert.Equal(t, entity.ReminderStatusSent, reminder.Status)
	assert.False(t, reminder.IsActive)
	assert.Equal(t, 1, fx.notifier.displayCount())

	info := fx.engine.ServiceInfo(ctx)
	assert.Equal(t, 0, info.ActiveRemindersCount)
	assert.Empty(t, info.ActiveReminders)
	require.Len(t, info.InactiveReminders, 1)
	assert.Len(t, info.OutstandingNotifications, 1)
}

func TestReminderEngine_OutsideRadiusStaysPending(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)

	fx.deliver(northOf(testLat, testLng, 150))

	reminder := fx.reminder(t, "r1")
	assert.Equal(t, entity.ReminderStatusPending, reminder.Status)
	assert.True(t, reminder.IsActive)
	assert.Zero(t, fx.notifier.displayCount())
	assert.Equal(t, 1, fx.engine.ServiceInfo(ctx).ActiveRemindersCount)
}

func TestReminderEngine_AddStartsAndRemovingLastStops(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	assert.Equal(t, entity.ServiceStatusStopped, fx.engine.ServiceInfo(ctx).Status)

	added, err := fx.engine.AddReminder(ctx, reminderSpec("", 100))
	require.NoError(t, err)
	assert.Equal(t, "generated-1", added.ID)
	assert.True(t, added.IsActive)
	assert.Equal(t, entity.ReminderStatusPending, added.Status)

	info := fx.engine.ServiceInfo(ctx)
	assert.Equal(t, entity.ServiceStatusRunning, info.Status)
	assert.True(t, info.Tracking)
	assert.False(t, info.Paused)
	assert.Equal(t, 1, fx.provider.activeSubscriptions())

	require.NoError(t, fx.engine.RemoveReminder(ctx, added.ID))

	info = fx.engine.ServiceInfo(ctx)
	assert.Equal(t, entity.ServiceStatusStopped, info.Status)
	assert.False(t, info.Tracking)
	assert.Zero(t, fx.provider.activeSubscriptions())
	assert.Equal(t, 1, fx.notifier.cancelAllCount())
}

func TestReminderEngine_RemoveKeepsTrackingWhileRemindersRemain(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)
	_, err = fx.engine.AddReminder(ctx, reminderSpec("r2", 100))
	require.NoError(t, err)

	require.NoError(t, fx.engine.RemoveReminder(ctx, "r1"))
	assert.Equal(t, entity.ServiceStatusRunning, fx.engine.ServiceInfo(ctx).Status)

	require.NoError(t, fx.engine.RemoveReminder(ctx, "unknown"))
	assert.Equal(t, entity.ServiceStatusRunning, fx.engine.ServiceInfo(ctx).Status)
}

func TestReminderEngine_PauseSuppressesEvaluation(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)
	require.NoError(t, fx.engine.Pause(ctx))

	info := fx.engine.ServiceInfo(ctx)
	assert.Equal(t, entity.ServiceStatusPaused, info.Status)
	assert.True(t, info.Tracking)
	assert.True(t, info.Paused)
	assert.Equal(t, 1, fx.provider.activeSubscriptions())

	inside := northOf(testLat, testLng, 80)
	for range 3 {
		fx.deliver(inside)
	}

	reminder := fx.reminder(t, "r1")
	assert.Equal(t, entity.ReminderStatusPending, reminder.Status)
	assert.True(t, reminder.IsActive)
	assert.Zero(t, fx.notifier.displayCount())

	info = fx.engine.ServiceInfo(ctx)
	require.NotNil(t, info.LastLocation)
	assert.Equal(t, inside, *info.LastLocation)

	require.NoError(t, fx.engine.Resume(ctx))
	assert.Equal(t, entity.ServiceStatusRunning, fx.engine.ServiceInfo(ctx).Status)

	fx.deliver(inside)

	assert.Equal(t, entity.ReminderStatusSent, fx.reminder(t, "r1").Status)
	assert.Equal(t, 1, fx.notifier.displayCount())
}

func TestReminderEngine_ForceStopClearsEverything(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	far := reminderSpec("far-1", 100)
	far.Latitude = 25.0330
	far.Longitude = 121.5654
	_, err := fx.engine.AddReminder(ctx, far)
	require.NoError(t, err)

	far.ID = "far-2"
	far.Latitude = 35.6762
	far.Longitude = 139.6503
	_, err = fx.engine.AddReminder(ctx, far)
	require.NoError(t, err)

	_, err = fx.engine.AddReminder(ctx, reminderSpec("near", 100))
	require.NoError(t, err)

	fx.deliver(northOf(testLat, testLng, 10))
	require.Equal(t, entity.ReminderStatusSent, fx.reminder(t, "near").Status)
	require.Len(t, fx.engine.ServiceInfo(ctx).OutstandingNotifications, 1)

	require.NoError(t, fx.engine.ForceStop(ctx))

	info := fx.engine.ServiceInfo(ctx)
	assert.Equal(t, entity.ServiceStatusStopped, info.Status)
	assert.Empty(t, info.ActiveReminders)
	assert.Empty(t, info.InactiveReminders)
	assert.Zero(t, info.ActiveRemindersCount)
	assert.Empty(t, info.OutstandingNotifications)
	assert.Equal(t, 1, fx.notifier.cancelAllCount())
	assert.Zero(t, fx.provider.activeSubscriptions())
}

func TestReminderEngine_OverlappingUpdatesTriggerOnce(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	fx.notifier.entered = make(chan struct{}, 2)
	fx.notifier.release = make(chan struct{})

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)

	inside := northOf(testLat, testLng, 50)

	first := make(chan struct{})
	go func() {
		defer close(first)
		fx.deliver(inside)
	}()

	// the first update is now blocked inside Display
	<-fx.notifier.entered

	second := make(chan struct{})
	go func() {
		defer close(second)
		fx.deliver(inside)
	}()

	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("overlapping update evaluated an already matched reminder")
	}

	close(fx.notifier.release)
	<-first

	assert.Equal(t, 1, fx.notifier.displayCount())
	assert.Equal(t, entity.ReminderStatusSent, fx.reminder(t, "r1").Status)
}

func TestReminderEngine_ConcurrentUpdatesTriggerOnce(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fx.deliver(northOf(testLat, testLng, float64(i)))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, fx.notifier.displayCount())
	assert.Equal(t, entity.ReminderStatusSent, fx.reminder(t, "r1").Status)
}

func TestReminderEngine_TransitionsAreIdempotent(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	require.NoError(t, fx.engine.Stop(ctx))
	assert.Zero(t, fx.notifier.cancelAllCount())

	require.NoError(t, fx.engine.Start(ctx))
	require.NoError(t, fx.engine.Start(ctx))
	assert.Equal(t, 1, fx.provider.subscribed)
	assert.Equal(t, entity.ServiceStatusRunning, fx.engine.ServiceInfo(ctx).Status)

	require.NoError(t, fx.engine.Pause(ctx))
	require.NoError(t, fx.engine.Pause(ctx))
	require.NoError(t, fx.engine.Resume(ctx))
	require.NoError(t, fx.engine.Resume(ctx))

	require.NoError(t, fx.engine.Stop(ctx))
	require.NoError(t, fx.engine.Stop(ctx))
	assert.Equal(t, 1, fx.notifier.cancelAllCount())
	assert.Equal(t, entity.ServiceStatusStopped, fx.engine.ServiceInfo(ctx).Status)

	assert.Equal(t, []entity.LifecycleEventKind{
		entity.EventServiceStart,
		entity.EventServicePause,
		entity.EventServiceResume,
		entity.EventServiceStop,
	}, drainEvents(fx.engine))
}

func TestReminderEngine_PauseWhileStoppedIsNoop(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	require.NoError(t, fx.engine.Pause(ctx))
	require.NoError(t, fx.engine.Resume(ctx))

	assert.Equal(t, entity.ServiceStatusStopped, fx.engine.ServiceInfo(ctx).Status)
	assert.Empty(t, drainEvents(fx.engine))
}

func TestReminderEngine_ActivateRearmsSentReminder(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)

	inside := northOf(testLat, testLng, 80)
	fx.deliver(inside)
	require.Equal(t, entity.ReminderStatusSent, fx.reminder(t, "r1").Status)

	require.NoError(t, fx.engine.ActivateReminder(ctx, "r1"))

	reminder := fx.reminder(t, "r1")
	assert.Equal(t, entity.ReminderStatusPending, reminder.Status)
	assert.True(t, reminder.IsActive)

	fx.deliver(inside)
	assert.Equal(t, 2, fx.notifier.displayCount())
	assert.Equal(t, entity.ReminderStatusSent, fx.reminder(t, "r1").Status)
}

func TestReminderEngine_StartDeniedPermission(t *testing.T) {
	tests := []struct {
		name       string
		foreground bool
		background bool
	}{
		{name: "foreground denied", foreground: false, background: true},
		{name: "background denied", foreground: true, background: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestEngine(t)
			ctx := context.Background()
			fx.provider.setPermissions(tt.foreground, tt.background)

			err := fx.engine.Start(ctx)
			require.ErrorIs(t, err, domainerrors.ErrLocationPermissionDenied)

			assert.Equal(t, entity.ServiceStatusStopped, fx.engine.ServiceInfo(ctx).Status)
			assert.Zero(t, fx.provider.subscribed)
			assert.Empty(t, drainEvents(fx.engine))
		})
	}
}

func TestReminderEngine_AddReminderKeepsReminderWhenStartFails(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()
	fx.provider.setPermissions(false, false)

	added, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.ErrorIs(t, err, domainerrors.ErrLocationPermissionDenied)
	assert.Equal(t, "r1", added.ID)

	info := fx.engine.ServiceInfo(ctx)
	assert.Equal(t, entity.ServiceStatusStopped, info.Status)
	assert.Len(t, info.ActiveReminders, 1)

	fx.provider.setPermissions(true, true)
	require.NoError(t, fx.engine.Start(ctx))
	assert.Equal(t, entity.ServiceStatusRunning, fx.engine.ServiceInfo(ctx).Status)
}

func TestReminderEngine_SubscribeFailure(t *testing.T) {
	provider := mockSvc.NewMockLocationProvider(t)
	cfg := newTestConfig()
	ctx := context.Background()

	provider.EXPECT().RequestForegroundPermission(ctx).Return(true, nil).Once()
	provider.EXPECT().RequestBackgroundPermission(ctx).Return(true, nil).Once()
	provider.EXPECT().
		Subscribe(ctx, service.SubscribeConfig{
			Interval:     cfg.Geofence.UpdateInterval,
			MinDistance:  cfg.Geofence.MinDistanceMeters,
			HighAccuracy: cfg.Geofence.HighAccuracy,
		}).
		Return(nil, errors.New("location services disabled")).
		Once()

	engine := newReminderEngine(ReminderEngineParams{
		Config:   cfg,
		Logger:   newDiscardLogger(),
		Provider: provider,
		Notifier: &fakeNotifier{},
	})

	err := engine.Start(ctx)
	require.ErrorIs(t, err, domainerrors.ErrLocationSubscribeFailed)

	info := engine.ServiceInfo(ctx)
	assert.Equal(t, entity.ServiceStatusStopped, info.Status)
	assert.False(t, info.Tracking)
	assert.Empty(t, drainEvents(engine))
}

func TestReminderEngine_ResumeStopsWhenPermissionRevoked(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)
	require.NoError(t, fx.engine.Pause(ctx))

	fx.provider.setPermissions(true, false)

	err = fx.engine.Resume(ctx)
	require.ErrorIs(t, err, domainerrors.ErrLocationPermissionDenied)

	info := fx.engine.ServiceInfo(ctx)
	assert.Equal(t, entity.ServiceStatusStopped, info.Status)
	assert.Len(t, info.ActiveReminders, 1)
	assert.Zero(t, fx.provider.activeSubscriptions())
}

func TestReminderEngine_DisplayFailureKeepsReminderPending(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)

	fx.notifier.setDisplayErr(errors.New("notifications disabled"))
	inside := northOf(testLat, testLng, 80)
	fx.deliver(inside)

	reminder := fx.reminder(t, "r1")
	assert.Equal(t, entity.ReminderStatusPending, reminder.Status)
	assert.True(t, reminder.IsActive)
	assert.Empty(t, fx.engine.ServiceInfo(ctx).OutstandingNotifications)

	fx.notifier.setDisplayErr(nil)
	fx.deliver(inside)

	assert.Equal(t, entity.ReminderStatusSent, fx.reminder(t, "r1").Status)
	assert.Equal(t, 1, fx.notifier.displayCount())
}

func TestReminderEngine_DropsLateUpdates(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)

	fx.engine.mu.Lock()
	staleGeneration := fx.engine.generation
	fx.engine.mu.Unlock()

	require.NoError(t, fx.engine.Stop(ctx))

	fx.engine.handleLocationUpdate(ctx, staleGeneration, service.LocationUpdate{Position: northOf(testLat, testLng, 10)})

	assert.Zero(t, fx.notifier.displayCount())
	assert.Equal(t, entity.ReminderStatusPending, fx.reminder(t, "r1").Status)
	assert.Nil(t, fx.engine.ServiceInfo(ctx).LastLocation)
}

func TestReminderEngine_FeedErrorLeavesStateUntouched(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)

	fx.engine.mu.Lock()
	generation := fx.engine.generation
	fx.engine.mu.Unlock()

	fx.engine.handleLocationUpdate(ctx, generation, service.LocationUpdate{Err: errors.New("gps unavailable")})

	info := fx.engine.ServiceInfo(ctx)
	assert.Equal(t, entity.ServiceStatusRunning, info.Status)
	assert.Nil(t, info.LastLocation)
	assert.Equal(t, 1, info.ActiveRemindersCount)
}

func TestReminderEngine_ClaimDroppedWhenReminderRemovedMidDisplay(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	fx.notifier.entered = make(chan struct{}, 1)
	fx.notifier.release = make(chan struct{})

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		fx.deliver(northOf(testLat, testLng, 10))
	}()
	<-fx.notifier.entered

	require.NoError(t, fx.engine.ForceStop(ctx))
	close(fx.notifier.release)
	<-done

	_, err = fx.engine.GetReminder(ctx, "r1")
	require.ErrorIs(t, err, domainerrors.ErrReminderNotFound)
	assert.Zero(t, fx.engine.ServiceInfo(ctx).ActiveRemindersCount)
}

func TestReminderEngine_DeactivateAndExpire(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)
	_, err = fx.engine.AddReminder(ctx, reminderSpec("r2", 100))
	require.NoError(t, err)

	require.NoError(t, fx.engine.DeactivateReminder(ctx, "r1"))
	require.NoError(t, fx.engine.ExpireReminder(ctx, "r2"))

	r1 := fx.reminder(t, "r1")
	assert.False(t, r1.IsActive)
	assert.Equal(t, entity.ReminderStatusPending, r1.Status)

	r2 := fx.reminder(t, "r2")
	assert.False(t, r2.IsActive)
	assert.Equal(t, entity.ReminderStatusExpired, r2.Status)

	fx.deliver(northOf(testLat, testLng, 10))
	assert.Zero(t, fx.notifier.displayCount())
	assert.Equal(t, entity.ServiceStatusRunning, fx.engine.ServiceInfo(ctx).Status)
}

func TestReminderEngine_UnknownReminder(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{name: "activate", call: func() error { return fx.engine.ActivateReminder(ctx, "missing") }},
		{name: "deactivate", call: func() error { return fx.engine.DeactivateReminder(ctx, "missing") }},
		{name: "expire", call: func() error { return fx.engine.ExpireReminder(ctx, "missing") }},
		{name: "get", call: func() error {
			_, err := fx.engine.GetReminder(ctx, "missing")

			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), domainerrors.ErrReminderNotFound)
		})
	}
}

func TestReminderEngine_CallbacksLastRegistrationWins(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	var stale atomic.Int32
	fx.engine.RegisterCallbacks(usecase.Callbacks{
		OnServiceStart: func() { stale.Add(1) },
	})

	var (
		starts, pauses, resumes, stops atomic.Int32
		received                       []entity.LocationReminder
		notificationIDs                []string
	)
	fx.engine.RegisterCallbacks(usecase.Callbacks{
		OnServiceStart:  func() { starts.Add(1) },
		OnServiceStop:   func() { stops.Add(1) },
		OnServicePause:  func() { pauses.Add(1) },
		OnServiceResume: func() { resumes.Add(1) },
		OnNotificationReceived: func(reminder entity.LocationReminder, notificationID string) {
			received = append(received, reminder)
			notificationIDs = append(notificationIDs, notificationID)
		},
	})

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)
	require.NoError(t, fx.engine.Pause(ctx))
	require.NoError(t, fx.engine.Resume(ctx))
	fx.deliver(northOf(testLat, testLng, 10))
	require.NoError(t, fx.engine.Stop(ctx))

	assert.Zero(t, stale.Load())
	assert.Equal(t, int32(1), starts.Load())
	assert.Equal(t, int32(1), pauses.Load())
	assert.Equal(t, int32(1), resumes.Load())
	assert.Equal(t, int32(1), stops.Load())
	require.Len(t, received, 1)
	assert.Equal(t, "r1", received[0].ID)
	assert.Equal(t, entity.ReminderStatusSent, received[0].Status)
	assert.Equal(t, []string{"generated-1"}, notificationIDs)

	fx.engine.UnregisterCallbacks()
	require.NoError(t, fx.engine.Start(ctx))
	assert.Equal(t, int32(1), starts.Load())
}

func TestReminderEngine_CallbackMayCallBackIntoEngine(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	var observed entity.ServiceStatus
	fx.engine.RegisterCallbacks(usecase.Callbacks{
		OnServiceStart: func() {
			observed = fx.engine.ServiceInfo(ctx).Status
			_ = fx.engine.Pause(ctx)
		},
	})

	require.NoError(t, fx.engine.Start(ctx))

	assert.Equal(t, entity.ServiceStatusRunning, observed)
	assert.Equal(t, entity.ServiceStatusPaused, fx.engine.ServiceInfo(ctx).Status)
}

func TestReminderEngine_PanickingCallbackIsContained(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	fx.engine.RegisterCallbacks(usecase.Callbacks{
		OnServiceStart: func() { panic("observer bug") },
	})

	require.NoError(t, fx.engine.Start(ctx))
	assert.Equal(t, []entity.LifecycleEventKind{entity.EventServiceStart}, drainEvents(fx.engine))
}

func TestReminderEngine_EventsDropWhenBufferFull(t *testing.T) {
	cfg := newTestConfig()
	cfg.Geofence.EventBuffer = 1

	engine := newReminderEngine(ReminderEngineParams{
		Config:   cfg,
		Logger:   newDiscardLogger(),
		Provider: newFakeProvider(),
		Notifier: &fakeNotifier{},
	})
	t.Cleanup(engine.EmergencyStop)
	ctx := context.Background()

	require.NoError(t, engine.Start(ctx))
	require.NoError(t, engine.Pause(ctx))
	require.NoError(t, engine.Stop(ctx))

	assert.Equal(t, []entity.LifecycleEventKind{entity.EventServiceStart}, drainEvents(engine))
}

func TestReminderEngine_EmergencyStopResetsWithoutSideEffects(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	var stops atomic.Int32
	fx.engine.RegisterCallbacks(usecase.Callbacks{OnServiceStop: func() { stops.Add(1) }})

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)
	_, err = fx.engine.AddReminder(ctx, reminderSpec("r2", 500))
	require.NoError(t, err)
	fx.deliver(northOf(testLat, testLng, 10))

	fx.engine.EmergencyStop()

	info := fx.engine.ServiceInfo(ctx)
	assert.Equal(t, entity.ServiceStatusStopped, info.Status)
	assert.False(t, info.Tracking)
	assert.Empty(t, info.ActiveReminders)
	assert.Empty(t, info.InactiveReminders)
	assert.Nil(t, info.LastLocation)
	assert.Empty(t, info.OutstandingNotifications)
	assert.Zero(t, fx.notifier.cancelAllCount())
	assert.Zero(t, fx.provider.activeSubscriptions())
	assert.Zero(t, stops.Load())

	assert.NotPanics(t, fx.engine.EmergencyStop)
}

func TestReminderEngine_SeedsLastLocationOnStart(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	current := northOf(testLat, testLng, 1000)
	fx.provider.current = &current

	require.NoError(t, fx.engine.Start(ctx))

	info := fx.engine.ServiceInfo(ctx)
	require.NotNil(t, info.LastLocation)
	assert.Equal(t, current, *info.LastLocation)
}

func TestReminderEngine_ConsumesProviderSubscription(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)

	fx.provider.push(service.LocationUpdate{Position: northOf(testLat, testLng, 60)})

	require.Eventually(t, func() bool {
		return fx.reminder(t, "r1").Status == entity.ReminderStatusSent
	}, 2*time.Second, 10*time.Millisecond)

	fx.engine.mu.Lock()
	feed := fx.engine.feed
	fx.engine.mu.Unlock()
	require.NotNil(t, feed)

	require.NoError(t, fx.engine.Stop(ctx))

	select {
	case <-feed.stopped():
	case <-time.After(2 * time.Second):
		t.Fatal("feed consumer did not exit after stop")
	}
}

func TestReminderEngine_PersistsStatusAndPublishesTrigger(t *testing.T) {
	statusRepo := mockRepo.NewMockStatusRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	ctx := context.Background()

	statusRepo.EXPECT().
		PersistStatus(mock.Anything, "r1", entity.ReminderStatusPending).
		Return(nil).
		Once()
	statusRepo.EXPECT().
		PersistStatus(mock.Anything, "r1", entity.ReminderStatusSent).
		Return(errors.New("database unavailable")).
		Once()
	publisher.EXPECT().
		PublishTriggerEvent(mock.Anything, mock.MatchedBy(func(event *service.TriggerEvent) bool {
			return event.ReminderID == "r1" &&
				event.NotificationID != "" &&
				event.Payload["channel"] == "sms"
		})).
		Return(nil).
		Once()

	engine := newReminderEngine(ReminderEngineParams{
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
		Provider:   newFakeProvider(),
		Notifier:   &fakeNotifier{},
		StatusRepo: statusRepo,
		Publisher:  publisher,
	})

	_, err := engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)

	engine.mu.Lock()
	generation := engine.generation
	engine.mu.Unlock()
	engine.handleLocationUpdate(ctx, generation, service.LocationUpdate{Position: northOf(testLat, testLng, 10)})

	require.NoError(t, engine.Shutdown(ctx))

	reminder, err := engine.GetReminder(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReminderStatusSent, reminder.Status)
	assert.Equal(t, entity.ServiceStatusStopped, engine.ServiceInfo(ctx).Status)
}

func TestReminderEngine_PersistedStatusFollowsEngineOrder(t *testing.T) {
	statusRepo := newRecordingStatusRepo(map[entity.ReminderStatus]time.Duration{
		entity.ReminderStatusPending: 100 * time.Millisecond,
	})
	fx := createTestEngineWithStatusRepo(t, statusRepo)
	ctx := context.Background()

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)

	fx.deliver(northOf(testLat, testLng, 10))
	require.Equal(t, entity.ReminderStatusSent, fx.reminder(t, "r1").Status)

	require.NoError(t, fx.engine.Shutdown(ctx))

	assert.Equal(t, []entity.ReminderStatus{
		entity.ReminderStatusPending,
		entity.ReminderStatusSent,
	}, statusRepo.written())

	persisted, err := statusRepo.FindStatus(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReminderStatusSent, persisted)
}

func TestReminderEngine_ActivateMidDisplayKeepsReminderPending(t *testing.T) {
	statusRepo := newRecordingStatusRepo(nil)
	fx := createTestEngineWithStatusRepo(t, statusRepo)
	ctx := context.Background()

	fx.notifier.entered = make(chan struct{}, 1)
	fx.notifier.release = make(chan struct{})

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		fx.deliver(northOf(testLat, testLng, 10))
	}()
	<-fx.notifier.entered

	require.NoError(t, fx.engine.ActivateReminder(ctx, "r1"))
	close(fx.notifier.release)
	<-done

	reminder := fx.reminder(t, "r1")
	assert.Equal(t, entity.ReminderStatusPending, reminder.Status)
	assert.True(t, reminder.IsActive)
	assert.Len(t, fx.engine.ServiceInfo(ctx).OutstandingNotifications, 1)

	require.NoError(t, fx.engine.Shutdown(ctx))

	persisted, err := statusRepo.FindStatus(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReminderStatusPending, persisted)
	assert.NotContains(t, statusRepo.written(), entity.ReminderStatusSent)
}

func TestReminderEngine_DisplayFinishingAfterStopIsCancelled(t *testing.T) {
	statusRepo := newRecordingStatusRepo(nil)
	fx := createTestEngineWithStatusRepo(t, statusRepo)
	ctx := context.Background()

	fx.notifier.entered = make(chan struct{}, 1)
	fx.notifier.release = make(chan struct{})

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		fx.deliver(northOf(testLat, testLng, 10))
	}()
	<-fx.notifier.entered

	require.NoError(t, fx.engine.Stop(ctx))
	require.Equal(t, 1, fx.notifier.cancelAllCount())

	close(fx.notifier.release)
	<-done

	info := fx.engine.ServiceInfo(ctx)
	assert.Equal(t, entity.ServiceStatusStopped, info.Status)
	assert.Empty(t, info.OutstandingNotifications)
	assert.Equal(t, entity.ReminderStatusSent, fx.reminder(t, "r1").Status)

	require.Equal(t, 1, fx.notifier.displayCount())
	assert.Equal(t, []string{fx.notifier.displayed[0].ID}, fx.notifier.cancelledIDs())

	require.NoError(t, fx.engine.Shutdown(ctx))

	persisted, err := statusRepo.FindStatus(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReminderStatusSent, persisted)
}

func TestReminderEngine_RemovingLastActiveReminderStops(t *testing.T) {
	fx := createTestEngine(t)
	ctx := context.Background()

	_, err := fx.engine.AddReminder(ctx, reminderSpec("r1", 100))
	require.NoError(t, err)
	_, err = fx.engine.AddReminder(ctx, entity.ReminderSpec{
		ID:        "r2",
		Latitude:  testLat + 1,
		Longitude: testLng,
		Radius:    100,
		Title:     "Post office",
	})
	require.NoError(t, err)

	fx.deliver(northOf(testLat, testLng, 10))
	require.Equal(t, entity.ReminderStatusSent, fx.reminder(t, "r1").Status)
	require.Equal(t, entity.ServiceStatusRunning, fx.engine.ServiceInfo(ctx).Status)

	require.NoError(t, fx.engine.RemoveReminder(ctx, "r2"))

	info := fx.engine.ServiceInfo(ctx)
	assert.Equal(t, entity.ServiceStatusStopped, info.Status)
	assert.Zero(t, fx.provider.activeSubscriptions())
	require.Len(t, info.InactiveReminders, 1)
	assert.Equal(t, "r1", info.InactiveReminders[0].ID)
}
