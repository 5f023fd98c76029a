package impl

import (
	"log/slog"
	"sync"

	"georemind/internal/domain/entity"
	"georemind/internal/usecase"
)

// lifecycleObservers fans lifecycle events out to the registered callback set
// and to a bounded event channel. Emitting never blocks the engine.
type lifecycleObservers struct {
	mu        sync.RWMutex
	callbacks usecase.Callbacks

	events chan entity.LifecycleEvent
	logger *slog.Logger
}

func newLifecycleObservers(buffer int, logger *slog.Logger) *lifecycleObservers {
	return &lifecycleObservers{
		events: make(chan entity.LifecycleEvent, buffer),
		logger: logger,
	}
}

func (o *lifecycleObservers) register(callbacks usecase.Callbacks) {
	o.mu.Lock()
	o.callbacks = callbacks
	o.mu.Unlock()
}

func (o *lifecycleObservers) unregister() {
	o.mu.Lock()
	o.callbacks = usecase.Callbacks{}
	o.mu.Unlock()
}

func (o *lifecycleObservers) stream() <-chan entity.LifecycleEvent {
	return o.events
}

// emit delivers events in order. Must be called without holding engine locks
// so callbacks may call back into the engine.
func (o *lifecycleObservers) emit(events ...entity.LifecycleEvent) {
	for _, event := range events {
		o.invokeCallback(event)
		o.publish(event)
	}
}

func (o *lifecycleObservers) invokeCallback(event entity.LifecycleEvent) {
	o.mu.RLock()
	callbacks := o.callbacks
	o.mu.RUnlock()

	var callback func()
	switch event.Kind {
	case entity.EventServiceStart:
		callback = callbacks.OnServiceStart
	case entity.EventServiceStop:
		callback = callbacks.OnServiceStop
	case entity.EventServicePause:
		callback = callbacks.OnServicePause
	case entity.EventServiceResume:
		callback = callbacks.OnServiceResume
	case entity.EventNotificationReceived:
		if callbacks.OnNotificationReceived != nil && event.Reminder != nil {
			reminder := event.Reminder.Clone()
			notificationID := event.NotificationID
			callback = func() { callbacks.OnNotificationReceived(reminder, notificationID) }
		}
	}
	if callback == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("[Engine] Lifecycle callback panicked",
				slog.String("event", string(event.Kind)),
				slog.Any("panic", r),
			)
		}
	}()

	callback()
}

func (o *lifecycleObservers) publish(event entity.LifecycleEvent) {
	select {
	case o.events <- event:
	default:
		o.logger.Warn("[Engine] Lifecycle event dropped, observer is not keeping up",
			slog.String("event", string(event.Kind)),
		)
	}
}
