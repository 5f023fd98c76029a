package impl

import (
	"context"
	"io"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"georemind/config"
	"georemind/internal/domain/entity"
	"georemind/internal/domain/repository"
	"georemind/internal/domain/service"
	"georemind/internal/errors"
	"georemind/internal/geo"
)

const (
	testLat = 37.78825
	testLng = -122.4324
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

// northOf returns a position exactly meters north of the point along its meridian.
func northOf(lat, lng, meters float64) entity.Position {
	return entity.Position{
		Latitude:  lat + meters/geo.EarthRadiusMeters*180/math.Pi,
		Longitude: lng,
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func reminderSpec(id string, radius float64) entity.ReminderSpec {
	return entity.ReminderSpec{
		ID:        id,
		Latitude:  testLat,
		Longitude: testLng,
		Radius:    radius,
		Title:     "Buy milk",
		Message:   "You are near the store",
		Payload:   map[string]any{"channel": "sms"},
	}
}

// fakeProvider is a controllable in-memory LocationProvider.
type fakeProvider struct {
	mu           sync.Mutex
	foreground   bool
	background   bool
	current      *entity.Position
	subs         map[string]chan service.LocationUpdate
	subscribed   int
	unsubscribed int
	nextID       int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		foreground: true,
		background: true,
		subs:       make(map[string]chan service.LocationUpdate),
	}
}

func (p *fakeProvider) RequestForegroundPermission(context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.foreground, nil
}

func (p *fakeProvider) RequestBackgroundPermission(context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.background, nil
}

func (p *fakeProvider) Subscribe(context.Context, service.SubscribeConfig) (*service.Subscription, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	p.subscribed++
	id := "sub-" + strconv.Itoa(p.nextID)
	ch := make(chan service.LocationUpdate, 16)
	p.subs[id] = ch

	return &service.Subscription{ID: id, Updates: ch}, nil
}

func (p *fakeProvider) Unsubscribe(_ context.Context, sub *service.Subscription) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.unsubscribed++
	ch, ok := p.subs[sub.ID]
	if !ok {
		return errors.Errorf("unknown subscription %s", sub.ID)
	}
	delete(p.subs, sub.ID)
	close(ch)

	return nil
}

func (p *fakeProvider) CurrentPosition(context.Context) (*entity.Position, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.current, nil
}

func (p *fakeProvider) setPermissions(foreground, background bool) {
	p.mu.Lock()
	p.foreground, p.background = foreground, background
	p.mu.Unlock()
}

func (p *fakeProvider) push(update service.LocationUpdate) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, ch := range p.subs {
		ch <- update
	}
}

func (p *fakeProvider) activeSubscriptions() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.subs)
}

// fakeNotifier records displayed notifications. Display can be made to fail or block.
type fakeNotifier struct {
	mu             sync.Mutex
	displayed      []service.NotificationSpec
	cancelled      []string
	cancelAllCalls int
	channels       int
	displayErr     error

	// when set, Display signals entered and waits for release
	entered chan struct{}
	release chan struct{}
}

func (n *fakeNotifier) CreateChannel(context.Context, service.ChannelConfig) error {
	n.mu.Lock()
	n.channels++
	n.mu.Unlock()

	return nil
}

func (n *fakeNotifier) Display(_ context.Context, spec service.NotificationSpec) (string, error) {
	if n.entered != nil {
		n.entered <- struct{}{}
		<-n.release
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.displayErr != nil {
		return "", n.displayErr
	}
	n.displayed = append(n.displayed, spec)

	return spec.ID, nil
}

func (n *fakeNotifier) Cancel(_ context.Context, notificationID string) error {
	n.mu.Lock()
	n.cancelled = append(n.cancelled, notificationID)
	n.mu.Unlock()

	return nil
}

func (n *fakeNotifier) CancelAll(context.Context) error {
	n.mu.Lock()
	n.cancelAllCalls++
	n.mu.Unlock()

	return nil
}

func (n *fakeNotifier) setDisplayErr(err error) {
	n.mu.Lock()
	n.displayErr = err
	n.mu.Unlock()
}

func (n *fakeNotifier) displayCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.displayed)
}

func (n *fakeNotifier) cancelAllCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.cancelAllCalls
}

func (n *fakeNotifier) cancelledIDs() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return slices.Clone(n.cancelled)
}

// recordingStatusRepo keeps every persisted status in write order. Writes of a
// status listed in delays are held back for that long first.
type recordingStatusRepo struct {
	delays map[entity.ReminderStatus]time.Duration

	mu     sync.Mutex
	writes []entity.ReminderStatus
	latest map[string]entity.ReminderStatus
}

func newRecordingStatusRepo(delays map[entity.ReminderStatus]time.Duration) *recordingStatusRepo {
	return &recordingStatusRepo{
		delays: delays,
		latest: make(map[string]entity.ReminderStatus),
	}
}

func (r *recordingStatusRepo) PersistStatus(_ context.Context, reminderID string, status entity.ReminderStatus) error {
	time.Sleep(r.delays[status])

	r.mu.Lock()
	defer r.mu.Unlock()

	r.writes = append(r.writes, status)
	r.latest[reminderID] = status

	return nil
}

func (r *recordingStatusRepo) FindStatus(_ context.Context, reminderID string) (entity.ReminderStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	status, ok := r.latest[reminderID]
	if !ok {
		return "", repository.ErrStatusNotFound
	}

	return status, nil
}

func (r *recordingStatusRepo) written() []entity.ReminderStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.writes)
}

// engineFixtures holds the engine under test and its collaborators.
type engineFixtures struct {
	engine   *reminderEngine
	provider *fakeProvider
	notifier *fakeNotifier
}

func createTestEngine(t *testing.T) engineFixtures {
	t.Helper()

	return createTestEngineWithStatusRepo(t, nil)
}

func createTestEngineWithStatusRepo(t *testing.T, statusRepo repository.StatusRepository) engineFixtures {
	t.Helper()

	provider := newFakeProvider()
	notifier := &fakeNotifier{}
	engine := newReminderEngine(ReminderEngineParams{
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
		Provider:   provider,
		Notifier:   notifier,
		StatusRepo: statusRepo,
	})

	var seq atomic.Int64
	engine.newID = func() string {
		return "generated-" + strconv.FormatInt(seq.Add(1), 10)
	}
	engine.dispatcher.newID = engine.newID

	t.Cleanup(engine.EmergencyStop)

	return engineFixtures{engine: engine, provider: provider, notifier: notifier}
}

// deliver feeds a position to the engine as the current subscription would.
func (fx engineFixtures) deliver(position entity.Position) {
	fx.engine.mu.Lock()
	generation := fx.engine.generation
	fx.engine.mu.Unlock()

	fx.engine.handleLocationUpdate(context.Background(), generation, service.LocationUpdate{Position: position})
}

func (fx engineFixtures) reminder(t *testing.T, id string) entity.LocationReminder {
	t.Helper()

	reminder, err := fx.engine.GetReminder(context.Background(), id)
	if err != nil {
		t.Fatalf("GetReminder(%q): %v", id, err)
	}

	return reminder
}
