package notification

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"georemind/internal/domain/constants"
	"georemind/internal/domain/service"
	"georemind/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

const (
	actionCancel    = "cancel"
	actionCancelAll = "cancel_all"
)

// messageSender is the subset of the FCM client the notifier needs.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// firebaseNotifier displays reminder notifications on the registered device through FCM.
// Cancellation is delivered as a data message the device app acts on.
type firebaseNotifier struct {
	client      messageSender
	deviceToken string
	logger      *slog.Logger

	mu       sync.RWMutex
	channels map[string]service.ChannelConfig
}

// NewFirebaseNotifier creates a new Firebase notifier for a single device token
func NewFirebaseNotifier(ctx context.Context, credentialsPath, deviceToken string, logger *slog.Logger) (service.Notifier, error) {
	if deviceToken == "" {
		return nil, errors.New("firebase device token is required")
	}

	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseNotifier(client, deviceToken, logger), nil
}

func newFirebaseNotifier(client messageSender, deviceToken string, logger *slog.Logger) *firebaseNotifier {
	return &firebaseNotifier{
		client:      client,
		deviceToken: deviceToken,
		logger:      logger,
		channels:    make(map[string]service.ChannelConfig),
	}
}

// CreateChannel registers the Android channel notifications are posted to.
// The channel itself is created by the device app on first use.
func (n *firebaseNotifier) CreateChannel(_ context.Context, cfg service.ChannelConfig) error {
	if cfg.ID == "" {
		return errors.New("notification channel id is required")
	}

	n.mu.Lock()
	n.channels[cfg.ID] = cfg
	n.mu.Unlock()

	return nil
}

// Display sends the notification. The notification id doubles as the Android
// tag so a later cancel message can target it.
func (n *firebaseNotifier) Display(ctx context.Context, spec service.NotificationSpec) (string, error) {
	n.mu.RLock()
	channel, ok := n.channels[spec.ChannelID]
	n.mu.RUnlock()
	if !ok {
		return "", errors.Errorf("notification channel %q has not been created", spec.ChannelID)
	}

	data := maps.Clone(spec.Data)
	if data == nil {
		data = make(map[string]string)
	}
	data[constants.DataKeyNotifyID] = spec.ID

	priority := "normal"
	if channel.Importance == service.ChannelImportanceHigh {
		priority = "high"
	}

	message := &messaging.Message{
		Token: n.deviceToken,
		Notification: &messaging.Notification{
			Title: spec.Title,
			Body:  spec.Body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: priority,
			Notification: &messaging.AndroidNotification{
				ChannelID: channel.ID,
				Tag:       spec.ID,
			},
		},
	}

	messageID, err := n.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return "", errors.Wrap(err, "device token rejected")
		}

		return "", errors.Wrap(err, "failed to send notification")
	}

	n.logger.Debug("[Firebase] Notification sent",
		slog.String("notification_id", spec.ID),
		slog.String("message_id", messageID),
	)

	return spec.ID, nil
}

func (n *firebaseNotifier) Cancel(ctx context.Context, notificationID string) error {
	return n.sendAction(ctx, map[string]string{
		constants.DataKeyAction:   actionCancel,
		constants.DataKeyNotifyID: notificationID,
	})
}

func (n *firebaseNotifier) CancelAll(ctx context.Context) error {
	return n.sendAction(ctx, map[string]string{
		constants.DataKeyAction: actionCancelAll,
	})
}

func (n *firebaseNotifier) sendAction(ctx context.Context, data map[string]string) error {
	message := &messaging.Message{
		Token: n.deviceToken,
		Data:  data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	if _, err := n.client.Send(ctx, message); err != nil {
		return errors.Wrapf(err, "failed to send %s action", data[constants.DataKeyAction])
	}

	return nil
}
