package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Notification data keys shared with the device app
const (
	DataKeyReminderID  = "reminder_id"
	DataKeyLatitude    = "latitude"
	DataKeyLongitude   = "longitude"
	DataKeyRadius      = "radius"
	DataKeyTriggeredAt = "triggered_at"
	DataKeyPayload     = "payload"
	DataKeyAction      = "action"
	DataKeyNotifyID    = "notification_id"
)
