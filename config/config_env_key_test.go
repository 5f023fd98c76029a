package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"geofence": map[string]any{
			"minDistanceMeters": 50,
			"updateInterval":    "10s",
		},
		"firebase": map[string]any{
			"deviceToken": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"auth": map[string]any{
			"deviceSecret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "GEOFENCE_MINDISTANCEMETERS", want: "geofence.minDistanceMeters"},
		{envKey: "GEOFENCE_UPDATEINTERVAL", want: "geofence.updateInterval"},
		{envKey: "FIREBASE_DEVICETOKEN", want: "firebase.deviceToken"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "AUTH_DEVICESECRET", want: "auth.deviceSecret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultUpdateInterval, cfg.Geofence.UpdateInterval)
	assert.InDelta(t, defaultMinDistanceMeters, cfg.Geofence.MinDistanceMeters, 0)
	assert.Equal(t, defaultEventBuffer, cfg.Geofence.EventBuffer)
	assert.Equal(t, defaultUpdateBuffer, cfg.Geofence.UpdateBuffer)
	assert.True(t, cfg.Geofence.GrantForeground)
	assert.True(t, cfg.Geofence.GrantBackground)
	assert.Equal(t, defaultChannelID, cfg.Notification.ChannelID)
	assert.Equal(t, defaultChannelImportance, cfg.Notification.Importance)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Geofence: &GeofenceConfig{
			UpdateInterval:    30 * time.Second,
			MinDistanceMeters: 5,
			EventBuffer:       2,
			UpdateBuffer:      1,
		},
		Notification: &NotificationConfig{ChannelID: "custom"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, 30*time.Second, cfg.Geofence.UpdateInterval)
	assert.InDelta(t, 5.0, cfg.Geofence.MinDistanceMeters, 0)
	assert.Equal(t, 2, cfg.Geofence.EventBuffer)
	assert.Equal(t, 1, cfg.Geofence.UpdateBuffer)
	assert.False(t, cfg.Geofence.GrantForeground)
	assert.Equal(t, "custom", cfg.Notification.ChannelID)
	assert.Equal(t, defaultChannelName, cfg.Notification.ChannelName)
}
