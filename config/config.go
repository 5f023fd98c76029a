package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	defaultUpdateInterval    = 10 * time.Second
	defaultMinDistanceMeters = 50.0
	defaultEventBuffer       = 64
	defaultUpdateBuffer      = 16
	defaultChannelID         = "location-reminders"
	defaultChannelName       = "Location reminders"
	defaultChannelImportance = "high"
	defaultDeviceTokenTTL    = 30 * 24 * time.Hour
	defaultMaxRequestBody    = "1M"
	defaultSlowQuery         = 200 * time.Millisecond
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// MaxRequestBodySize uses echo's BodyLimit format, e.g. "1M"
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Postgres is optional; without it reminder statuses are kept in memory.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	StatusStore *StatusStoreConfig `json:"statusStore" yaml:"statusStore"`

	Geofence *GeofenceConfig `json:"geofence" yaml:"geofence"`

	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for trigger event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GeofenceConfig tunes location subscription and the engine's internal queues.
type GeofenceConfig struct {
	// How often the device should report its position
	UpdateInterval time.Duration `json:"updateInterval" yaml:"updateInterval"`

	// Minimum movement in meters before the device reports a new position
	MinDistanceMeters float64 `json:"minDistanceMeters" yaml:"minDistanceMeters"`

	HighAccuracy bool `json:"highAccuracy" yaml:"highAccuracy"`

	// Capacity of the lifecycle event channel exposed to observers
	EventBuffer int `json:"eventBuffer" yaml:"eventBuffer"`

	// Capacity of each location subscription channel
	UpdateBuffer int `json:"updateBuffer" yaml:"updateBuffer"`

	// Initial permission state of the push location provider, until the device reports otherwise
	GrantForeground bool `json:"grantForeground" yaml:"grantForeground"`
	GrantBackground bool `json:"grantBackground" yaml:"grantBackground"`
}

// NotificationConfig describes the notification channel reminders are displayed on.
type NotificationConfig struct {
	ChannelID   string `json:"channelId" yaml:"channelId"`
	ChannelName string `json:"channelName" yaml:"channelName"`
	Importance  string `json:"importance" yaml:"importance"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// FCM registration token of the device that receives reminder notifications
	DeviceToken string `json:"deviceToken" yaml:"deviceToken"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// StatusStoreConfig tunes query logging of the reminder status store.
type StatusStoreConfig struct {
	// Queries slower than this are logged as warnings; zero disables slow query logging
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// Log lookups of reminders that have no persisted status yet
	LogNotFound bool `json:"logNotFound" yaml:"logNotFound"`
}

// AuthConfig holds the device token secret. An empty secret disables authentication.
type AuthConfig struct {
	DeviceSecret string        `json:"deviceSecret" yaml:"deviceSecret"`
	TokenTTL     time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env vars override YAML. GEOFENCE_MINDISTANCEMETERS -> geofence.minDistanceMeters
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills the engine sections that were left out of the YAML file.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBody
	}

	if c.Geofence == nil {
		c.Geofence = &GeofenceConfig{GrantForeground: true, GrantBackground: true}
	}
	if c.Geofence.UpdateInterval <= 0 {
		c.Geofence.UpdateInterval = defaultUpdateInterval
	}
	if c.Geofence.MinDistanceMeters <= 0 {
		c.Geofence.MinDistanceMeters = defaultMinDistanceMeters
	}
	if c.Geofence.EventBuffer <= 0 {
		c.Geofence.EventBuffer = defaultEventBuffer
	}
	if c.Geofence.UpdateBuffer <= 0 {
		c.Geofence.UpdateBuffer = defaultUpdateBuffer
	}

	if c.Notification == nil {
		c.Notification = &NotificationConfig{}
	}
	if strings.TrimSpace(c.Notification.ChannelID) == "" {
		c.Notification.ChannelID = defaultChannelID
	}
	if strings.TrimSpace(c.Notification.ChannelName) == "" {
		c.Notification.ChannelName = defaultChannelName
	}
	if strings.TrimSpace(c.Notification.Importance) == "" {
		c.Notification.Importance = defaultChannelImportance
	}

	if c.StatusStore == nil {
		c.StatusStore = &StatusStoreConfig{SlowQueryThreshold: defaultSlowQuery}
	}
	if c.StatusStore.SlowQueryThreshold < 0 {
		c.StatusStore.SlowQueryThreshold = defaultSlowQuery
	}

	if c.Auth != nil && c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = defaultDeviceTokenTTL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		matched, next, ok := findExistingSegment(current, segment)
		if !ok {
			canonical = append(canonical, segment)
			current = nil

			continue
		}

		canonical = append(canonical, matched)
		current = next
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			normalized.WriteRune(unicode.ToLower(r))
		}
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
