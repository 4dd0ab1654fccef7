package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Ingest configures the Pub/Sub push worker
	Ingest struct {
		Port int `json:"port" yaml:"port"`
	} `json:"ingest" yaml:"ingest"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Storage selects the durable store for tokens, jobs and receipts
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Queue configures the delivery queue
	Queue QueueConfig `json:"queue" yaml:"queue"`

	// Dispatch configures the worker pool and upstream calls
	Dispatch DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Retry configures the backoff policy
	Retry RetryConfig `json:"retry" yaml:"retry"`

	// Token configures the token store
	Token TokenConfig `json:"token" yaml:"token"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Notification holds payload defaults
	Notification NotificationConfig `json:"notification" yaml:"notification"`

	// Operator configures the operator API authentication
	Operator OperatorConfig `json:"operator" yaml:"operator"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines which durable store backs the repositories
type StorageConfig struct {
	// Driver is "postgres" or "bolt"
	Driver string `json:"driver" yaml:"driver"`

	// BoltPath is the database file for the bolt driver
	BoltPath string `json:"boltPath" yaml:"boltPath"`

	// Migrate applies the embedded SQL migrations on start-up (postgres driver)
	Migrate bool `json:"migrate" yaml:"migrate"`
}

// QueueConfig defines the delivery queue
type QueueConfig struct {
	// Driver is "memory" or "redis"
	Driver string `json:"driver" yaml:"driver"`

	// Capacity is the maximum number of queued jobs, 0 means unbounded
	Capacity int `json:"capacity" yaml:"capacity"`

	// FullPolicy is "reject" or "block"
	FullPolicy string `json:"fullPolicy" yaml:"fullPolicy"`

	// PollInterval is how often the redis driver checks for ready jobs
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`

	Redis RedisConfig `json:"redis" yaml:"redis"`
}

// RedisConfig defines the redis connection for the queue
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`

	// LeaseTTL is how long a consumer's in-flight jobs stay reserved without
	// a lease renewal before another worker pool reclaims them
	LeaseTTL time.Duration `json:"leaseTTL" yaml:"leaseTTL"`
}

// DispatchConfig defines the worker pool
type DispatchConfig struct {
	Workers           int           `json:"workers" yaml:"workers"`
	CallTimeout       time.Duration `json:"callTimeout" yaml:"callTimeout"`
	FanoutConcurrency int           `json:"fanoutConcurrency" yaml:"fanoutConcurrency"`
	ShutdownGrace     time.Duration `json:"shutdownGrace" yaml:"shutdownGrace"`
}

// RetryConfig defines the exponential backoff policy
type RetryConfig struct {
	Base         time.Duration `json:"base" yaml:"base"`
	Cap          time.Duration `json:"cap" yaml:"cap"`
	MaxAttempts  int           `json:"maxAttempts" yaml:"maxAttempts"`
	JitterFactor float64       `json:"jitterFactor" yaml:"jitterFactor"`
}

// TokenConfig defines token store behaviour
type TokenConfig struct {
	// StaleGrace keeps superseded tokens deliverable for in-flight jobs
	StaleGrace time.Duration `json:"staleGrace" yaml:"staleGrace"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// DryRun validates messages with FCM without delivering them
	DryRun bool `json:"dryRun" yaml:"dryRun"`
}

// NotificationConfig defines payload defaults applied before sending
type NotificationConfig struct {
	DefaultTitle     string `json:"defaultTitle" yaml:"defaultTitle"`
	DefaultBody      string `json:"defaultBody" yaml:"defaultBody"`
	AndroidChannelID string `json:"androidChannelId" yaml:"androidChannelId"`
}

// OperatorConfig defines operator API authentication
type OperatorConfig struct {
	// PasswordHash is a bcrypt hash of the operator password
	PasswordHash string        `json:"passwordHash" yaml:"passwordHash"`
	TokenSecret  string        `json:"tokenSecret" yaml:"tokenSecret"`
	TokenTTL     time.Duration `json:"tokenTTL" yaml:"tokenTTL"`

	// GoogleClientID enables operator sign-in with Google ID tokens
	GoogleClientID string `json:"googleClientId" yaml:"googleClientId"`
	// AllowedEmails lists the Google accounts allowed to operate the service
	AllowedEmails []string `json:"allowedEmails" yaml:"allowedEmails"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID receiving job events (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
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
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// RETRY_MAXATTEMPTS -> retry.maxAttempts
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
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
				mapstructure.StringToSliceHookFunc(","),
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

func New() (*Config, error) {
	// A missing .env is fine; containers inject env directly.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills zero values so a minimal config.yaml still runs.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "postgres"
	}
	if cfg.Storage.BoltPath == "" {
		cfg.Storage.BoltPath = "data/pushrelay.db"
	}
	if cfg.Queue.Driver == "" {
		cfg.Queue.Driver = "memory"
	}
	if cfg.Queue.FullPolicy == "" {
		cfg.Queue.FullPolicy = "reject"
	}
	if cfg.Queue.PollInterval <= 0 {
		cfg.Queue.PollInterval = 200 * time.Millisecond
	}
	if cfg.Queue.Redis.KeyPrefix == "" {
		cfg.Queue.Redis.KeyPrefix = "pushrelay"
	}
	if cfg.Queue.Redis.LeaseTTL <= 0 {
		cfg.Queue.Redis.LeaseTTL = 30 * time.Second
	}
	if cfg.Dispatch.Workers <= 0 {
		cfg.Dispatch.Workers = 8
	}
	if cfg.Dispatch.CallTimeout <= 0 {
		cfg.Dispatch.CallTimeout = 10 * time.Second
	}
	if cfg.Dispatch.FanoutConcurrency <= 0 {
		cfg.Dispatch.FanoutConcurrency = 16
	}
	if cfg.Dispatch.ShutdownGrace <= 0 {
		cfg.Dispatch.ShutdownGrace = 30 * time.Second
	}
	if cfg.Retry.Base <= 0 {
		cfg.Retry.Base = time.Second
	}
	if cfg.Retry.Cap <= 0 {
		cfg.Retry.Cap = 5 * time.Minute
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry.MaxAttempts = 8
	}
	if cfg.Retry.JitterFactor < 0 {
		cfg.Retry.JitterFactor = 0
	}
	if cfg.Token.StaleGrace <= 0 {
		cfg.Token.StaleGrace = time.Hour
	}
	if cfg.Operator.TokenTTL <= 0 {
		cfg.Operator.TokenTTL = 15 * time.Minute
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

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
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
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
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
