package main

import (
	"strings"
	"testing"
	"time"

	"pushrelay/config"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidConfig() *config.Config {
	cfg := &config.Config{Postgres: &postgres.DBConn{}}
	cfg.Storage.Driver = "postgres"
	cfg.Queue.Driver = "memory"
	cfg.Queue.FullPolicy = "reject"
	cfg.Retry.Base = time.Second
	cfg.Retry.Cap = time.Minute
	cfg.Operator.TokenSecret = "secret"
	cfg.Operator.PasswordHash = "$2a$10$hash"

	return cfg
}

func TestCheckConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *config.Config)
		want   []string
	}{
		{name: "valid", modify: func(*config.Config) {}},
		{
			name:   "postgres without section",
			modify: func(cfg *config.Config) { cfg.Postgres = nil },
			want:   []string{"postgres section is missing"},
		},
		{
			name:   "unknown storage",
			modify: func(cfg *config.Config) { cfg.Storage.Driver = "mysql" },
			want:   []string{`unknown storage.driver "mysql"`},
		},
		{
			name:   "redis without address",
			modify: func(cfg *config.Config) { cfg.Queue.Driver = "redis" },
			want:   []string{"queue.redis.addr is empty"},
		},
		{
			name:   "unknown full policy",
			modify: func(cfg *config.Config) { cfg.Queue.FullPolicy = "drop" },
			want:   []string{`unknown queue.fullPolicy "drop"`},
		},
		{
			name: "inverted retry bounds",
			modify: func(cfg *config.Config) {
				cfg.Retry.Cap = time.Millisecond
			},
			want: []string{"retry.cap is smaller than retry.base"},
		},
		{
			name: "operator not configured",
			modify: func(cfg *config.Config) {
				cfg.Operator.TokenSecret = ""
				cfg.Operator.PasswordHash = ""
			},
			want: []string{"operator.tokenSecret is empty", "operator.passwordHash is empty"},
		},
		{
			name:   "google sign-in without allowlist",
			modify: func(cfg *config.Config) { cfg.Operator.GoogleClientID = "client-123" },
			want:   []string{"operator.allowedEmails is empty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newValidConfig()
			tt.modify(cfg)

			problems := checkConfig(cfg)
			require.Len(t, problems, len(tt.want))
			for i, want := range tt.want {
				assert.Contains(t, problems[i], want)
			}
		})
	}
}

func TestGatewayName(t *testing.T) {
	assert.Equal(t, "log", gatewayName(&config.Config{}))
	assert.Equal(t, "log", gatewayName(&config.Config{Firebase: &config.FirebaseConfig{}}))
	assert.Equal(t, "fcm", gatewayName(&config.Config{Firebase: &config.FirebaseConfig{ProjectID: "demo"}}))
}

func TestReadPassword(t *testing.T) {
	password, err := readPassword(strings.NewReader("s3cret-pass\n"))
	require.NoError(t, err)
	assert.Equal(t, "s3cret-pass", password)

	_, err = readPassword(strings.NewReader("\n"))
	assert.Error(t, err)
}

func TestRunHash(t *testing.T) {
	hash, err := runHash("s3cret-pass", 4)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$04$"))

	_, err = runHash("short", 4)
	assert.Error(t, err)
}
