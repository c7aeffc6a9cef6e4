package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/home-ledger/internal/entity/ledger"
)

const minimalYAML = `
auth:
  email: owner@example.com
  password-hash: "$2a$10$abcdefghijklmnopqrstuv"
`

func Test_Parse_ShouldApplyDefaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Storage().Backend())
	assert.Equal(t, ":8080", cfg.HTTP().Addr())
	assert.Equal(t, 12*time.Hour, cfg.Auth().SessionTTL())
	assert.Equal(t, ledger.PaidToOptions, cfg.App().PaidToOptions())
	assert.Equal(t, 5432, cfg.Postgres().Port())
	assert.Equal(t, "ledger-events", cfg.Kafka().EventsTopic())
	assert.False(t, cfg.Telegram().Enabled())
}

func Test_Parse_ShouldExpandEnvironment(t *testing.T) {
	t.Setenv("LEDGER_TEST_PG_PASSWORD", "s3cret")

	cfg, err := Parse([]byte(minimalYAML + `
storage:
  backend: postgres
postgres:
  host: db
  db: ledger
  username: ledger
  password: ${LEDGER_TEST_PG_PASSWORD}
http:
  read-timeout: 3s
app:
  timezone: Asia/Kolkata
`))
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Postgres().Password())
	assert.Equal(t, 3*time.Second, cfg.HTTP().ReadTimeout())
	assert.Equal(t, "Asia/Kolkata", cfg.App().Location().String())
}

func Test_Validate_ShouldReportAllProblems(t *testing.T) {
	_, err := Parse([]byte(`
storage:
  backend: mongo
app:
  timezone: Mars/Olympus
kafka:
  enabled: true
amqp:
  enabled: true
  url: http://broker
telegram:
  enabled: true
`))
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "configuration validation failed")
	assert.Contains(t, msg, "invalid storage backend 'mongo'")
	assert.Contains(t, msg, "invalid timezone")
	assert.Contains(t, msg, "auth email and password-hash are required")
	assert.Contains(t, msg, "kafka brokers cannot be empty")
	assert.Contains(t, msg, "invalid AMQP URL scheme 'http'")
	assert.Contains(t, msg, "telegram token and chat-id are required")
}

func Test_Validate_ShouldRejectNonPositiveDurations(t *testing.T) {
	for _, tc := range []struct {
		name string
		yaml string
		want string
	}{
		{"negative sweep", "  sweep-interval: -1m\n", "auth sweep-interval must be positive"},
		{"negative ttl", "  session-ttl: -1h\n", "auth session-ttl must be positive"},
		{"negative read timeout", "http:\n  read-timeout: -3s\n", "http read-timeout must be positive"},
		{"negative write timeout", "http:\n  write-timeout: -1s\n", "http write-timeout must be positive"},
		{"negative shutdown timeout", "http:\n  shutdown-timeout: -5s\n", "http shutdown-timeout must be positive"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(minimalYAML + tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func Test_New_ShouldReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o600))

	cfg, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", cfg.Auth().Email())

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func Test_File_ShouldPreferExplicitPath(t *testing.T) {
	t.Setenv(configFileEnv, "/etc/ledger.yaml")

	assert.Equal(t, "custom.yaml", File("custom.yaml"))
	assert.Equal(t, "/etc/ledger.yaml", File(""))
}

func Test_Parse_ShouldKeepDollarSignsInHashes(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", cfg.Auth().PasswordHash())
}
