package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.KafkaBrokers, "broker is optional")
	assert.Equal(t, 500*time.Millisecond, cfg.OutboxPollInterval)
	assert.Equal(t, []time.Duration{time.Second, 5 * time.Second, 30 * time.Second}, cfg.RetryBackoff)
	assert.True(t, cfg.SeedDemoData)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_TOPIC_PREFIX", "rateboard.")
	t.Setenv("OUTBOX_POLL_INTERVAL", "2s")
	t.Setenv("RETRY_BACKOFF", "100ms, 1s")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("HOLIDAYS", "2026-03-02, 2026-05-25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "rateboard.", cfg.KafkaTopicPrefix)
	assert.Equal(t, 2*time.Second, cfg.OutboxPollInterval)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, time.Second}, cfg.RetryBackoff)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, []string{"2026-03-02", "2026-05-25"}, cfg.ExtraHolidays)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("bad poll interval", func(t *testing.T) {
		t.Setenv("OUTBOX_POLL_INTERVAL", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad retry backoff component", func(t *testing.T) {
		t.Setenv("RETRY_BACKOFF", "1s,eventually")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad seed flag", func(t *testing.T) {
		t.Setenv("SEED_DEMO_DATA", "maybe")
		_, err := Load()
		assert.Error(t, err)
	})
}
