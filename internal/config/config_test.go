package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "nonexistent.yaml")

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 60, cfg.Insight.RefreshIntervalSeconds)
	assert.Equal(t, 24, cfg.Insight.DedupTTLHours)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "nonexistent.yaml")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("MQ_URL", "amqp://mq.internal:5672/")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("SERVER_PORT", "9000")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, "amqp://mq.internal:5672/", cfg.MQ.URL)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, "supersecret", cfg.JWT.Secret)
	assert.Equal(t, "9000", cfg.Server.Port)
}

func TestLoad_InvalidPortIgnored(t *testing.T) {
	t.Setenv("CONFIG_PATH", "nonexistent.yaml")
	t.Setenv("DB_PORT", "not-a-number")

	cfg := Load()
	assert.Equal(t, 5432, cfg.DB.Port)
}
