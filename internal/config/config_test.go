package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, ":5000", cfg.StorePort)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "hotel", cfg.DBConfig.DBName)
	assert.False(t, cfg.KafkaConfig.Enabled())
	assert.Equal(t, "hotel.booking.events", cfg.KafkaConfig.Topic)
	assert.Equal(t, "http://localhost:5000", cfg.Store.URL)
	assert.Equal(t, 5*time.Second, cfg.Store.Timeout)
	assert.Equal(t, uint32(3), cfg.Store.BreakerFailures)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOTEL_SERVICE_PORT", ":9090")
	t.Setenv("HOTEL_APP_ENV", "production")
	t.Setenv("HOTEL_KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("HOTEL_STORE_URL", "http://store:5000/")
	t.Setenv("HOTEL_STORE_TIMEOUT", "2s")
	t.Setenv("HOTEL_CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaConfig.Brokers)
	assert.True(t, cfg.KafkaConfig.Enabled())
	assert.Equal(t, "http://store:5000", cfg.Store.URL)
	assert.Equal(t, 2*time.Second, cfg.Store.Timeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}
