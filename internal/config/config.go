package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/database"
)

// EnvPrefix prefixes every environment variable read by the services.
const EnvPrefix = "HOTEL"

// KafkaConfig holds broker settings shared by the store and the front desk.
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Enabled reports whether any broker is configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// StoreConfig points the front desk at the data store.
type StoreConfig struct {
	URL             string
	Timeout         time.Duration
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// ServiceConfig holds configuration for both binaries; each reads what it needs.
type ServiceConfig struct {
	Port        string
	StorePort   string
	AppEnv      string
	DBConfig    database.PostgresConfig
	KafkaConfig KafkaConfig
	Store       StoreConfig
	CORSOrigins []string
}

// Load reads configuration from an optional .env file and HOTEL_* environment variables.
func Load() (*ServiceConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromViper(newViper()), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", "8080")
	v.SetDefault("STORE_PORT", "5000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "hotel")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "hotel.booking.events")
	v.SetDefault("KAFKA_GROUP_ID", "frontdesk")
	v.SetDefault("STORE_URL", "http://localhost:5000")
	v.SetDefault("STORE_TIMEOUT", "5s")
	v.SetDefault("STORE_BREAKER_FAILURES", 3)
	v.SetDefault("STORE_BREAKER_TIMEOUT", "30s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	return v
}

// FromViper builds a ServiceConfig from an already populated viper instance.
func FromViper(v *viper.Viper) *ServiceConfig {
	return &ServiceConfig{
		Port:      listenAddr(v.GetString("SERVICE_PORT")),
		StorePort: listenAddr(v.GetString("STORE_PORT")),
		AppEnv:    v.GetString("APP_ENV"),
		DBConfig: database.PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		KafkaConfig: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
			Topic:   v.GetString("KAFKA_TOPIC"),
			GroupID: v.GetString("KAFKA_GROUP_ID"),
		},
		Store: StoreConfig{
			URL:             strings.TrimRight(v.GetString("STORE_URL"), "/"),
			Timeout:         v.GetDuration("STORE_TIMEOUT"),
			BreakerFailures: v.GetUint32("STORE_BREAKER_FAILURES"),
			BreakerTimeout:  v.GetDuration("STORE_BREAKER_TIMEOUT"),
		},
		CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}
}

// IsDevelopment reports whether schema changes are applied with AutoMigrate.
func (c *ServiceConfig) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func listenAddr(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
