//go:build integration

package main_test

import (
	"context"
	"fmt"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkamodule "github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hotel-frontdesk/service-frontdesk/internal/application"
	"github.com/hotel-frontdesk/service-frontdesk/internal/common/database"
	"github.com/hotel-frontdesk/service-frontdesk/internal/common/kafka"
	"github.com/hotel-frontdesk/service-frontdesk/internal/common/validation"
	"github.com/hotel-frontdesk/service-frontdesk/internal/datastore"
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	"github.com/hotel-frontdesk/service-frontdesk/internal/events"
	"github.com/hotel-frontdesk/service-frontdesk/internal/repository"
	"github.com/hotel-frontdesk/service-frontdesk/internal/storeclient"
)

const testTopic = "test.booking.events"

// testInfra holds shared test infrastructure.
type testInfra struct {
	DB           *gorm.DB
	KafkaBrokers []string
	Cleanup      func()
}

// hotelStack holds a running data store and a front desk wired to it.
type hotelStack struct {
	Store   *datastore.Service
	Client  *storeclient.Client
	Desk    *application.Desk
	Cleanup func()
}

// setupContainers starts PostgreSQL and Kafka testcontainers, applies the SQL
// migrations and returns a connected GORM DB.
func setupContainers(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_hotel",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pgReq,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := database.PostgresConfig{
		Host:     pgHost,
		Port:     pgPort.Port(),
		User:     "test",
		Password: "test",
		DBName:   "test_hotel",
		SSLMode:  "disable",
	}
	log := zap.NewNop()

	// Poll until GORM can actually connect and ping.
	var db *gorm.DB
	require.Eventually(t, func() bool {
		var err error
		db, err = database.Connect(cfg, log)
		return err == nil
	}, 30*time.Second, 1*time.Second, "PostgreSQL not ready for connections")

	require.NoError(t, database.RunMigrations(cfg.DatabaseURL(), "migrations", log))

	// Start Kafka container using confluent-local (supports KRaft natively).
	kafkaContainer, err := kafkamodule.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err, "failed to start Kafka container")

	kafkaBrokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err, "failed to get Kafka brokers")

	createTopics(t, kafkaBrokers, testTopic)

	cleanup := func() {
		if err := kafkaContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate Kafka container: %v", err)
		}
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	}

	return &testInfra{
		DB:           db,
		KafkaBrokers: kafkaBrokers,
		Cleanup:      cleanup,
	}
}

// setupHotelStack serves the data store over httptest and points a front desk at it.
func setupHotelStack(t *testing.T, db *gorm.DB, brokers []string, today string) *hotelStack {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	require.NoError(t, validation.RegisterBindings())

	producer := kafka.NewProducer(brokers, logger)
	store := datastore.NewService(
		repository.NewGormGuestRepository(db),
		repository.NewGormRoomRepository(db),
		repository.NewGormBookingRepository(db),
		repository.NewGormPriceRepository(db),
		events.NewKafkaPublisher(producer, testTopic, logger),
		logger,
	)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	datastore.NewHandler(store, logger).RegisterRoutes(&router.RouterGroup)
	srv := httptest.NewServer(router)

	client := storeclient.New(storeclient.Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, logger)

	return &hotelStack{
		Store:  store,
		Client: client,
		Desk:   newDesk(client, today, logger),
		Cleanup: func() {
			srv.Close()
			_ = producer.Close()
		},
	}
}

func newDesk(client *storeclient.Client, today string, logger *zap.Logger) *application.Desk {
	now := func() time.Time {
		d, _ := bookingDomain.ParseDate(today)
		return d.Add(9 * time.Hour)
	}
	pricing := bookingDomain.NewStandardRateCard()
	controller := application.NewBookingController(client, pricing, now, logger)
	return application.NewDesk(client, controller, pricing, logger)
}

// startRefreshConsumer subscribes desk to booking events with a fresh consumer group.
func startRefreshConsumer(t *testing.T, ctx context.Context, brokers []string, desk *application.Desk) {
	t.Helper()
	groupID := fmt.Sprintf("test-frontdesk-%s", uuid.New().String()[:8])
	consumer := events.NewBookingEventConsumer(brokers, groupID, testTopic, desk, zap.NewNop())
	t.Cleanup(func() { _ = consumer.Close() })
	go func() { _ = consumer.Start(ctx) }()
	time.Sleep(3 * time.Second) // Wait for consumer group join.
}

// consumeOneEvent reads from a Kafka topic until it finds an event of the expected type.
func consumeOneEvent(t *testing.T, brokers []string, topic, expectedType string, timeout time.Duration) kafka.CloudEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	groupID := fmt.Sprintf("test-assert-%s", uuid.New().String()[:8])
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafkago.FirstOffset,
	})
	defer func() { _ = reader.Close() }()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				t.Fatalf("timed out waiting for event type %q on topic %q", expectedType, topic)
			}
			continue
		}
		ce, err := kafka.ParseCloudEvent(msg.Value)
		if err != nil {
			continue
		}
		if ce.Type == expectedType {
			return ce
		}
	}
}

// createTopics pre-creates Kafka topics so producers don't fail with "Unknown Topic".
func createTopics(t *testing.T, brokers []string, topics ...string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", brokers[0])
	require.NoError(t, err, "failed to dial Kafka for topic creation")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "failed to get Kafka controller")

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, fmt.Sprintf("%d", controller.Port)))
	require.NoError(t, err, "failed to connect to Kafka controller")
	defer controllerConn.Close()

	topicConfigs := make([]kafkago.TopicConfig, len(topics))
	for i, topic := range topics {
		topicConfigs[i] = kafkago.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		}
	}
	err = controllerConn.CreateTopics(topicConfigs...)
	require.NoError(t, err, "failed to create Kafka topics")

	time.Sleep(1 * time.Second)
}
