//go:build integration

package consumer

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkaContainer "github.com/testcontainers/testcontainers-go/modules/kafka"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"example.com/roster/internal/domain"
	"example.com/roster/internal/outbox"
	"example.com/roster/internal/persistence/postgres"
)

func TestKafkaRosterEventsLandInAuditLog(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	kafkaC, err := kafkaContainer.RunContainer(ctx, testcontainers.WithEnv(map[string]string{
		"KAFKA_AUTO_CREATE_TOPICS_ENABLE": "true",
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kafkaC.Terminate(context.Background()) })

	brokers, err := kafkaC.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("roster"),
		postgrescontainer.WithUsername("roster"),
		postgrescontainer.WithPassword("roster"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	pool, err := postgres.Connect(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool))

	conn, err := kafka.Dial("tcp", brokers[0])
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.CreateTopics(kafka.TopicConfig{
		Topic:             outbox.RosterTopic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     "roster-audit-integration",
		Topic:       outbox.RosterTopic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})
	defer reader.Close()

	consumerCtx, stop := context.WithCancel(ctx)
	defer stop()
	go func() {
		_ = NewProcessor(reader, NewPersistenceHandler(pool)).Run(consumerCtx)
	}()

	// The outbox path produces the records exactly as the API would.
	recorder := outbox.NewRecorder(pool)
	require.NoError(t, recorder.Publish(ctx, domain.RosterEvent{
		ID:           uuid.NewString(),
		Type:         domain.EventParticipantSignedUp,
		ActivityName: "Chess Club",
		Participant:  "new@mergington.edu",
		OccurredAt:   time.Now().UTC(),
	}))

	producer := outbox.NewKafkaProducer(brokers, outbox.WithBatchTimeout(10*time.Millisecond))
	defer producer.Close()
	dispatcher := outbox.NewDispatcher(pool, producer, fixedRegistry{}, 100*time.Millisecond, 10)
	go dispatcher.Start(consumerCtx)

	require.Eventually(t, func() bool {
		var participant string
		err := pool.QueryRow(ctx, `SELECT participant FROM roster_event_log WHERE activity_name = 'Chess Club'`).Scan(&participant)
		return err == nil && participant == "new@mergington.edu"
	}, 60*time.Second, 500*time.Millisecond)
}

type fixedRegistry struct{}

func (fixedRegistry) EnsureSchema(context.Context, string, string) (int, error) { return 1, nil }
