package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"example.com/roster/internal/domain"
)

const aggregateActivity = "activity"

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Recorder writes roster events into the outbox table. It implements domain.EventPublisher.
type Recorder struct {
	db execer
}

// NewRecorder constructs a Recorder; db is typically a *pgxpool.Pool.
func NewRecorder(db execer) *Recorder {
	return &Recorder{db: db}
}

// Publish inserts the event. A repeated event ID is ignored.
func (r *Recorder) Publish(ctx context.Context, event domain.RosterEvent) error {
	row, err := newOutboxRow(event)
	if err != nil {
		return err
	}

	const stmt = `INSERT INTO outbox (aggregate_type, aggregate_id, event_type, topic, schema_subject, partition_key, payload, dedupe_key)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        ON CONFLICT (dedupe_key) DO NOTHING`

	if _, err := r.db.Exec(ctx, stmt,
		row.AggregateType,
		row.AggregateID,
		row.EventType,
		row.Topic,
		row.SchemaSubject,
		row.PartitionKey,
		[]byte(row.Payload),
		row.DedupeKey,
	); err != nil {
		return fmt.Errorf("insert outbox event: %w", err)
	}
	recordedCounter.WithLabelValues(row.EventType).Inc()
	return nil
}

type outboxRow struct {
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	SchemaSubject string
	PartitionKey  string
	Payload       json.RawMessage
	DedupeKey     string
}

func newOutboxRow(event domain.RosterEvent) (outboxRow, error) {
	meta, ok := eventCatalog[event.Type]
	if !ok {
		return outboxRow{}, fmt.Errorf("unknown event type: %s", event.Type)
	}

	body, err := json.Marshal(meta.Payload(event))
	if err != nil {
		return outboxRow{}, err
	}

	return outboxRow{
		AggregateType: aggregateActivity,
		AggregateID:   event.ActivityName,
		EventType:     string(event.Type),
		Topic:         meta.Topic,
		SchemaSubject: meta.SchemaSubject,
		PartitionKey:  event.ActivityName,
		Payload:       body,
		DedupeKey:     fmt.Sprintf("%s:%s", event.ID, event.Type),
	}, nil
}
