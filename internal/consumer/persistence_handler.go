package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// rosterPayload covers the fields shared by every roster event.
type rosterPayload struct {
	EventID      string    `json:"event_id"`
	ActivityName string    `json:"activity_name"`
	Participant  string    `json:"participant"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// PersistenceHandler appends consumed roster events to roster_event_log.
type PersistenceHandler struct {
	db execer
}

// NewPersistenceHandler constructs a handler; db is typically a *pgxpool.Pool.
func NewPersistenceHandler(db execer) *PersistenceHandler {
	return &PersistenceHandler{db: db}
}

// Handle stores the event. Redelivered records are ignored by their topic/partition/offset.
func (h *PersistenceHandler) Handle(ctx context.Context, msg Message) error {
	var payload rosterPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("decode %s payload: %w", msg.EventType, err)
	}
	if payload.ActivityName == "" {
		return fmt.Errorf("%s payload has no activity_name", msg.EventType)
	}

	eventID := payload.EventID
	if eventID == "" {
		eventID = msg.EventID
	}
	occurredAt := payload.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = msg.Timestamp
	}

	_, err := h.db.Exec(ctx,
		`INSERT INTO roster_event_log (topic, partition, record_offset, event_id, event_type, activity_name, participant, occurred_at, schema_subject, schema_id, payload)
         VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
         ON CONFLICT (topic, partition, record_offset) DO NOTHING`,
		msg.Topic,
		msg.Partition,
		msg.Offset,
		eventID,
		msg.EventType,
		payload.ActivityName,
		payload.Participant,
		occurredAt,
		msg.SchemaSubject,
		msg.SchemaID,
		[]byte(msg.Payload),
	)
	return err
}
