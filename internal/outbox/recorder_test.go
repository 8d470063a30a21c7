package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"example.com/roster/internal/domain"
)

func TestRecorderInsertsOutboxRow(t *testing.T) {
	db := &stubExecer{}
	recorder := NewRecorder(db)
	event := domain.RosterEvent{
		ID:           "evt-1",
		Type:         domain.EventParticipantSignedUp,
		ActivityName: "Chess Club",
		Participant:  "new@mergington.edu",
		OccurredAt:   time.Date(2025, time.October, 27, 20, 0, 0, 0, time.UTC),
	}

	require.NoError(t, recorder.Publish(context.Background(), event))

	require.Len(t, db.calls, 1)
	args := db.calls[0]
	require.Equal(t, "activity", args[0])
	require.Equal(t, "Chess Club", args[1])
	require.Equal(t, "roster.participant_signed_up", args[2])
	require.Equal(t, RosterTopic, args[3])
	require.Equal(t, "roster_events-signed_up-value", args[4])
	require.Equal(t, "Chess Club", args[5])
	require.JSONEq(t, `{
		"event_id": "evt-1",
		"activity_name": "Chess Club",
		"participant": "new@mergington.edu",
		"occurred_at": "2025-10-27T20:00:00Z"
	}`, string(args[6].([]byte)))
	require.Equal(t, "evt-1:roster.participant_signed_up", args[7])
}

func TestRecorderWrapsExecErrors(t *testing.T) {
	recorder := NewRecorder(&stubExecer{err: errors.New("connection refused")})

	err := recorder.Publish(context.Background(), domain.RosterEvent{ID: "evt-2", Type: domain.EventParticipantRemoved, ActivityName: "Chess Club"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "insert outbox event")
}

func TestRecorderRejectsUnknownEventType(t *testing.T) {
	db := &stubExecer{}
	recorder := NewRecorder(db)

	err := recorder.Publish(context.Background(), domain.RosterEvent{ID: "evt-3", Type: "roster.renamed"})
	require.Error(t, err)
	require.Empty(t, db.calls)
}

type stubExecer struct {
	calls [][]any
	err   error
}

func (s *stubExecer) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	if s.err != nil {
		return pgconn.CommandTag{}, s.err
	}
	s.calls = append(s.calls, args)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}
