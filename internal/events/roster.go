// Package events defines the payloads published for roster changes.
package events

import "time"

// ParticipantSignedUp is emitted when a participant is appended to an activity roster.
type ParticipantSignedUp struct {
	EventID      string    `json:"event_id"`
	ActivityName string    `json:"activity_name"`
	Participant  string    `json:"participant"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// ParticipantRemoved is emitted when a participant is taken off an activity roster.
type ParticipantRemoved struct {
	EventID      string    `json:"event_id"`
	ActivityName string    `json:"activity_name"`
	Participant  string    `json:"participant"`
	OccurredAt   time.Time `json:"occurred_at"`
}
