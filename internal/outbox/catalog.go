package outbox

import (
	"example.com/roster/internal/domain"
	"example.com/roster/internal/events"
)

// RosterTopic carries every roster event so consumers see per-activity order.
const RosterTopic = "roster_events"

// EventMetadata describes how to route and frame an outbox event.
type EventMetadata struct {
	Topic         string
	SchemaSubject string
	Schema        string
	Payload       func(domain.RosterEvent) any
}

var eventCatalog = map[domain.EventType]EventMetadata{
	domain.EventParticipantSignedUp: {
		Topic:         RosterTopic,
		SchemaSubject: RosterTopic + "-signed_up-value",
		Schema:        participantSignedUpSchema,
		Payload: func(e domain.RosterEvent) any {
			return events.ParticipantSignedUp{
				EventID:      e.ID,
				ActivityName: e.ActivityName,
				Participant:  e.Participant,
				OccurredAt:   e.OccurredAt,
			}
		},
	},
	domain.EventParticipantRemoved: {
		Topic:         RosterTopic,
		SchemaSubject: RosterTopic + "-removed-value",
		Schema:        participantRemovedSchema,
		Payload: func(e domain.RosterEvent) any {
			return events.ParticipantRemoved{
				EventID:      e.ID,
				ActivityName: e.ActivityName,
				Participant:  e.Participant,
				OccurredAt:   e.OccurredAt,
			}
		},
	},
}

// lookupEvent returns catalog metadata for an event type name.
func lookupEvent(eventType string) (EventMetadata, bool) {
	meta, ok := eventCatalog[domain.EventType(eventType)]
	return meta, ok
}
