package domain

import "time"

// Category tags an activity for grouping in the front end.
type Category string

const (
	CategoryIntellectual Category = "intellectual"
	CategorySports       Category = "sports"
	CategoryArtistic     Category = "artistic"
)

// Activity is an extracurricular offering and its participant roster.
type Activity struct {
	Name         string
	Description  string
	Schedule     string
	Category     Category
	Participants []string
}

// Clone returns a copy whose participant slice is detached from the receiver.
// The copy always carries a non-nil slice.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// EventType names a roster change.
type EventType string

const (
	EventParticipantSignedUp EventType = "roster.participant_signed_up"
	EventParticipantRemoved  EventType = "roster.participant_removed"
)

// RosterEvent records a single successful roster mutation.
type RosterEvent struct {
	ID           string
	Type         EventType
	ActivityName string
	Participant  string
	OccurredAt   time.Time
}
