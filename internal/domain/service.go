// Package domain defines the business logic for the roster service.
package domain

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrActivityNotFound is returned when no activity has the requested name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrParticipantNotFound is returned when removing someone who is not on the roster.
	ErrParticipantNotFound = errors.New("participant not found in activity")
)

// RosterStore captures the roster operations.
type RosterStore interface {
	List(ctx context.Context) (map[string]Activity, error)
	Signup(ctx context.Context, activityName, participant string) error
	Remove(ctx context.Context, activityName, participant string) error
}

// EventPublisher receives roster events after a mutation succeeds.
type EventPublisher interface {
	Publish(ctx context.Context, event RosterEvent) error
}

// MutationRecorder observes the outcome of roster mutations.
type MutationRecorder interface {
	RecordMutation(eventType EventType, activityName string, err error)
	RecordPublishFailure(eventType EventType)
}

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithPublisher routes roster events to publisher.
func WithPublisher(publisher EventPublisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(recorder MutationRecorder) Option {
	return func(s *Service) {
		s.recorder = recorder
	}
}

// WithLogger overrides the logger used to report publish failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source used to stamp events.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service orchestrates roster workflows.
type Service struct {
	store     RosterStore
	publisher EventPublisher
	recorder  MutationRecorder
	logger    *log.Logger
	now       func() time.Time
}

// NewService constructs a Service around store.
func NewService(store RosterStore, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: log.New(log.Writer(), "[roster] ", log.LstdFlags|log.Lshortfile),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListActivities returns every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.store.List(ctx)
}

// Signup appends participant to the roster of activityName. Duplicates are allowed.
func (s *Service) Signup(ctx context.Context, activityName, participant string) error {
	err := s.store.Signup(ctx, activityName, participant)
	s.record(EventParticipantSignedUp, activityName, err)
	if err != nil {
		return err
	}
	s.publish(ctx, EventParticipantSignedUp, activityName, participant)
	return nil
}

// Unregister removes the first occurrence of participant from activityName.
func (s *Service) Unregister(ctx context.Context, activityName, participant string) error {
	err := s.store.Remove(ctx, activityName, participant)
	s.record(EventParticipantRemoved, activityName, err)
	if err != nil {
		return err
	}
	s.publish(ctx, EventParticipantRemoved, activityName, participant)
	return nil
}

func (s *Service) record(eventType EventType, activityName string, err error) {
	if s.recorder != nil {
		s.recorder.RecordMutation(eventType, activityName, err)
	}
}

// publish is best effort: the roster change has already been applied.
func (s *Service) publish(ctx context.Context, eventType EventType, activityName, participant string) {
	if s.publisher == nil {
		return
	}
	event := RosterEvent{
		ID:           uuid.NewString(),
		Type:         eventType,
		ActivityName: activityName,
		Participant:  participant,
		OccurredAt:   s.now(),
	}
	// Detached from the request: the mutation is already applied even if the client has gone.
	if err := s.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.logger.Printf("publish failed (event_type=%s, activity=%q): %v", eventType, activityName, err)
		if s.recorder != nil {
			s.recorder.RecordPublishFailure(eventType)
		}
	}
}
