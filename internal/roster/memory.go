// Package roster holds the in-process roster store.
package roster

import (
	"context"
	"sync"

	"example.com/roster/internal/domain"
)

// MemoryStore keeps activities in memory for the lifetime of the process.
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewMemoryStore constructs a store holding copies of the given activities.
// A later activity with the same name replaces an earlier one.
func NewMemoryStore(activities []domain.Activity) *MemoryStore {
	store := &MemoryStore{activities: make(map[string]*domain.Activity, len(activities))}
	for _, activity := range activities {
		clone := activity.Clone()
		store.activities[activity.Name] = &clone
	}
	return store
}

// NewSeededMemoryStore constructs a store populated with SeedActivities.
func NewSeededMemoryStore() *MemoryStore {
	return NewMemoryStore(SeedActivities())
}

// List implements domain.RosterStore.
func (s *MemoryStore) List(ctx context.Context) (map[string]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.Activity, len(s.activities))
	for name, activity := range s.activities {
		out[name] = activity.Clone()
	}
	return out, nil
}

// Signup implements domain.RosterStore.
func (s *MemoryStore) Signup(ctx context.Context, activityName, participant string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	activity.Participants = append(activity.Participants, participant)
	return nil
}

// Remove implements domain.RosterStore. Only the first matching entry is removed.
func (s *MemoryStore) Remove(ctx context.Context, activityName, participant string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for i, existing := range activity.Participants {
		if existing == participant {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrParticipantNotFound
}
