package roster

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/roster/internal/domain"
)

func TestListReturnsSeededActivities(t *testing.T) {
	store := NewSeededMemoryStore()

	activities, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, len(SeedActivities()))

	for _, seeded := range SeedActivities() {
		got, ok := activities[seeded.Name]
		require.Truef(t, ok, "missing %s", seeded.Name)
		require.Equal(t, seeded.Name, got.Name)
		require.Equal(t, seeded.Category, got.Category)
		require.NotNil(t, got.Participants)
		require.Equal(t, seeded.Participants, got.Participants)
	}
	require.Empty(t, activities["Debate Team"].Participants)
}

func TestListReturnsDetachedCopies(t *testing.T) {
	store := NewSeededMemoryStore()
	ctx := context.Background()

	first, err := store.List(ctx)
	require.NoError(t, err)
	chess := first["Chess Club"]
	chess.Participants[0] = "mutated@mergington.edu"
	chess.Participants = append(chess.Participants, "extra@mergington.edu")

	second, err := store.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice.smith@mergington.edu", second["Chess Club"].Participants[0])
	require.Len(t, second["Chess Club"].Participants, 3)
}

func TestNewMemoryStoreCopiesInput(t *testing.T) {
	seed := []domain.Activity{{Name: "Chess Club", Participants: []string{"a@x"}}}
	store := NewMemoryStore(seed)
	seed[0].Participants[0] = "changed@x"

	activities, err := store.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"a@x"}, activities["Chess Club"].Participants)
}

func TestNewMemoryStoreNormalisesNilParticipants(t *testing.T) {
	store := NewMemoryStore([]domain.Activity{{Name: "Empty"}})

	activities, err := store.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, activities["Empty"].Participants)
}

func TestSignupAppendsParticipant(t *testing.T) {
	store := NewSeededMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Signup(ctx, "Chess Club", "new.student@mergington.edu"))

	activities, err := store.List(ctx)
	require.NoError(t, err)
	participants := activities["Chess Club"].Participants
	require.Len(t, participants, 4)
	require.Equal(t, "new.student@mergington.edu", participants[len(participants)-1])
}

func TestSignupAllowsDuplicates(t *testing.T) {
	store := NewSeededMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Signup(ctx, "Debate Team", "repeat@mergington.edu"))
		activities, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, activities["Debate Team"].Participants, i+1)
	}
}

func TestSignupUnknownActivity(t *testing.T) {
	store := NewSeededMemoryStore()

	err := store.Signup(context.Background(), "Nonexistent Club", "test@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestRemoveParticipant(t *testing.T) {
	store := NewSeededMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Remove(ctx, "Chess Club", "bob.jones@mergington.edu"))

	activities, err := store.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"alice.smith@mergington.edu", "carol.white@mergington.edu"}, activities["Chess Club"].Participants)
}

func TestRemoveOnlyFirstOccurrence(t *testing.T) {
	store := NewSeededMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Signup(ctx, "Debate Team", "twice@mergington.edu"))
	require.NoError(t, store.Signup(ctx, "Debate Team", "other@mergington.edu"))
	require.NoError(t, store.Signup(ctx, "Debate Team", "twice@mergington.edu"))

	require.NoError(t, store.Remove(ctx, "Debate Team", "twice@mergington.edu"))

	activities, err := store.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"other@mergington.edu", "twice@mergington.edu"}, activities["Debate Team"].Participants)
}

func TestRemoveErrors(t *testing.T) {
	store := NewSeededMemoryStore()
	ctx := context.Background()

	err := store.Remove(ctx, "Nonexistent Club", "alice.smith@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)

	err = store.Remove(ctx, "Chess Club", "nobody@mergington.edu")
	require.ErrorIs(t, err, domain.ErrParticipantNotFound)

	err = store.Remove(ctx, "Debate Team", "alice.smith@mergington.edu")
	require.ErrorIs(t, err, domain.ErrParticipantNotFound)
}

func TestConcurrentSignups(t *testing.T) {
	store := NewSeededMemoryStore()
	ctx := context.Background()

	const workers = 16
	const perWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_ = store.Signup(ctx, "Debate Team", fmt.Sprintf("w%d-%d@mergington.edu", w, i))
				_, _ = store.List(ctx)
			}
		}(w)
	}
	wg.Wait()

	activities, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, activities["Debate Team"].Participants, workers*perWorker)
}
