package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventRepo "trainspot/database/repository/event"
	"trainspot/models"
)

func newMachine(t *testing.T) (*DefaultStateMachine, *eventRepo.MemoryEventRepo, string) {
	t.Helper()
	repo := eventRepo.NewMemoryEventRepo()
	id, err := repo.Create(context.Background(), models.Event{
		Activity: "Yoga",
		Date:     "2024-06-01",
		Time:     "09:00",
	})
	require.NoError(t, err)
	return &DefaultStateMachine{Repo: repo}, repo, id
}

func TestApplyBooksAvailableEvent(t *testing.T) {
	machine, repo, id := newMachine(t)
	ctx := context.Background()

	confirmation, err := machine.Apply(ctx, id, "trainee1")
	require.NoError(t, err)
	assert.Equal(t, id, confirmation.EventID)
	assert.Equal(t, "trainee1", confirmation.TraineeID)
	assert.Equal(t, models.StatusBooked, confirmation.Status)

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.StatusBooked, events[0].Status)
	require.NotNil(t, events[0].TraineeID)
	assert.Equal(t, "trainee1", *events[0].TraineeID)
}

func TestApplyRejectsAlreadyBookedEvent(t *testing.T) {
	machine, _, id := newMachine(t)
	ctx := context.Background()

	_, err := machine.Apply(ctx, id, "trainee1")
	require.NoError(t, err)

	_, err = machine.Apply(ctx, id, "trainee2")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, id, conflict.EventID)
}

func TestApplyUnknownEvent(t *testing.T) {
	machine, _, _ := newMachine(t)

	_, err := machine.Apply(context.Background(), "no-such-id", "trainee1")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestConcurrentAppliesExactlyOneWins(t *testing.T) {
	machine, repo, id := newMachine(t)
	ctx := context.Background()

	const trainees = 16
	var wg sync.WaitGroup
	errs := make([]error, trainees)

	for i := 0; i < trainees; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = machine.Apply(ctx, id, fmt.Sprintf("trainee%d", i))
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	var winner string
	for i, err := range errs {
		if err == nil {
			wins++
			winner = fmt.Sprintf("trainee%d", i)
			continue
		}
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		conflicts++
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, trainees-1, conflicts)

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].TraineeID)
	assert.Equal(t, winner, *events[0].TraineeID)
}

func TestStatusTraineeInvariant(t *testing.T) {
	// status == booked iff traineeId != nil, at every observed point.
	machine, repo, id := newMachine(t)
	ctx := context.Background()

	checkInvariant := func() {
		events, err := repo.List(ctx)
		require.NoError(t, err)
		for _, event := range events {
			assert.Equal(t, event.Status == models.StatusBooked, event.TraineeID != nil)
		}
	}

	checkInvariant()
	_, err := machine.Apply(ctx, id, "trainee1")
	require.NoError(t, err)
	checkInvariant()
}
