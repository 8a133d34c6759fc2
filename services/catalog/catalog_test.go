package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventRepo "trainspot/database/repository/event"
	"trainspot/models"
)

func seedRepo(t *testing.T) *eventRepo.MemoryEventRepo {
	t.Helper()
	repo := eventRepo.NewMemoryEventRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, models.Event{ID: "a1", Activity: "Yoga", Date: "2024-06-01", Time: "09:00"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.Event{ID: "a2", Activity: "Soccer", Date: "2024-06-02", Time: "18:00"})
	require.NoError(t, err)

	id, err := repo.Create(ctx, models.Event{ID: "b1", Activity: "Tennis", Date: "2024-06-03", Time: "12:00"})
	require.NoError(t, err)
	require.NoError(t, repo.Book(ctx, id, "trainee9"))
	return repo
}

func TestCatalogPartitions(t *testing.T) {
	repo := seedRepo(t)
	c := New(repo)
	require.NoError(t, c.Refresh(context.Background()))

	available := c.Available()
	booked := c.Booked()

	require.Len(t, available, 2)
	require.Len(t, booked, 1)

	// Disjoint partitions whose union is the full fetched set.
	seen := make(map[string]string)
	for _, event := range available {
		assert.Equal(t, models.StatusAvailable, event.Status)
		assert.Nil(t, event.TraineeID)
		seen[event.ID] = "available"
	}
	for _, event := range booked {
		assert.Equal(t, models.StatusBooked, event.Status)
		require.NotNil(t, event.TraineeID)
		_, dup := seen[event.ID]
		assert.False(t, dup, "event %s appears in both partitions", event.ID)
		seen[event.ID] = "booked"
	}
	assert.Len(t, seen, 3)
}

func TestCatalogRefreshIdempotent(t *testing.T) {
	repo := seedRepo(t)
	c := New(repo)
	ctx := context.Background()

	require.NoError(t, c.Refresh(ctx))
	firstAvailable := c.Available()
	firstBooked := c.Booked()

	require.NoError(t, c.Refresh(ctx))
	assert.Equal(t, firstAvailable, c.Available())
	assert.Equal(t, firstBooked, c.Booked())
}

func TestCatalogIsStaleUntilRefreshed(t *testing.T) {
	repo := seedRepo(t)
	c := New(repo)
	ctx := context.Background()
	require.NoError(t, c.Refresh(ctx))

	require.NoError(t, repo.Book(ctx, "a1", "trainee1"))

	// Snapshot unchanged until the next explicit refresh.
	assert.Len(t, c.Available(), 2)

	require.NoError(t, c.Refresh(ctx))
	assert.Len(t, c.Available(), 1)
	assert.Len(t, c.Booked(), 2)
}

func TestCatalogEmptyStore(t *testing.T) {
	c := New(eventRepo.NewMemoryEventRepo())
	require.NoError(t, c.Refresh(context.Background()))
	assert.Empty(t, c.Available())
	assert.Empty(t, c.Booked())
}
