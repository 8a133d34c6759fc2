package catalog

import (
	"context"
	"fmt"
	"sync"

	eventRepo "trainspot/database/repository/event"
	"trainspot/models"
)

// Catalog holds the most recently fetched full set of events, partitioned by
// status. It is a point-in-time snapshot: stale immediately after any external
// mutation until the next Refresh. The two partitions are disjoint and their
// union is the last-fetched set.
type Catalog struct {
	repo eventRepo.EventRepository

	mu        sync.RWMutex
	available []models.Event
	booked    []models.Event
}

// New constructs an empty catalog over the given repository. Call Refresh
// before reading the partitions.
func New(repo eventRepo.EventRepository) *Catalog {
	return &Catalog{repo: repo}
}

// Refresh replaces the snapshot with the store's current full set.
func (c *Catalog) Refresh(ctx context.Context) error {
	events, err := c.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("catalog refresh failed: %w", err)
	}

	var available, booked []models.Event
	for _, event := range events {
		if event.IsBooked() {
			booked = append(booked, event)
		} else {
			available = append(available, event)
		}
	}

	c.mu.Lock()
	c.available = available
	c.booked = booked
	c.mu.Unlock()
	return nil
}

// Available returns the events still open for booking as of the last Refresh.
func (c *Catalog) Available() []models.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Event, len(c.available))
	copy(out, c.available)
	return out
}

// Booked returns the events already taken by a trainee as of the last Refresh.
func (c *Catalog) Booked() []models.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Event, len(c.booked))
	copy(out, c.booked)
	return out
}
