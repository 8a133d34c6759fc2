// File: database/repository/event/memory.go
package eventRepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"trainspot/models"
)

// MemoryEventRepo is an in-memory EventRepository used by tests and local
// development. Book holds the lock across the status check and the write,
// mirroring the atomicity of the document store's conditional update.
type MemoryEventRepo struct {
	mu     sync.Mutex
	events map[string]models.Event
	order  []string
}

// NewMemoryEventRepo constructs an empty in-memory EventRepository.
func NewMemoryEventRepo() *MemoryEventRepo {
	return &MemoryEventRepo{
		events: make(map[string]models.Event),
	}
}

func (r *MemoryEventRepo) Create(ctx context.Context, event models.Event) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Status == "" {
		event.Status = models.StatusAvailable
	}
	r.events[event.ID] = event
	r.order = append(r.order, event.ID)
	return event.ID, nil
}

func (r *MemoryEventRepo) List(ctx context.Context) ([]models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]models.Event, 0, len(r.events))
	for _, id := range r.order {
		if event, ok := r.events[id]; ok {
			events = append(events, event)
		}
	}
	return events, nil
}

func (r *MemoryEventRepo) Book(ctx context.Context, eventID, traineeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[eventID]
	if !ok {
		return ErrNotFound
	}
	if event.Status != models.StatusAvailable {
		return ErrAlreadyBooked
	}
	event.Status = models.StatusBooked
	event.TraineeID = &traineeID
	r.events[eventID] = event
	return nil
}

func (r *MemoryEventRepo) DeleteByID(ctx context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.events, eventID)
	return nil
}
