// File: database/repository/event/crud.go
package eventRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"trainspot/models"
)

func (r *mongoEventRepo) Create(ctx context.Context, event models.Event) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Status == "" {
		event.Status = models.StatusAvailable
	}

	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return "", fmt.Errorf("failed to insert event: %w", err)
	}
	return event.ID, nil
}

func (r *mongoEventRepo) DeleteByID(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// DeletedCount of zero is deliberately not an error: the coach may retry a
	// cancel, or the event may already be gone from a stale listing.
	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": eventID}); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	return nil
}
