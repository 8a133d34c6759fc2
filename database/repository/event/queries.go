// File: database/repository/event/queries.go
package eventRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"trainspot/models"
)

func (r *mongoEventRepo) List(ctx context.Context) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("error decoding events: %w", err)
	}
	return events, nil
}

// getByID is used after a failed conditional update to tell a vanished event
// apart from a booking race.
func (r *mongoEventRepo) getByID(ctx context.Context, eventID string) (*models.Event, error) {
	var event models.Event
	err := r.coll.FindOne(ctx, bson.M{"id": eventID}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &event, nil
}
