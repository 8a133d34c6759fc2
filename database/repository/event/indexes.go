// FILE: database/repository/event/indexes.go
package eventRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the events collection.
func (r *mongoEventRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on event ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// The booking write filters on id + status; back it with an index so
		// the conditional update stays a point operation.
		{
			Keys:    bson.D{{Key: "id", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("id_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "activity", Value: 1}},
			Options: options.Index().SetName("status_activity_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}
	return nil
}
