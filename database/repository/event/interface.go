// File: database/repository/event/interface.go
package eventRepo

import (
	"context"
	"errors"

	"trainspot/database"
	"trainspot/models"
	"trainspot/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrNotFound is returned when the targeted event no longer exists.
var ErrNotFound = errors.New("event not found")

// ErrAlreadyBooked is returned by Book when the status guard failed: the event
// existed but was no longer available at the moment the store applied the write.
var ErrAlreadyBooked = errors.New("event already booked")

// EventRepository is the store boundary for coach-published events. All calls
// are bounded round trips to the backing document store; failures are surfaced
// to the caller without retries.
type EventRepository interface {
	Create(ctx context.Context, event models.Event) (string, error)
	List(ctx context.Context) ([]models.Event, error)
	// Book conditionally transitions an available event to booked for the given
	// trainee. The write is filtered on the current status so a lost race
	// returns ErrAlreadyBooked instead of silently overwriting the winner.
	Book(ctx context.Context, eventID, traineeID string) error
	// DeleteByID removes an event in either status. Deleting an id that no
	// longer exists is not an error.
	DeleteByID(ctx context.Context, eventID string) error
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs a new MongoDB EventRepository.
func NewMongoEventRepo(dbName string) EventRepository {
	db := database.MongoClient.Database(dbName)
	repo := &mongoEventRepo{
		coll: db.Collection("events"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure event indexes", zap.Error(err))
	}
	return repo
}
