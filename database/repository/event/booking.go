// File: database/repository/event/booking.go
package eventRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"trainspot/models"
)

// Book transitions an event from available to booked with a single conditional
// update: the filter carries the expected current status, so the store only
// applies the write if no other trainee got there first. A read-then-write
// would leave a window between the check and the update; the status-guarded
// filter closes it.
func (r *mongoEventRepo) Book(ctx context.Context, eventID, traineeID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":     eventID,
		"status": models.StatusAvailable,
	}
	update := bson.M{
		"$set": bson.M{
			"status":    models.StatusBooked,
			"traineeId": traineeID,
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to book event %s: %w", eventID, err)
	}
	if res.MatchedCount == 0 {
		// Either the event is gone or another trainee won the race.
		if _, err := r.getByID(ctx, eventID); err != nil {
			return err
		}
		return ErrAlreadyBooked
	}
	return nil
}
