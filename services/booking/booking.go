package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	eventRepo "trainspot/database/repository/event"
	"trainspot/models"
	"trainspot/utils"
)

// StateMachine governs the available → booked transition. Booked is terminal
// within this scope; deletion is a separate lifecycle exit handled by the
// coach workflow.
type StateMachine interface {
	Apply(ctx context.Context, eventID, traineeID string) (*models.BookingConfirmation, error)
}

// DefaultStateMachine applies transitions through the store's conditional
// update primitive. It never validates against an in-memory snapshot: the
// store re-checks the current status as part of the write itself, so a search
// result gone stale between display and apply surfaces as a ConflictError.
type DefaultStateMachine struct {
	Repo eventRepo.EventRepository
}

func (s *DefaultStateMachine) Apply(ctx context.Context, eventID, traineeID string) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	err := s.Repo.Book(ctx, eventID, traineeID)
	switch {
	case errors.Is(err, eventRepo.ErrAlreadyBooked):
		logger.Info("booking rejected, event already taken",
			zap.String("eventId", eventID), zap.String("traineeId", traineeID))
		return nil, &ConflictError{EventID: eventID}
	case errors.Is(err, eventRepo.ErrNotFound):
		return nil, &NotFoundError{EventID: eventID}
	case err != nil:
		return nil, fmt.Errorf("booking write failed: %w", err)
	}

	logger.Info("event booked",
		zap.String("eventId", eventID), zap.String("traineeId", traineeID))
	return &models.BookingConfirmation{
		EventID:   eventID,
		TraineeID: traineeID,
		Status:    models.StatusBooked,
	}, nil
}
