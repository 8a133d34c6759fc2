package coach

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	eventRepo "trainspot/database/repository/event"
	"trainspot/models"
	"trainspot/services/catalog"
	"trainspot/utils"
)

// Service is the coach-facing workflow: publish events, review both
// partitions, cancel an event in either status.
type Service interface {
	CreateEvent(ctx context.Context, req models.CreateEventRequest) (*models.Event, error)
	ListEvents(ctx context.Context) (*EventListing, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// EventListing is the coach's view of the catalog partitions.
type EventListing struct {
	Available []models.Event `json:"available"`
	Booked    []models.Event `json:"booked"`
}

// DefaultService implements Service against the event store and the shared
// catalog snapshot.
type DefaultService struct {
	Repo    eventRepo.EventRepository
	Catalog *catalog.Catalog
}

func (s *DefaultService) CreateEvent(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	event := models.Event{
		Activity: req.Activity,
		Location: req.Location,
		Date:     req.Date,
		Time:     req.Time,
		Lat:      req.Lat,
		Lng:      req.Lng,
		Status:   models.StatusAvailable,
	}
	id, err := s.Repo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	event.ID = id

	if err := s.Catalog.Refresh(ctx); err != nil {
		utils.GetLogger().Warn("catalog refresh after create failed", zap.Error(err))
	}
	return &event, nil
}

func (s *DefaultService) ListEvents(ctx context.Context) (*EventListing, error) {
	if err := s.Catalog.Refresh(ctx); err != nil {
		return nil, err
	}
	return &EventListing{
		Available: s.Catalog.Available(),
		Booked:    s.Catalog.Booked(),
	}, nil
}

func (s *DefaultService) DeleteEvent(ctx context.Context, eventID string) error {
	if eventID == "" {
		return &ValidationError{Field: "id", Message: "event id is required"}
	}
	// Unconditional removal, permitted in either status.
	if err := s.Repo.DeleteByID(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if err := s.Catalog.Refresh(ctx); err != nil {
		utils.GetLogger().Warn("catalog refresh after delete failed", zap.Error(err))
	}
	return nil
}

func validateCreate(req models.CreateEventRequest) error {
	if req.Activity == "" {
		return &ValidationError{Field: "activity", Message: "activity is required"}
	}
	if !models.IsValidActivity(req.Activity) {
		return &ValidationError{Field: "activity", Message: "unknown activity kind"}
	}
	if req.Date == "" {
		return &ValidationError{Field: "date", Message: "date is required"}
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return &ValidationError{Field: "date", Message: "expected YYYY-MM-DD"}
	}
	if req.Time == "" {
		return &ValidationError{Field: "time", Message: "time is required"}
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return &ValidationError{Field: "time", Message: "expected HH:MM"}
	}
	// Coordinates are recommended, not enforced, but a lone half makes no point.
	if (req.Lat == nil) != (req.Lng == nil) {
		return &ValidationError{Field: "coordinates", Message: "lat and lng must be set together"}
	}
	return nil
}
