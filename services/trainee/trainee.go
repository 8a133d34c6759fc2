package trainee

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"trainspot/models"
	"trainspot/services/booking"
	"trainspot/services/catalog"
	"trainspot/services/search"
	"trainspot/utils"
)

// Service is the trainee-facing workflow: capture the geolocation fix as a
// session, search the catalog, apply to one result.
type Service interface {
	StartSession(ctx context.Context, ref models.GeoPoint) (string, error)
	Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error)
	Apply(ctx context.Context, eventID, traineeID string) (*models.BookingConfirmation, error)
}

// DefaultService implements Service over the shared catalog, the search
// engine and the booking state machine.
type DefaultService struct {
	Catalog  *catalog.Catalog
	Engine   *search.Engine
	Machine  booking.StateMachine
	Sessions *SessionStore
	// DefaultReference is the configured fallback search origin, nil when the
	// deployment does not define one.
	DefaultReference *models.GeoPoint
}

func (s *DefaultService) StartSession(ctx context.Context, ref models.GeoPoint) (string, error) {
	return s.Sessions.Start(ctx, ref)
}

func (s *DefaultService) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	if req.Activity != "" && !models.IsValidActivity(req.Activity) {
		return nil, &ValidationError{Field: "activity", Message: "unknown activity kind"}
	}
	if req.RadiusKm != nil && *req.RadiusKm < 0 {
		return nil, &ValidationError{Field: "radiusKm", Message: "radius must not be negative"}
	}

	ref, err := s.resolveReference(ctx, req)
	if err != nil {
		return nil, err
	}
	if ref == nil && req.RadiusKm != nil {
		return nil, &ValidationError{Field: "radiusKm", Message: "a radius filter requires a reference point"}
	}

	// The snapshot is refreshed before filtering, but a result can still go
	// stale before the trainee applies; Apply re-validates at the store.
	if err := s.Catalog.Refresh(ctx); err != nil {
		return nil, err
	}

	results := s.Engine.Search(s.Catalog.Available(), search.Query{
		Activity:  req.Activity,
		RadiusKm:  req.RadiusKm,
		Reference: ref,
	})

	markers := make([]models.Marker, 0, len(results))
	for _, res := range results {
		if !res.HasCoordinates() {
			continue
		}
		markers = append(markers, models.Marker{
			EventID:  res.ID,
			Activity: res.Activity,
			Lat:      *res.Lat,
			Lng:      *res.Lng,
		})
	}

	utils.GetLogger().Debug("search completed",
		zap.String("activity", req.Activity),
		zap.Int("results", len(results)))
	return &models.SearchResponse{Results: results, Markers: markers}, nil
}

func (s *DefaultService) Apply(ctx context.Context, eventID, traineeID string) (*models.BookingConfirmation, error) {
	if eventID == "" {
		return nil, &ValidationError{Field: "id", Message: "event id is required"}
	}
	if traineeID == "" {
		return nil, &ValidationError{Field: "traineeId", Message: "trainee identity is required"}
	}
	return s.Machine.Apply(ctx, eventID, traineeID)
}

// resolveReference picks the search origin: an explicit reference wins, then
// the session's cached geolocation fix, then the configured default.
func (s *DefaultService) resolveReference(ctx context.Context, req models.SearchRequest) (*models.GeoPoint, error) {
	if req.Reference != nil {
		return req.Reference, nil
	}
	if req.SessionID != "" {
		ref, err := s.Sessions.Reference(ctx, req.SessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve session reference: %w", err)
		}
		if ref != nil {
			return ref, nil
		}
	}
	return s.DefaultReference, nil
}
