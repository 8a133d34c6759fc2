package search

import (
	"trainspot/models"
)

// Query describes one trainee search over the available partition.
type Query struct {
	// Activity narrows results to one activity kind; empty matches all.
	Activity string
	// RadiusKm, when set, drops results farther than this from Reference.
	// Requires Reference; callers validate that before building a Query.
	RadiusKm *float64
	// Reference is the point distances are measured from. When nil no
	// distance can be computed and results carry no annotation.
	Reference *models.GeoPoint
}

// Engine filters and annotates the available partition of the catalog.
type Engine struct{}

// NewEngine constructs a search engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Search keeps every event matching the activity filter and, when a radius is
// given, lying within it. Distance is attached to every surviving result even
// when no radius filter was requested; the radius filter is optional but the
// annotation is not. Events without coordinates are excluded from geospatial
// evaluation rather than fed into the distance math.
//
// Results keep source order; no distance sort is applied.
func (e *Engine) Search(events []models.Event, q Query) []models.SearchResult {
	results := make([]models.SearchResult, 0, len(events))
	for _, event := range events {
		if q.Activity != "" && event.Activity != q.Activity {
			continue
		}

		if q.Reference == nil {
			results = append(results, models.SearchResult{Event: event})
			continue
		}

		if !event.HasCoordinates() {
			continue
		}
		distance := DistanceKm(*q.Reference, event.Coordinates())
		if q.RadiusKm != nil && distance > *q.RadiusKm {
			continue
		}
		rounded := roundKm(distance)
		results = append(results, models.SearchResult{Event: event, DistanceKm: &rounded})
	}
	return results
}
