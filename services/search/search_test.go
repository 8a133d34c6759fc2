package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainspot/models"
)

func floatPtr(f float64) *float64 { return &f }

func makeEvent(id, activity string, lat, lng float64) models.Event {
	return models.Event{
		ID:       id,
		Activity: activity,
		Date:     "2024-06-01",
		Time:     "09:00",
		Lat:      floatPtr(lat),
		Lng:      floatPtr(lng),
		Status:   models.StatusAvailable,
	}
}

func TestSearchActivityFilter(t *testing.T) {
	events := []models.Event{
		makeEvent("e1", "Yoga", 40.0, -75.0),
		makeEvent("e2", "Soccer", 40.0, -75.0),
		makeEvent("e3", "Yoga", 40.1, -75.1),
	}
	ref := &models.GeoPoint{Lat: 40.0, Lng: -75.0}

	results := NewEngine().Search(events, Query{Activity: "Yoga", Reference: ref})

	require.Len(t, results, 2)
	for _, res := range results {
		assert.Equal(t, "Yoga", res.Activity)
	}
}

func TestSearchRadiusFilter(t *testing.T) {
	events := []models.Event{
		makeEvent("near", "Tennis", 40.05, -75.02),
		makeEvent("far", "Tennis", 41.5, -75.0),
	}
	ref := &models.GeoPoint{Lat: 40.0, Lng: -75.0}

	results := NewEngine().Search(events, Query{RadiusKm: floatPtr(50), Reference: ref})

	require.Len(t, results, 1)
	assert.Equal(t, "near", results[0].ID)
	require.NotNil(t, results[0].DistanceKm)
	assert.LessOrEqual(t, *results[0].DistanceKm, 50.0)
}

func TestSearchDistanceAttachedWithoutRadius(t *testing.T) {
	// The radius filter is optional but the distance annotation is not.
	events := []models.Event{
		makeEvent("near", "Running", 40.05, -75.02),
		makeEvent("far", "Running", 41.5, -75.0),
	}
	ref := &models.GeoPoint{Lat: 40.0, Lng: -75.0}

	results := NewEngine().Search(events, Query{Reference: ref})

	require.Len(t, results, 2)
	for _, res := range results {
		require.NotNil(t, res.DistanceKm)
		assert.GreaterOrEqual(t, *res.DistanceKm, 0.0)
	}
}

func TestSearchExcludesEventsWithoutCoordinates(t *testing.T) {
	noCoords := models.Event{
		ID:       "blind",
		Activity: "Yoga",
		Status:   models.StatusAvailable,
	}
	events := []models.Event{
		noCoords,
		makeEvent("mapped", "Yoga", 40.0, -75.0),
	}
	ref := &models.GeoPoint{Lat: 40.0, Lng: -75.0}

	results := NewEngine().Search(events, Query{Reference: ref})

	require.Len(t, results, 1)
	assert.Equal(t, "mapped", results[0].ID)
}

func TestSearchWithoutReference(t *testing.T) {
	// No reference means no distance is computable; results pass through
	// unannotated instead of being dropped.
	events := []models.Event{
		makeEvent("e1", "Cycling", 40.0, -75.0),
	}

	results := NewEngine().Search(events, Query{})

	require.Len(t, results, 1)
	assert.Nil(t, results[0].DistanceKm)
}

func TestSearchEmptyCatalog(t *testing.T) {
	ref := &models.GeoPoint{Lat: 40.0, Lng: -75.0}
	results := NewEngine().Search(nil, Query{Activity: "Yoga", RadiusKm: floatPtr(10), Reference: ref})
	assert.Empty(t, results)
}

func TestSearchPreservesSourceOrder(t *testing.T) {
	events := []models.Event{
		makeEvent("far", "Swimming", 40.3, -75.0),
		makeEvent("near", "Swimming", 40.01, -75.0),
		makeEvent("mid", "Swimming", 40.1, -75.0),
	}
	ref := &models.GeoPoint{Lat: 40.0, Lng: -75.0}

	results := NewEngine().Search(events, Query{Reference: ref})

	require.Len(t, results, 3)
	assert.Equal(t, "far", results[0].ID)
	assert.Equal(t, "near", results[1].ID)
	assert.Equal(t, "mid", results[2].ID)
}

func TestSearchResultsSatisfyFilters(t *testing.T) {
	events := []models.Event{
		makeEvent("a", "Yoga", 40.0, -75.0),
		makeEvent("b", "Soccer", 40.5, -74.5),
		makeEvent("c", "Yoga", 42.0, -71.0),
		makeEvent("d", "Yoga", 40.02, -75.01),
	}
	ref := &models.GeoPoint{Lat: 40.0, Lng: -75.0}
	radius := 30.0

	results := NewEngine().Search(events, Query{Activity: "Yoga", RadiusKm: &radius, Reference: ref})

	kept := make(map[string]bool)
	for _, res := range results {
		kept[res.ID] = true
		assert.Equal(t, "Yoga", res.Activity)
		require.NotNil(t, res.DistanceKm)
		assert.LessOrEqual(t, *res.DistanceKm, radius)
	}
	// Every excluded event violates at least one predicate.
	for _, event := range events {
		if kept[event.ID] {
			continue
		}
		violates := event.Activity != "Yoga" ||
			DistanceKm(*ref, event.Coordinates()) > radius
		assert.True(t, violates, "event %s was excluded without violating a predicate", event.ID)
	}
}
