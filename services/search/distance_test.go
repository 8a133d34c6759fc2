package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trainspot/models"
)

func TestDistanceKmSymmetry(t *testing.T) {
	a := models.GeoPoint{Lat: 40.7128, Lng: -74.0060}
	b := models.GeoPoint{Lat: 34.0522, Lng: -118.2437}

	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
}

func TestDistanceKmIdenticalPoints(t *testing.T) {
	p := models.GeoPoint{Lat: 51.5074, Lng: -0.1278}
	assert.InDelta(t, 0, DistanceKm(p, p), 1e-9)
}

func TestDistanceKmNewYorkToLosAngeles(t *testing.T) {
	newYork := models.GeoPoint{Lat: 40.7128, Lng: -74.0060}
	losAngeles := models.GeoPoint{Lat: 34.0522, Lng: -118.2437}

	d := DistanceKm(newYork, losAngeles)
	assert.Greater(t, d, 3935.0)
	assert.Less(t, d, 3945.0)
}

func TestDistanceKmNonNegative(t *testing.T) {
	pairs := []struct {
		a, b models.GeoPoint
	}{
		{models.GeoPoint{Lat: 0, Lng: 0}, models.GeoPoint{Lat: 0, Lng: 180}},
		{models.GeoPoint{Lat: -89.9, Lng: 12}, models.GeoPoint{Lat: 89.9, Lng: -12}},
		{models.GeoPoint{Lat: 12.34, Lng: 56.78}, models.GeoPoint{Lat: 12.34, Lng: 56.78}},
	}
	for _, pair := range pairs {
		assert.GreaterOrEqual(t, DistanceKm(pair.a, pair.b), 0.0)
	}
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 3.14, roundKm(3.14159))
	assert.Equal(t, 2.0, roundKm(1.999))
	assert.Equal(t, 0.0, roundKm(0))
}
