package search

import (
	"math"

	"trainspot/models"
)

// Earth radius in kilometers.
const earthRadiusKm = 6371

// DistanceKm calculates the great-circle distance (in km) between two lat/lng
// points using the haversine formula. Symmetric; zero for identical points.
func DistanceKm(a, b models.GeoPoint) float64 {
	dLat := (b.Lat - a.Lat) * (math.Pi / 180)
	dLng := (b.Lng - a.Lng) * (math.Pi / 180)
	lat1Rad := a.Lat * (math.Pi / 180)
	lat2Rad := b.Lat * (math.Pi / 180)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// roundKm rounds a distance to two decimals for display.
func roundKm(d float64) float64 {
	return math.Round(d*100) / 100
}
