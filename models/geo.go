package models

// GeoPoint represents a geographic coordinate (WGS 84 decimal degrees).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Marker is the minimal shape the map rendering surface needs to place a pin
// for an event. Purely a display payload; carries no logic.
type Marker struct {
	EventID  string  `json:"eventId"`
	Activity string  `json:"activity"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}
