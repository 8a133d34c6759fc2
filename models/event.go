package models

// Event status values. Once booked, an event never returns to available;
// the only exit from either status is deletion by the coach.
const (
	StatusAvailable = "available"
	StatusBooked    = "booked"
)

// Activities is the fixed catalog of activity kinds a coach may publish.
var Activities = []string{
	"Soccer",
	"Basketball",
	"Tennis",
	"Swimming",
	"Yoga",
	"Gymnastics",
	"Martial Arts",
	"Running",
	"Cycling",
	"CrossFit",
}

// IsValidActivity reports whether a belongs to the activity catalog.
func IsValidActivity(a string) bool {
	for _, known := range Activities {
		if known == a {
			return true
		}
	}
	return false
}

// Event represents a coach-published activity slot.
type Event struct {
	ID       string `bson:"id" json:"id"`
	Activity string `bson:"activity" json:"activity"`
	// Location is the human-readable label from the place search surface
	// ("Name, formatted address"); empty when the coach only clicked the map.
	Location string `bson:"location,omitempty" json:"location"`
	Date     string `bson:"date" json:"date"` // "2006-01-02"
	Time     string `bson:"time" json:"time"` // "15:04", no timezone
	// Lat/Lng are pointers so an event whose coach never set a map point is
	// representable; such events are excluded from geospatial search.
	Lat       *float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng       *float64 `bson:"lng,omitempty" json:"lng,omitempty"`
	Status    string   `bson:"status" json:"status"`
	TraineeID *string  `bson:"traineeId" json:"traineeId"`
}

// HasCoordinates reports whether the event carries a usable map point.
func (e *Event) HasCoordinates() bool {
	return e.Lat != nil && e.Lng != nil
}

// Coordinates returns the event's map point. Only meaningful when
// HasCoordinates is true.
func (e *Event) Coordinates() GeoPoint {
	return GeoPoint{Lat: *e.Lat, Lng: *e.Lng}
}

// IsBooked reports whether the event has been taken by a trainee.
func (e *Event) IsBooked() bool {
	return e.Status == StatusBooked
}

// SearchResult is an Event annotated with the distance from the trainee's
// reference point, rounded to two decimals. Ephemeral; never persisted.
// DistanceKm is nil only when no reference point could be resolved.
type SearchResult struct {
	Event
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// SearchResponse bundles the ranked results with the marker feed the map
// surface renders.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Markers []Marker       `json:"markers"`
}

// BookingConfirmation is returned to a trainee whose apply won the event.
type BookingConfirmation struct {
	EventID   string `json:"eventId"`
	TraineeID string `json:"traineeId"`
	Status    string `json:"status"`
}

// CreateEventRequest defines the payload for publishing a new event.
type CreateEventRequest struct {
	Activity string   `json:"activity" binding:"required"`
	Location string   `json:"location"`
	Date     string   `json:"date" binding:"required"`
	Time     string   `json:"time" binding:"required"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
}

// SearchRequest defines the payload for a trainee search. The reference point
// is resolved in order: explicit Reference, then the session identified by
// SessionID, then the configured default.
type SearchRequest struct {
	Activity  string    `json:"activity"`
	RadiusKm  *float64  `json:"radiusKm"`
	SessionID string    `json:"sessionId"`
	Reference *GeoPoint `json:"reference"`
}

// StartSessionRequest captures the geolocation source's one-shot position fix.
type StartSessionRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}
