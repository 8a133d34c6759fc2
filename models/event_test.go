package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidActivity(t *testing.T) {
	for _, a := range Activities {
		assert.True(t, IsValidActivity(a))
	}
	assert.False(t, IsValidActivity(""))
	assert.False(t, IsValidActivity("Chess"))
	assert.False(t, IsValidActivity("yoga")) // catalog is case-sensitive
}

func TestHasCoordinates(t *testing.T) {
	lat, lng := 40.0, -75.0

	assert.True(t, (&Event{Lat: &lat, Lng: &lng}).HasCoordinates())
	assert.False(t, (&Event{Lat: &lat}).HasCoordinates())
	assert.False(t, (&Event{}).HasCoordinates())
}
