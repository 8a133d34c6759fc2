package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trainspot/services/booking"
	"trainspot/services/coach"
	"trainspot/services/trainee"
	"trainspot/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Anything unrecognised is a failed store round trip: surfaced as 503, scoped
// to this one operation, retryable by re-invoking it.
func respondServiceError(c *gin.Context, err error) {
	var coachValidation *coach.ValidationError
	var traineeValidation *trainee.ValidationError
	var notFound *booking.NotFoundError
	var conflict *booking.ConflictError

	switch {
	case errors.As(err, &coachValidation), errors.As(err, &traineeValidation):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "Event not found", err.Error())
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, "Event already booked", err.Error())
	default:
		utils.JSONError(c, http.StatusServiceUnavailable, "Event store unavailable", err.Error())
	}
}
