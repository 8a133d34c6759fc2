package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trainspot/models"
	"trainspot/services/coach"
	"trainspot/utils"
)

// CoachHandler exposes the coach workflow over HTTP.
type CoachHandler struct {
	Service coach.Service
}

// NewCoachHandler constructs a CoachHandler.
func NewCoachHandler(svc coach.Service) *CoachHandler {
	return &CoachHandler{Service: svc}
}

// CreateEventHandler publishes a new event with status available.
func (h *CoachHandler) CreateEventHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid event creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	event, err := h.Service.CreateEvent(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"event":   event,
	})
}

// ListEventsHandler returns the coach's available and booked partitions.
func (h *CoachHandler) ListEventsHandler(c *gin.Context) {
	listing, err := h.Service.ListEvents(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// DeleteEventHandler cancels an event in either status. Idempotent.
func (h *CoachHandler) DeleteEventHandler(c *gin.Context) {
	eventID := c.Param("id")
	if err := h.Service.DeleteEvent(c.Request.Context(), eventID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// ListActivitiesHandler serves the fixed activity catalog.
func ListActivitiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"activities": models.Activities})
}
