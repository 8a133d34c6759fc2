package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trainspot/models"
	"trainspot/services/trainee"
	"trainspot/utils"
)

// TraineeHandler exposes the trainee workflow over HTTP.
type TraineeHandler struct {
	Service trainee.Service
}

// NewTraineeHandler constructs a TraineeHandler.
func NewTraineeHandler(svc trainee.Service) *TraineeHandler {
	return &TraineeHandler{Service: svc}
}

// StartSessionHandler stores the geolocation source's position fix and returns
// a session id the trainee quotes on subsequent searches.
func (h *TraineeHandler) StartSessionHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	sessionID, err := h.Service.StartSession(c.Request.Context(), models.GeoPoint{Lat: *req.Lat, Lng: *req.Lng})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID})
}

// SearchHandler runs a search over the available partition. An empty result
// list is a normal outcome, not an error.
func (h *TraineeHandler) SearchHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	resp, err := h.Service.Search(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ApplyHandler books the event for the authenticated trainee. A lost race
// returns 409 so the client can prompt a fresh search.
func (h *TraineeHandler) ApplyHandler(c *gin.Context) {
	traineeIDValue, exists := c.Get("traineeID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Trainee not identified"})
		return
	}
	traineeID, _ := traineeIDValue.(string)

	confirmation, err := h.Service.Apply(c.Request.Context(), c.Param("id"), traineeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booked the event successfully",
		"booking": confirmation,
	})
}
