package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"trainspot/handlers"
	"trainspot/middleware"
	"trainspot/utils"
)

// RegisterCoachRoutes registers coach workflow endpoints.
func RegisterCoachRoutes(r *gin.Engine, h *handlers.CoachHandler) {
	api := r.Group("/api/coach")
	{
		api.POST("/events", h.CreateEventHandler)
		api.GET("/events", h.ListEventsHandler)
		api.DELETE("/events/:id", h.DeleteEventHandler)
	}
}

// RegisterTraineeRoutes registers trainee workflow endpoints. Apply requires
// the injected trainee identity; session start and search do not.
func RegisterTraineeRoutes(r *gin.Engine, h *handlers.TraineeHandler) {
	api := r.Group("/api/trainee")
	{
		api.POST("/session", h.StartSessionHandler)
		api.POST("/search", h.SearchHandler)

		protected := api.Group("")
		protected.Use(middleware.TraineeIdentityMiddleware())
		protected.POST("/events/:id/apply", h.ApplyHandler)
	}
}

// SetupRouter assembles the router with shared middleware and all routes.
func SetupRouter(coachHandler *handlers.CoachHandler, traineeHandler *handlers.TraineeHandler, maxRequestsPerMin int) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Trainee-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RateLimitMiddleware(maxRequestsPerMin))

	router.GET("/healthz", handlers.HealthHandler)
	router.GET("/api/activities", handlers.ListActivitiesHandler)

	RegisterCoachRoutes(router, coachHandler)
	RegisterTraineeRoutes(router, traineeHandler)
	return router
}
