// File: trainspot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trainspot/config"
	"trainspot/database"
	eventRepo "trainspot/database/repository/event"
	"trainspot/handlers"
	"trainspot/models"
	"trainspot/routes"
	"trainspot/services/booking"
	"trainspot/services/catalog"
	"trainspot/services/coach"
	"trainspot/services/search"
	"trainspot/services/trainee"
	"trainspot/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// repositories.
	repo := eventRepo.NewMongoEventRepo(config.AppConfig.DatabaseName)

	// services.
	eventCatalog := catalog.New(repo)
	stateMachine := &booking.DefaultStateMachine{Repo: repo}
	sessions := trainee.NewSessionStore(utils.GetSessionCacheClient())

	var defaultRef *models.GeoPoint
	if config.AppConfig.DefaultRefLat != nil && config.AppConfig.DefaultRefLng != nil {
		defaultRef = &models.GeoPoint{
			Lat: *config.AppConfig.DefaultRefLat,
			Lng: *config.AppConfig.DefaultRefLng,
		}
	}

	coachService := &coach.DefaultService{
		Repo:    repo,
		Catalog: eventCatalog,
	}
	traineeService := &trainee.DefaultService{
		Catalog:          eventCatalog,
		Engine:           search.NewEngine(),
		Machine:          stateMachine,
		Sessions:         sessions,
		DefaultReference: defaultRef,
	}

	coachHandler := handlers.NewCoachHandler(coachService)
	traineeHandler := handlers.NewTraineeHandler(traineeService)

	router := routes.SetupRouter(coachHandler, traineeHandler, config.AppConfig.MaxRequestsPerMin)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
