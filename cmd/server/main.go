package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"saiyan/training-app/internal/api"
	"saiyan/training-app/internal/config"
	"saiyan/training-app/internal/domain"
	"saiyan/training-app/internal/logging"
	"saiyan/training-app/internal/metrics"
	"saiyan/training-app/internal/progression"
	"saiyan/training-app/internal/repository"
	"saiyan/training-app/internal/repository/memory"
	"saiyan/training-app/internal/repository/mongo"
	"saiyan/training-app/internal/service"
	"saiyan/training-app/internal/session"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.Stdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	log.Infof("starting training server, catalog source: %s", cfg.Catalog.Source)

	goal := domain.FitnessGoal(cfg.User.Goal)
	if !goal.Valid() {
		log.Fatalf("unknown user goal %q", cfg.User.Goal)
	}
	loc, err := cfg.Streak.Location()
	if err != nil {
		log.Fatalf("streak timezone: %s", err)
	}

	// --- Catalog ---
	catalogRepo, closeCatalog, err := setupCatalog(cfg)
	if err != nil {
		log.Fatalf("could not set up catalog: %s", err)
	}
	defer closeCatalog()

	// --- Initialize Repositories ---
	profileRepo := memory.NewProfileRepository(domain.Profile{
		ID:   uuid.New(),
		Name: cfg.User.Name,
		Goal: goal,
	})
	logRepo := memory.NewLogRepository()

	// --- Initialize Services ---
	metricsManager := metrics.NewManager("saiyan", "training", prometheus.DefaultRegisterer)
	initial := domain.NewUserState()
	initial.PowerLevel = cfg.User.PowerLevel

	trainingService := service.NewTrainingService(
		profileRepo,
		catalogRepo,
		logRepo,
		progression.NewEngine(progression.WithLocation(loc)),
		session.Intervals{Rest: cfg.Session.RestTick, Elapsed: cfg.Session.ElapsedTick},
		initial,
		metricsManager,
	)
	defer trainingService.Close()
	dietService := service.NewDietService(profileRepo, catalogRepo)
	rivalService := service.NewRivalService(catalogRepo)

	// --- Initialize Gin Engine ---
	if log.GetLevel() < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	api.SetupRoutes(router, metricsManager, promhttp.Handler(), trainingService, dietService, rivalService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %s", err)
	}
	log.Info("server exiting")
}

// setupCatalog returns the configured catalog and a func releasing its resources.
func setupCatalog(cfg config.Config) (repository.CatalogRepository, func(), error) {
	sample := memory.SampleCatalog()
	if cfg.Catalog.Source == config.CatalogSourceMemory {
		return memory.NewCatalogRepository(sample), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := mongo.ConnectDB(ctx, cfg.Database.URI)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	closeFn := func() {
		log.Info("disconnecting MongoDB...")
		if err := mongo.DisconnectDB(client); err != nil {
			log.Errorf("disconnect MongoDB: %s", err)
		}
	}

	db := client.Database(cfg.Database.Name)
	mongo.EnsureCatalogIndexes(ctx, db)
	if cfg.Catalog.Seed {
		if err := mongo.SeedCatalog(ctx, db, sample.Workouts, sample.MealPlans, sample.Rivals); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("seed catalog: %w", err)
		}
	}
	log.Infof("catalog served from MongoDB database %s", cfg.Database.Name)
	return mongo.NewMongoCatalogRepository(db), closeFn, nil
}
