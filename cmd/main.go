package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/studivo/studivo-backend/internal/db"
	"github.com/studivo/studivo-backend/internal/guidestore"
	"github.com/studivo/studivo-backend/internal/handlers"
	"github.com/studivo/studivo-backend/internal/logger"
	"github.com/studivo/studivo-backend/internal/observability"
	"github.com/studivo/studivo-backend/internal/openai"
	"github.com/studivo/studivo-backend/internal/prompts"
	"github.com/studivo/studivo-backend/internal/repos"
	"github.com/studivo/studivo-backend/internal/server"
	"github.com/studivo/studivo-backend/internal/services"
	"github.com/studivo/studivo-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "studivo-backend",
		Environment: utils.GetEnv("ENVIRONMENT", "development", log),
		Version:     utils.GetEnv("SERVICE_VERSION", "dev", log),
	})
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(ctx); err != nil {
			log.Warn("OTel shutdown failed", "error", err)
		}
	}()

	// Prompts
	prompts.RegisterAll()

	// Database
	dbService, err := db.NewDatabaseService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	moduleRepo := repos.NewModuleRepo(theDB, log)
	assessmentRepo := repos.NewAssessmentRepo(theDB, log)
	timeSlotRepo := repos.NewTimeSlotRepo(theDB, log)
	planRepo := repos.NewStudyPlanRepo(theDB, log)

	// Guide store: redis when configured, in-memory otherwise.
	var store guidestore.Store
	if os.Getenv("REDIS_ADDR") != "" {
		store, err = guidestore.NewRedisStore(log)
		if err != nil {
			log.Error("Redis guide store init failed", "error", err)
			os.Exit(1)
		}
	} else {
		log.Info("REDIS_ADDR not set, using in-memory guide store")
		store = guidestore.NewMemoryStore()
	}
	defer store.Close()

	// Model client. Without a key the CRUD surface still works;
	// generation endpoints return their missing-credential error.
	aiClient, err := openai.NewClient(log)
	if err != nil {
		log.Warn("OpenAI client unavailable, generation disabled", "error", err)
		aiClient = nil
	}

	// Services
	log.Info("Setting up services from main...")
	moduleService := services.NewModuleService(log, moduleRepo, assessmentRepo)
	timeSlotService := services.NewTimeSlotService(log, timeSlotRepo)
	extractionService := services.NewExtractionService(log, aiClient, moduleRepo)
	planService := services.NewPlanService(log, aiClient, moduleRepo, timeSlotRepo, planRepo, store)
	weekPlanService := services.NewWeekPlanService(log, aiClient, moduleRepo, planRepo, store)
	exportService := services.NewExportService(log, planRepo, moduleRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	moduleHandler := handlers.NewModuleHandler(log, moduleService)
	timeSlotHandler := handlers.NewTimeSlotHandler(log, timeSlotService)
	uploadHandler := handlers.NewUploadHandler(log, extractionService)
	planHandler := handlers.NewPlanHandler(log, planService)
	guideHandler := handlers.NewGuideHandler(log, weekPlanService)
	exportHandler := handlers.NewExportHandler(log, exportService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:             log,
		AllowedOrigins:  server.SplitOrigins(os.Getenv("CORS_ORIGINS")),
		ServiceName:     "studivo-backend",
		ModuleHandler:   moduleHandler,
		TimeSlotHandler: timeSlotHandler,
		UploadHandler:   uploadHandler,
		PlanHandler:     planHandler,
		GuideHandler:    guideHandler,
		ExportHandler:   exportHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server stopped", "error", err)
	}
}
