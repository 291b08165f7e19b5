package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/studivo/studivo-backend/internal/handlers"
	"github.com/studivo/studivo-backend/internal/logger"
	"github.com/studivo/studivo-backend/internal/middleware"
)

type RouterConfig struct {
	Log             *logger.Logger
	AllowedOrigins  []string
	ServiceName     string
	ModuleHandler   *handlers.ModuleHandler
	TimeSlotHandler *handlers.TimeSlotHandler
	UploadHandler   *handlers.UploadHandler
	PlanHandler     *handlers.PlanHandler
	GuideHandler    *handlers.GuideHandler
	ExportHandler   *handlers.ExportHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(otelgin.Middleware(cfg.ServiceName))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Modules
		api.POST("/modules", cfg.ModuleHandler.Create)
		api.GET("/modules", cfg.ModuleHandler.List)
		api.GET("/modules/:id", cfg.ModuleHandler.Get)
		api.PUT("/modules/:id", cfg.ModuleHandler.Update)
		api.DELETE("/modules/:id", cfg.ModuleHandler.Delete)
		api.POST("/modules/:id/assessments", cfg.ModuleHandler.AddAssessment)
		api.PUT("/assessments/:id", cfg.ModuleHandler.UpdateAssessment)
		api.DELETE("/assessments/:id", cfg.ModuleHandler.DeleteAssessment)
		// Static segments under /modules would collide with the :id
		// wildcard, so extraction and export live one level up.
		api.GET("/export/modules", cfg.ExportHandler.ModulesJSON)

		// Document extraction
		api.POST("/documents/extract", cfg.UploadHandler.ExtractModules)

		// Time slots
		api.POST("/timeslots", cfg.TimeSlotHandler.Create)
		api.GET("/timeslots", cfg.TimeSlotHandler.List)
		api.PUT("/timeslots/:id", cfg.TimeSlotHandler.Update)
		api.DELETE("/timeslots/:id", cfg.TimeSlotHandler.Delete)

		// Plan
		api.POST("/plan/generate", cfg.PlanHandler.Generate)
		api.GET("/plan", cfg.PlanHandler.Current)
		api.DELETE("/plan", cfg.PlanHandler.Delete)
		api.GET("/plan/export/csv", cfg.ExportHandler.PlanCSV)
		api.GET("/plan/export/json", cfg.ExportHandler.PlanJSON)

		// Execution guides
		api.POST("/plan/weeks/elaborate", cfg.GuideHandler.ElaborateWeek)
		api.GET("/sessions/:id/guide", cfg.GuideHandler.GetGuide)
		api.DELETE("/sessions/:id/guide", cfg.GuideHandler.DeleteGuide)
		api.GET("/guides", cfg.GuideHandler.ListGuides)
		api.DELETE("/guides", cfg.GuideHandler.DeleteAllGuides)
	}

	return router
}

// SplitOrigins parses a comma separated origin list from the environment.
func SplitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
