// Package router wires handlers and middleware onto an Echo instance.
package router

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/gym-management/internal/config"
	"github.com/iliyamo/gym-management/internal/handler"
	"github.com/iliyamo/gym-management/internal/middleware"
	"github.com/iliyamo/gym-management/internal/report"
)

// Deps are the collaborators the routes need. Redis may be nil, in which
// case requests are not rate limited.
type Deps struct {
	Gym       *handler.GymHandler
	Reports   *handler.ReportHandler
	DB        handler.Pinger
	Redis     *redis.Client
	RateLimit config.RateLimitConfig
	Log       *slog.Logger
}

// New builds the Echo instance with every route registered.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(d.Log))

	RegisterRoutes(e, d.DB)

	v1 := e.Group("/v1", middleware.NewTokenBucket(d.RateLimit, d.Redis, d.Log))
	RegisterWrites(v1, d.Gym)
	RegisterReads(v1, d.Gym)
	RegisterReports(v1, d.Reports)
	return e
}

// RegisterRoutes registers the unversioned operational endpoints.
func RegisterRoutes(e *echo.Echo, db handler.Pinger) {
	e.GET("/healthz", handler.Health(db))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterWrites maps one POST per entity.
func RegisterWrites(g *echo.Group, h *handler.GymHandler) {
	g.POST("/memberships", h.CreateMembership)
	g.POST("/users", h.RegisterUser)
	g.POST("/trainers", h.CreateTrainer)
	g.POST("/attendance", h.LogAttendance)
	g.POST("/workouts", h.RecordWorkout)
	g.POST("/equipment", h.CreateEquipment)
	g.POST("/equipment-usage", h.RecordEquipmentUsage)
	g.POST("/payments", h.RecordPayment)
	g.POST("/sessions", h.ScheduleSession)
	g.POST("/training-plans", h.AssignTrainingPlan)
	g.POST("/feedback", h.SubmitFeedback)
	g.POST("/health-metrics", h.RecordHealthMetrics)
}

// RegisterReads maps the read-by-identity endpoints.
func RegisterReads(g *echo.Group, h *handler.GymHandler) {
	g.GET("/memberships/:id", h.GetMembership)
	g.GET("/users/:id", h.GetUser)
	g.GET("/trainers/:id", h.GetTrainer)
	g.GET("/attendance/:id", h.GetAttendance)
	g.GET("/workouts/:id", h.GetWorkout)
	g.GET("/equipment/:id", h.GetEquipment)
	g.GET("/equipment-usage/:equipment_id/:workout_id", h.GetEquipmentUsage)
	g.GET("/payments/:id", h.GetPayment)
	g.GET("/sessions/:id", h.GetSession)
	g.GET("/training-plans/:id", h.GetTrainingPlan)
	g.GET("/feedback/:id", h.GetFeedback)
	g.GET("/health-metrics/:id", h.GetHealthMetrics)
}

// RegisterReports maps GET /v1/reports/<kind> for every report kind.
func RegisterReports(g *echo.Group, h *handler.ReportHandler) {
	g.GET("/reports", h.List)
	for _, k := range report.Kinds {
		g.GET("/reports/"+k.Slug(), h.Report(k))
	}
}
