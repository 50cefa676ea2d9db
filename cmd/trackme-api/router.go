package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/trackme-api/internal/handler"
	"github.com/noah-isme/trackme-api/internal/middleware"
	"github.com/noah-isme/trackme-api/internal/repository"
	"github.com/noah-isme/trackme-api/internal/service"
	"github.com/noah-isme/trackme-api/pkg/config"
	"github.com/noah-isme/trackme-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/trackme-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/trackme-api/pkg/middleware/requestid"
	"github.com/noah-isme/trackme-api/web"
)

// buildRouter wires repositories, services and handlers onto a gin engine.
// redisClient may be nil, in which case statistics are never cached.
func buildRouter(ctx context.Context, cfg *config.Config, logr *zap.Logger, db *sqlx.DB, redisClient *redis.Client) (*gin.Engine, error) {
	loc := cfg.Location()
	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	habitRepo := repository.NewHabitRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled && redisClient != nil)

	userSvc := service.NewUserService(userRepo, validate, logr)
	user, err := userSvc.Ensure(ctx, cfg.DefaultUsername)
	if err != nil {
		return nil, fmt.Errorf("resolve default user: %w", err)
	}
	logr.Info("acting user resolved", zap.String("username", user.Username), zap.String("user_id", user.ID))

	habitSvc := service.NewHabitService(service.HabitServiceParams{
		Habits:    habitRepo,
		Stats:     statsRepo,
		Cache:     cacheSvc,
		Metrics:   metricsSvc,
		Validator: validate,
		Logger:    logr,
		Location:  loc,
	})
	attendanceSvc := service.NewAttendanceService(service.AttendanceServiceParams{
		Subjects:   subjectRepo,
		Attendance: attendanceRepo,
		Cache:      cacheSvc,
		Metrics:    metricsSvc,
		Validator:  validate,
		Logger:     logr,
		Location:   loc,
	})
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Habits:     habitRepo,
		Attendance: attendanceRepo,
		Users:      userRepo,
		Cache:      cacheSvc,
		Logger:     logr,
		Location:   loc,
	})
	chartSvc := service.NewChartService(statsRepo, cacheSvc, loc, logr)

	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	habitHandler := handler.NewHabitHandler(habitSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	chartHandler := handler.NewChartHandler(chartSvc)
	timetableHandler := handler.NewTimetableHandler(web.TimetableHTML)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, db, cacheRepo, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metricsSvc != nil {
		r.Use(middleware.Metrics(metricsSvc, "/metrics", "/health", "/ready"))
	}

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	if metricsSvc != nil {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	app := r.Group("/")
	app.Use(middleware.CurrentUser(user.ID))
	{
		app.GET("", dashboardHandler.Summary)
		app.GET("timetable", timetableHandler.Page)

		app.GET("habits", habitHandler.Page)
		app.POST("habits", habitHandler.Create)
		app.POST("toggle/:habit_id", habitHandler.Toggle)

		app.GET("attendance", attendanceHandler.Page)
		app.POST("mark-attendance", attendanceHandler.Mark)
	}

	api := r.Group("/api")
	api.Use(middleware.CurrentUser(user.ID))
	{
		api.DELETE("/delete_habit/:habit_id", habitHandler.Delete)
		api.POST("/subjects", attendanceHandler.CreateSubject)
		api.DELETE("/subjects/:subject_id", attendanceHandler.DeleteSubject)
		api.GET("/attendance-stats", attendanceHandler.Stats)
		api.GET("/subject_stats/:subject_id", attendanceHandler.SubjectStats)
		api.GET("/chart-data/:period", chartHandler.Data)
	}

	return r, nil
}
