package router

import (
	"github.com/clubops/checkin-api/internal/attendance"
	"github.com/clubops/checkin-api/internal/auth"
	"github.com/clubops/checkin-api/internal/checkin"
	"github.com/clubops/checkin-api/internal/config"
	"github.com/clubops/checkin-api/internal/meta"
	"github.com/clubops/checkin-api/internal/roster"
	"github.com/clubops/checkin-api/internal/shared/middleware"
	"github.com/clubops/checkin-api/internal/shared/token"
	"github.com/clubops/checkin-api/internal/store"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, st store.Store) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, st)
	router.GET("/health", metaHandler.Health)

	// shared services
	tokenManager := token.NewJWTManager(cfg)

	// service
	authService := auth.NewService(cfg, tokenManager)
	checkinService := checkin.NewService(st)
	attendanceService := attendance.NewService(st)
	rosterService := roster.NewService(st)

	// handler
	authHandler := auth.NewHandler(authService)
	checkinHandler := checkin.NewHandler(checkinService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	rosterHandler := roster.NewHandler(rosterService)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/login", authHandler.Login)
		authV1.POST("/refresh", authHandler.Refresh)
	}

	// Kiosk surface: no auth, members check themselves in
	checkinV1 := router.Group("/api/v1")
	{
		checkinV1.POST("/checkins", checkinHandler.Record)
		checkinV1.GET("/sessions", rosterHandler.ListSessions)
		checkinV1.GET("/sessions/:id/checkins", checkinHandler.List)
		checkinV1.GET("/sessions/:id/attendance", attendanceHandler.Report)
		checkinV1.GET("/sessions/:id/attendance/export", attendanceHandler.Export)
	}

	// Admin surface: roster and calendar mutations behind JWT
	adminV1 := router.Group("/api/v1")
	adminV1.Use(middleware.JWT(cfg))
	{
		adminV1.GET("/members", rosterHandler.ListMembers)
		adminV1.POST("/members", rosterHandler.CreateMember)
		adminV1.PUT("/members/:id", rosterHandler.UpdateMember)
		adminV1.DELETE("/members/:id", rosterHandler.DeleteMember)

		adminV1.POST("/sessions", rosterHandler.CreateSession)
		adminV1.PUT("/sessions/:id", rosterHandler.UpdateSession)
		adminV1.DELETE("/sessions/:id", rosterHandler.DeleteSession)
	}
}
