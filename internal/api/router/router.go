package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"student-management/backend/config"
	"student-management/backend/internal/api/handler"
	"student-management/backend/internal/api/middleware"
	"student-management/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.RateLimit(rdb, cfg.Server.RateLimit, time.Minute))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 学生模块
		students := v1.Group("/students")
		{
			students.GET("", h.Student.ListStudents)
			students.GET("/:id", h.Student.GetStudent)
			students.POST("", h.Student.RegisterStudent)
			students.PUT("/:id", h.Student.UpdateStudent)
		}

		// 申请状态模块
		statuses := v1.Group("/application-statuses")
		{
			statuses.GET("", h.ApplicationStatus.ListStatuses)
			statuses.GET("/:id", h.ApplicationStatus.GetStatus)
			statuses.POST("", h.ApplicationStatus.CreateStatus)
			statuses.PUT("/:id", h.ApplicationStatus.UpdateStatus)
			statuses.DELETE("/:id", h.ApplicationStatus.DeleteStatus)
		}

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/students", h.Export.ExportStudents)
			export.GET("/students/:id/calendar", h.Export.ExportCourseCalendar)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
