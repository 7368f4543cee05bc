package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/liftlog/internal/handler"
	"github.com/liftlog/internal/logging"
	"go.uber.org/zap"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(logging.Recovery(logger), logging.Gin(logger))

	r.GET("/healthz", api.HealthCheck)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/workouts", api.ListWorkouts)
		apiGroup.POST("/workouts", api.CreateWorkout)
		apiGroup.GET("/workouts/:id", api.GetWorkout)
		apiGroup.PATCH("/workouts/:id", api.RenameWorkout)
		apiGroup.PUT("/workouts/:id", api.ReplaceWorkout)
		apiGroup.DELETE("/workouts/:id", api.DeleteWorkout)

		apiGroup.GET("/workouts/:id/exercises", api.ListExercises)
		apiGroup.POST("/workouts/:id/exercises", api.CreateExercise)
		apiGroup.DELETE("/workouts/:id/exercises", api.DeleteExercises)

		apiGroup.POST("/history", api.RecordWeight)
		apiGroup.GET("/history/recent", api.RecentHistory)
		apiGroup.GET("/exercises/:id/history", api.ListExerciseHistory)

		apiGroup.GET("/export", api.ExportData)
		apiGroup.POST("/import", api.ImportData)
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
			return
		}
		c.Status(http.StatusNotFound)
	})

	return r
}
