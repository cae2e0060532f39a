package routes

import (
	"net/http"

	"github.com/ARQAP/quanti-backend/src/metrics"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupSystemRoutes registers the health check and, when m is set, the Prometheus endpoint
func SetupSystemRoutes(router *gin.Engine, db *gorm.DB, m *metrics.Metrics) {
	router.GET("/health", func(ctx *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx.Request.Context())
		}
		if err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}
}
