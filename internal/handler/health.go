package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Root returns the API greeting served at /.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Página inicial da API!!"})
}

// Health returns a JSON health check response, pinging the database with a
// short timeout.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		status := http.StatusOK
		if dbStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"message": "API em funcionamento!!",
			"db":      dbStatus,
		})
	}
}
