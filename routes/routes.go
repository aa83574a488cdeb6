package routes

import (
	"time"

	"backbar/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires up the availability endpoints.
func RegisterRoutes(r *gin.Engine, availabilityHandler *handlers.AvailabilityHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	r.POST("/check", availabilityHandler.CheckHandler)
	r.GET("/health", handlers.HealthHandler)
}
