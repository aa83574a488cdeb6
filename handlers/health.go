package handlers

import (
	"net/http"

	"backbar/utils"

	"github.com/gin-gonic/gin"
)

// Version is the running service version reported by /health.
const Version = "2.1.0"

// HealthHandler handles GET /health with a static capability description and
// the latest external-service health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"service":     "Check Group Stylist Availability",
		"version":     Version,
		"description": "Check specific stylist availability for multiple services (group back-to-back bookings)",
		"features": []string{
			"dynamic active employee fetching (1-hour cache)",
			"formatted date fields (day_of_week, formatted_date, formatted_time, formatted_full)",
			"windowed parallel scans to bypass the upstream per-query opening cap",
		},
		"stylists": "dynamic (fetched from Meevo API)",
		"health":   utils.GetHealthStatus(),
	})
}
