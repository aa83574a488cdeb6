package handlers

import (
	"net/http"

	"backbar/models"
	"backbar/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the back-to-back availability check endpoint.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
	Logger  *zap.Logger
}

func NewAvailabilityHandler(svc availability.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// CheckHandler handles POST /check. The calling voice agent branches on the
// success flag in the body, so domain failures never surface as transport
// errors: every outcome is HTTP 200 with a structured result.
func (h *AvailabilityHandler) CheckHandler(c *gin.Context) {
	var req models.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("check: rejecting malformed payload", zap.Error(err))
		c.JSON(http.StatusOK, models.CheckResponse{
			Success: false,
			Error:   "invalid request body: " + err.Error(),
		})
		return
	}

	resp := h.Service.CheckBackToBack(c.Request.Context(), req)
	c.JSON(http.StatusOK, resp)
}
