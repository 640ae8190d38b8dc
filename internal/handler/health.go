package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/abhishek622/careerOS/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Health pings the database
// GET /health
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		h.Logger.Warn("health: database unreachable", zap.Error(err))
		response.ServiceUnavailable(c, "database unreachable")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{})
}
