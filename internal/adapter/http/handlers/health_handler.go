package handlers

import (
	"net/http"
	"time"

	response "polymesh/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	version string
	now     func() time.Time
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version, now: time.Now}
}

// Health godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200 {object} response.HealthResponse
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{
		Success:   true,
		Message:   "PolyMesh API is running",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Version:   h.version,
	})
}
