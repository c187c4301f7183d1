package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Key of the request id on the gin context.
const RequestIdKey = "request_id"

// HealthHandler answers the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// GetHealth always answers ok while the process serves requests.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
