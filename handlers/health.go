package handlers

import (
	"net/http"

	"github.com/komo3344/airbnb-backend/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health with the latest monitor snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code, label := http.StatusOK, "ok"
	if !status.Healthy() {
		code, label = http.StatusServiceUnavailable, "degraded"
	}
	c.JSON(code, gin.H{
		"status":    label,
		"services":  status.Services,
		"checkedAt": status.CheckedAt,
	})
}
