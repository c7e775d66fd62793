package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports process liveness. The predictor is loaded before the
// server starts, so a responding process always has a usable predictor.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"predictor": "loaded",
	})
}
