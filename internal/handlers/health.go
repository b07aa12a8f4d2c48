package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
	Data   string `json:"data"`
}

// HealthCheck reports whether the data directory is reachable.
func (a *API) HealthCheck(c *gin.Context) {
	response := HealthResponse{Status: "ok"}

	if _, err := os.Stat(a.store.Dir()); err != nil {
		response.Data = "unavailable"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	response.Data = "available"
	c.JSON(http.StatusOK, response)
}
