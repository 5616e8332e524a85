package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// Response reports liveness plus how long the process has been up
type Response struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Version       string `json:"version,omitempty"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:        "healthy",
		Service:       "linkhive",
		Version:       "1.0.0",
		UptimeSeconds: int64(time.Since(startedAt).Seconds()),
	})
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
