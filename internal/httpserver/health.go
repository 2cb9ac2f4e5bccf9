package httpserver

import (
	"github.com/gin-gonic/gin"

	"smart-task-analyzer/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Smart Task Analyzer"
	HealthVersion = "1.0.0"
	ServiceName   = "smart-task-analyzer"
)

func healthPayload(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthPayload("healthy"))
}

// readyCheck reports the weights and calendar the scorer is currently using.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic and show the active scoring weights
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	payload := healthPayload("ready")
	payload["weights"] = srv.weights.LoadWeights(c.Request.Context())
	payload["timezone"] = srv.dateMath.Location().String()
	response.OK(c, payload)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthPayload("alive"))
}
