package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"soroia/pkg/response"
)

// Service identity reported by the probes.
const (
	HealthMessage = "SoroIA, asistente del Museo Sorolla"
	HealthVersion = "1.0.0"
	ServiceName   = "soroia"
)

const readyTimeout = 2 * time.Second

// Pinger reports whether a backing store accepts connections. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func probeBody(status string) gin.H {
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
	response.OK(c, probeBody("healthy"))
}

// readyCheck pings the museum catalog. The assistant cannot answer data
// questions without it, so an unreachable catalog reports 503.
// @Summary Readiness Check
// @Description Check that the catalog database is reachable
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Catalog unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.catalog == nil {
		response.OK(c, probeBody("ready"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := srv.catalog.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: catalog ping failed: %v", err)
		response.ErrorWithStatus(c, http.StatusServiceUnavailable, http.StatusServiceUnavailable, err, map[string]interface{}{
			"status":  "unavailable",
			"service": ServiceName,
		})
		return
	}
	response.OK(c, probeBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, probeBody("alive"))
}
