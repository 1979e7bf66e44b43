package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/xianplay-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports liveness and the state of the library database. Returns 503 when a configured database is unreachable.
// @Tags         system
// @Produce      json
// @Success      200 {object} types.HealthResponse "Healthy"
// @Failure      503 {object} types.HealthResponse "Database unreachable"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		database := getDatabaseStatus(deps)

		status, code := "ok", http.StatusOK
		if database["status"] == "unhealthy" {
			status, code = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(code, types.HealthResponse{
			Status:    status,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Database:  database,
		})
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) map[string]string {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return map[string]string{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return map[string]string{"status": "unhealthy", "error": err.Error()}
	}

	return map[string]string{"status": "healthy"}
}
