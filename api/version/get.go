package version

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/xianplay-api/pkg/version"
)

// Get handles version requests
// @Summary      Service information
// @Description  Name and build metadata of the running service
// @Tags         system
// @Produce      json
// @Success      200 {object} version.Info "Build metadata"
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, version.Get())
	}
}
