package relay

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/xianplay-api/api/types"
)

// RegisterRoutes registers the image relay route
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/image-proxy?url=
	router.GET("/image-proxy", GetImage(deps))
}
