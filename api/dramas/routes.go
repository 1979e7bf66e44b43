package dramas

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/xianplay-api/api/types"
)

// RegisterRoutes registers drama catalog routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// Shelves: GET /api/v1/dramas/{shelf}
	router.GET("/trending", GetTrending(deps))
	router.GET("/latest", GetLatest(deps))
	router.GET("/popular", GetPopular(deps))
	router.GET("/random", GetRandom(deps))
	router.GET("/vip", GetVIP(deps))
	router.GET("/search", Search(deps))

	// Single drama
	router.GET("/:bookId", GetDetail(deps))
	router.GET("/:bookId/episodes", GetEpisodes(deps))
	router.GET("/:bookId/episodes/:index/stream", GetStream(deps))
}
