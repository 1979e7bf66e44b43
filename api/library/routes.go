package library

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/xianplay-api/api/types"
)

// RegisterRoutes registers library routes. All of them are scoped by the
// X-Client-ID header.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/mylist", GetMyList(deps))
	router.POST("/mylist", PostMyList(deps))
	router.HEAD("/mylist/:dramaId", HeadMyList(deps))
	router.DELETE("/mylist/:dramaId", DeleteMyList(deps))

	router.GET("/history", GetHistory(deps))
	router.PUT("/history", PutHistory(deps))
}
