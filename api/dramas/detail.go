package dramas

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/xianplay-api/api/middleware"
	"github.com/killallgit/xianplay-api/api/types"
	"github.com/killallgit/xianplay-api/internal/services/catalog"
)

// GetVIP returns the featured shelf
// @Summary      Featured shelf
// @Description  Titled columns of featured dramas. When the catalog cannot provide them the response has available=false and no columns.
// @Tags         dramas
// @Produce      json
// @Success      200 {object} types.VIPResponse "Featured columns"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Router       /api/v1/dramas/vip [get]
func GetVIP(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		feed, ok := deps.Catalog.GetVIP(c.Request.Context()).Get()
		if !ok {
			middleware.SkipCache(c)
			c.JSON(http.StatusOK, types.VIPResponse{
				BaseResponse: types.BaseResponse{
					Status:  types.StatusOK,
					Message: "Featured shelf unavailable",
				},
				Available: false,
				Columns:   []types.VIPColumn{},
			})
			return
		}

		c.JSON(http.StatusOK, types.VIPResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Fetched featured shelf",
			},
			Available: true,
			Columns:   types.FromVIPFeed(feed),
		})
	}
}

// GetDetail returns a single drama
// @Summary      Drama detail
// @Description  One drama by its catalog id, normalized, including its introduction
// @Tags         dramas
// @Produce      json
// @Param        bookId path string true "Catalog book id" example(41000102345)
// @Success      200 {object} types.DramaDetailResponse "Drama"
// @Failure      404 {object} types.ErrorResponse "Drama not found or catalog unavailable"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Router       /api/v1/dramas/{bookId} [get]
func GetDetail(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookID := c.Param("bookId")

		detail, ok := deps.Catalog.GetDetail(c.Request.Context(), bookID).Get()
		if !ok {
			types.SendNotFound(c, "Drama not found")
			return
		}

		drama := catalog.Normalize(detail.RawDrama)
		if drama.ID == "" {
			drama.ID = bookID
		}

		c.JSON(http.StatusOK, types.DramaDetailResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Fetched drama",
			},
			Drama: drama,
		})
	}
}
