package dramas

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/xianplay-api/api/middleware"
	"github.com/killallgit/xianplay-api/api/types"
	"github.com/killallgit/xianplay-api/internal/services/catalog"
)

// shelf fetches one list of raw dramas from the catalog
type shelf func(client types.CatalogClient, ctx context.Context) []catalog.RawDrama

// listHandler serves a shelf. Volatile shelves and empty results, which may
// mean the catalog was down, are never cached.
func listHandler(deps *types.Dependencies, fetch shelf, message string, volatile bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		dramas := catalog.NormalizeAll(fetch(deps.Catalog, c.Request.Context()))
		if volatile || len(dramas) == 0 {
			middleware.SkipCache(c)
		}

		c.JSON(http.StatusOK, types.DramaListResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: message,
			},
			Dramas: dramas,
			Count:  len(dramas),
		})
	}
}

// GetTrending returns the trending shelf
// @Summary      Trending dramas
// @Description  Trending dramas from the catalog. An unavailable catalog yields an empty list, never an error.
// @Tags         dramas
// @Produce      json
// @Success      200 {object} types.DramaListResponse "Trending dramas"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Router       /api/v1/dramas/trending [get]
func GetTrending(deps *types.Dependencies) gin.HandlerFunc {
	return listHandler(deps, types.CatalogClient.GetTrending, "Fetched trending dramas", false)
}

// GetLatest returns the newest releases
// @Summary      Latest dramas
// @Description  Newest releases from the catalog. An unavailable catalog yields an empty list.
// @Tags         dramas
// @Produce      json
// @Success      200 {object} types.DramaListResponse "Latest dramas"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Router       /api/v1/dramas/latest [get]
func GetLatest(deps *types.Dependencies) gin.HandlerFunc {
	return listHandler(deps, types.CatalogClient.GetLatest, "Fetched latest dramas", false)
}

// GetPopular returns the popular-search shelf
// @Summary      Popular dramas
// @Description  Most searched dramas. An unavailable catalog yields an empty list.
// @Tags         dramas
// @Produce      json
// @Success      200 {object} types.DramaListResponse "Popular dramas"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Router       /api/v1/dramas/popular [get]
func GetPopular(deps *types.Dependencies) gin.HandlerFunc {
	return listHandler(deps, types.CatalogClient.GetPopularSearch, "Fetched popular dramas", false)
}

// GetRandom returns a random selection
// @Summary      Random dramas
// @Description  A random selection of dramas. An unavailable catalog yields an empty list.
// @Tags         dramas
// @Produce      json
// @Success      200 {object} types.DramaListResponse "Random dramas"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Router       /api/v1/dramas/random [get]
func GetRandom(deps *types.Dependencies) gin.HandlerFunc {
	return listHandler(deps, types.CatalogClient.GetRandom, "Fetched random dramas", true)
}

// Search returns dramas matching a query
// @Summary      Search dramas
// @Description  Search the catalog by free text. An unavailable catalog yields an empty list.
// @Tags         dramas
// @Produce      json
// @Param        query query string true "Search term" example(ceo)
// @Success      200 {object} types.DramaListResponse "Matching dramas"
// @Failure      400 {object} types.ErrorResponse "Missing query"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Router       /api/v1/dramas/search [get]
func Search(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		if query == "" {
			types.SendBadRequest(c, "query parameter is required")
			return
		}

		dramas := catalog.NormalizeAll(deps.Catalog.Search(c.Request.Context(), query))
		if len(dramas) == 0 {
			middleware.SkipCache(c)
		}

		c.JSON(http.StatusOK, types.DramaListResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Search completed",
			},
			Dramas: dramas,
			Query:  query,
			Count:  len(dramas),
		})
	}
}
