package dramas

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/killallgit/xianplay-api/api/middleware"
	"github.com/killallgit/xianplay-api/api/types"
	"github.com/killallgit/xianplay-api/internal/services/catalog"
)

// GetEpisodes returns every episode of a drama
// @Summary      Drama episodes
// @Description  All episodes of a drama in catalog order with their renditions. An unavailable catalog yields an empty list.
// @Tags         dramas
// @Produce      json
// @Param        bookId path string true "Catalog book id" example(41000102345)
// @Success      200 {object} types.EpisodesResponse "Episodes"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Router       /api/v1/dramas/{bookId}/episodes [get]
func GetEpisodes(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookID := c.Param("bookId")
		episodes := types.FromCatalogEpisodes(deps.Catalog.GetAllEpisodes(c.Request.Context(), bookID))
		if len(episodes) == 0 {
			middleware.SkipCache(c)
		}

		c.JSON(http.StatusOK, types.EpisodesResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Fetched episodes",
			},
			DramaID:  bookID,
			Episodes: episodes,
			Count:    len(episodes),
		})
	}
}

// GetStream picks the playback URL for one episode
// @Summary      Episode playback URL
// @Description  Chooses a rendition of the episode at the given position: the requested quality, else the default rendition, else the first one
// @Tags         dramas
// @Produce      json
// @Param        bookId  path  string true  "Catalog book id" example(41000102345)
// @Param        index   path  int    true  "Zero-based episode position" minimum(0) example(0)
// @Param        quality query int    false "Preferred vertical resolution" default(720) example(1080)
// @Success      200 {object} types.StreamResponse "Playback URL"
// @Failure      400 {object} types.ErrorResponse "Invalid index or quality"
// @Failure      404 {object} types.ErrorResponse "No such episode or no playable rendition"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Router       /api/v1/dramas/{bookId}/episodes/{index}/stream [get]
func GetStream(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, ok := types.ParseIntParam(c, "index")
		if !ok {
			return
		}
		quality, ok := types.ParseIntQuery(c, "quality", catalog.DefaultQuality)
		if !ok {
			return
		}

		bookID := c.Param("bookId")
		episodes := deps.Catalog.GetAllEpisodes(c.Request.Context(), bookID)
		if index >= len(episodes) {
			types.SendNotFound(c, "Episode not found")
			return
		}

		episode := episodes[index]
		url, ok := catalog.SelectRendition(episode, quality).Get()
		if !ok {
			types.SendNotFound(c, "No playable rendition for this episode")
			return
		}

		chosen, _ := lo.Find(episode.Renditions(), func(r catalog.Rendition) bool { return r.VideoPath == url })

		c.JSON(http.StatusOK, types.StreamResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Selected rendition",
			},
			DramaID:          bookID,
			Index:            index,
			RequestedQuality: quality,
			Quality:          int(chosen.Quality),
			URL:              url,
			Qualities:        catalog.Qualities(episode),
		})
	}
}
