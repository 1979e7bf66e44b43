package library

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/xianplay-api/api/types"
)

// GetHistory returns the client's watch history
// @Summary      Watch history
// @Description  Most recently watched dramas of the calling client, newest first, at most 20
// @Tags         library
// @Produce      json
// @Param        X-Client-ID header string true "Client UUID" example(0b6f4f2e-3c1a-4a47-9a1e-3a0a9b7f1c55)
// @Success      200 {object} types.HistoryResponse "History entries"
// @Failure      400 {object} types.ErrorResponse "Missing or malformed client id"
// @Failure      500 {object} types.ErrorResponse "Database error"
// @Router       /api/v1/library/history [get]
func GetHistory(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := deps.Library.ListHistory(c.Request.Context(), c.GetHeader(types.ClientIDHeader))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.HistoryResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Fetched watch history",
			},
			Entries: entries,
			Count:   len(entries),
		})
	}
}

// PutHistory records watch progress
// @Summary      Record watch progress
// @Description  Upserts the history entry for a drama and moves it to the front. Only the 20 most recent entries are kept.
// @Tags         library
// @Accept       json
// @Produce      json
// @Param        X-Client-ID header string true "Client UUID" example(0b6f4f2e-3c1a-4a47-9a1e-3a0a9b7f1c55)
// @Param        request body types.RecordProgressRequest true "Progress update"
// @Success      200 {object} types.HistoryEntryResponse "Recorded entry"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Database error"
// @Router       /api/v1/library/history [put]
func PutHistory(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RecordProgressRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		entry, err := deps.Library.RecordProgress(c.Request.Context(), c.GetHeader(types.ClientIDHeader), req.ToHistoryEntry())
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.HistoryEntryResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Recorded progress",
			},
			Entry: entry,
		})
	}
}
