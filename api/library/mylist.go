package library

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/xianplay-api/api/types"
)

// GetMyList returns the client's saved dramas
// @Summary      List saved dramas
// @Description  Saved dramas of the calling client, newest first
// @Tags         library
// @Produce      json
// @Param        X-Client-ID header string true "Client UUID" example(0b6f4f2e-3c1a-4a47-9a1e-3a0a9b7f1c55)
// @Success      200 {object} types.MyListResponse "Saved dramas"
// @Failure      400 {object} types.ErrorResponse "Missing or malformed client id"
// @Failure      500 {object} types.ErrorResponse "Database error"
// @Router       /api/v1/library/mylist [get]
func GetMyList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := deps.Library.ListMyList(c.Request.Context(), c.GetHeader(types.ClientIDHeader))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.MyListResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Fetched my list",
			},
			Items: items,
			Count: len(items),
		})
	}
}

// PostMyList saves a drama for the client
// @Summary      Save a drama
// @Description  Adds a drama to the client's list. Saving the same drama again returns the existing item.
// @Tags         library
// @Accept       json
// @Produce      json
// @Param        X-Client-ID header string true "Client UUID" example(0b6f4f2e-3c1a-4a47-9a1e-3a0a9b7f1c55)
// @Param        request body types.AddToMyListRequest true "Drama to save"
// @Success      201 {object} types.MyListItemResponse "Saved item"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Database error"
// @Router       /api/v1/library/mylist [post]
func PostMyList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AddToMyListRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		item, err := deps.Library.AddToMyList(c.Request.Context(), c.GetHeader(types.ClientIDHeader), req.ToMyListItem())
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.MyListItemResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Saved to my list",
			},
			Item: item,
		})
	}
}

// DeleteMyList removes a saved drama
// @Summary      Remove a saved drama
// @Tags         library
// @Produce      json
// @Param        X-Client-ID header string true "Client UUID" example(0b6f4f2e-3c1a-4a47-9a1e-3a0a9b7f1c55)
// @Param        dramaId path string true "Catalog book id" example(41000102345)
// @Success      204 "Removed"
// @Failure      400 {object} types.ErrorResponse "Missing or malformed client id"
// @Failure      404 {object} types.ErrorResponse "Drama not in the list"
// @Failure      500 {object} types.ErrorResponse "Database error"
// @Router       /api/v1/library/mylist/{dramaId} [delete]
func DeleteMyList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := deps.Library.RemoveFromMyList(c.Request.Context(), c.GetHeader(types.ClientIDHeader), c.Param("dramaId"))
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// HeadMyList reports whether a drama is saved, without a body
// @Summary      Check a saved drama
// @Tags         library
// @Param        X-Client-ID header string true "Client UUID" example(0b6f4f2e-3c1a-4a47-9a1e-3a0a9b7f1c55)
// @Param        dramaId path string true "Catalog book id" example(41000102345)
// @Success      204 "Saved"
// @Failure      400 "Missing or malformed client id"
// @Failure      404 "Not saved"
// @Router       /api/v1/library/mylist/{dramaId} [head]
func HeadMyList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		saved, err := deps.Library.InMyList(c.Request.Context(), c.GetHeader(types.ClientIDHeader), c.Param("dramaId"))
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		if !saved {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
