package relay

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/killallgit/xianplay-api/api/types"
	relaysvc "github.com/killallgit/xianplay-api/internal/services/relay"
	apperrors "github.com/killallgit/xianplay-api/pkg/errors"
)

// GetImage relays an allow-listed image so browsers can load it cross-origin
// @Summary      Image relay
// @Description  Fetches a cover image from an allow-listed host with browser-like headers and returns the bytes with a one-day cache lifetime. The url parameter may be percent-encoded once more; it is decoded before the allow-list check.
// @Tags         relay
// @Produce      image/jpeg
// @Produce      image/webp
// @Produce      json
// @Param        url query string true "Percent-encoded image URL" example(https%3A%2F%2Fthumbwsrv.drmbox.xyz%2Fcover.jpg)
// @Success      200 "Image bytes"
// @Failure      400 {object} types.RelayErrorResponse "URL parameter required"
// @Failure      403 {object} types.RelayErrorResponse "Domain not allowed"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} types.RelayErrorResponse "Proxy failed"
// @Failure      502 {object} types.RelayErrorResponse "Failed to fetch image (the upstream status is passed through)"
// @Router       /api/image-proxy [get]
func GetImage(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := deps.Relay.Relay(c.Request.Context(), c.Query("url"))
		if err != nil {
			sendRelayError(c, err)
			return
		}

		c.Header("Cache-Control", relaysvc.CacheControl)
		c.Header("Access-Control-Allow-Origin", "*")
		c.Data(http.StatusOK, resp.ContentType, resp.Body)
	}
}

func sendRelayError(c *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.UnknownFailure(err)
	}

	if appErr.Code == apperrors.ErrCodeUnknownFailure {
		logrus.WithError(err).Error("image relay failed")
	}

	c.JSON(appErr.GetHTTPCode(), types.RelayErrorResponse{Error: appErr.Message})
}
