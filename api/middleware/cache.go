package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/killallgit/xianplay-api/internal/services/cache"
)

const skipCacheKey = "cache.skip"

// CacheConfig configures ResponseCache
type CacheConfig struct {
	Cache      cache.Cache
	DefaultTTL time.Duration
	TTLByPath  map[string]time.Duration // longest matching path prefix wins
	Enabled    bool
}

// SkipCache marks the current response as not cacheable. Handlers call it
// when they serve a degraded result that should not outlive the request.
func SkipCache(c *gin.Context) {
	c.Set(skipCacheKey, true)
}

// cachedResponse is what gets stored for a GET
type cachedResponse struct {
	Status      int       `json:"status"`
	ContentType string    `json:"contentType"`
	Body        []byte    `json:"body"`
	ETag        string    `json:"etag"`
	CachedAt    time.Time `json:"cachedAt"`
}

// captureWriter tees the response body so it can be stored after the handler ran
type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ResponseCache serves repeated GETs from cfg.Cache. Only 200 responses are
// stored. X-Cache reports HIT, MISS or BYPASS.
func ResponseCache(cfg CacheConfig) gin.HandlerFunc {
	log := logrus.WithField("component", "response_cache")

	return func(c *gin.Context) {
		if !cfg.Enabled || cfg.Cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		if shouldBypassCache(c.Request) {
			c.Header("X-Cache", "BYPASS")
			c.Next()
			return
		}

		key := cacheKey(c.Request)

		if data, ok := cfg.Cache.Get(c.Request.Context(), key); ok {
			var resp cachedResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				if match := c.GetHeader("If-None-Match"); match != "" && match == resp.ETag {
					c.Header("ETag", resp.ETag)
					c.AbortWithStatus(http.StatusNotModified)
					return
				}
				c.Header("X-Cache", "HIT")
				c.Header("ETag", resp.ETag)
				c.Header("Age", strconv.Itoa(int(time.Since(resp.CachedAt).Seconds())))
				c.Data(resp.Status, resp.ContentType, resp.Body)
				c.Abort()
				return
			}
			log.WithField("key", key).Warn("dropping unreadable cache entry")
			_ = cfg.Cache.Delete(context.Background(), key)
		}

		c.Header("X-Cache", "MISS")

		w := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w

		c.Next()

		if c.GetBool(skipCacheKey) || w.Status() != http.StatusOK || w.body.Len() == 0 {
			return
		}

		body := w.body.Bytes()
		data, err := json.Marshal(cachedResponse{
			Status:      w.Status(),
			ContentType: w.Header().Get("Content-Type"),
			Body:        body,
			ETag:        etag(body),
			CachedAt:    time.Now(),
		})
		if err != nil {
			return
		}
		if err := cfg.Cache.Set(context.Background(), key, data, ttlFor(cfg, c.Request.URL.Path)); err != nil {
			log.WithError(err).Warn("failed to store response")
		}
	}
}

func ttlFor(cfg CacheConfig, path string) time.Duration {
	ttl, matched := cfg.DefaultTTL, 0
	for prefix, prefixTTL := range cfg.TTLByPath {
		if strings.HasPrefix(path, prefix) && len(prefix) > matched {
			ttl, matched = prefixTTL, len(prefix)
		}
	}
	return ttl
}

// shouldBypassCache honors client no-cache, no-store and max-age=0
func shouldBypassCache(req *http.Request) bool {
	if req.Header.Get("Pragma") == "no-cache" {
		return true
	}
	for _, directive := range strings.Split(strings.ToLower(req.Header.Get("Cache-Control")), ",") {
		switch strings.TrimSpace(directive) {
		case "no-cache", "no-store", "max-age=0":
			return true
		}
	}
	return false
}

// cacheKey is the path plus query parameters in sorted order
func cacheKey(req *http.Request) string {
	params := req.URL.Query()
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := []string{req.URL.Path}
	for _, k := range keys {
		for _, v := range params[k] {
			parts = append(parts, k+"="+v)
		}
	}
	return "http:" + strings.Join(parts, "&")
}

func etag(body []byte) string {
	sum := sha256.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}
