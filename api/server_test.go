package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/xianplay-api/api/types"
	"github.com/killallgit/xianplay-api/internal/database"
	"github.com/killallgit/xianplay-api/internal/services/catalog"
	"github.com/killallgit/xianplay-api/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080, ReadTimeout: time.Second, WriteTimeout: time.Second},
		Relay:  config.RelayConfig{AllowedDomains: []string{"127.0.0.1"}},
		Cache:  config.CacheConfig{Enabled: true, TTL: time.Minute, MaxSizeMB: 1},
		RateLimiting: config.RateLimitConfig{
			Enabled: true,
			Endpoints: map[string]config.RateLimit{
				"catalog": {RPS: 1, Burst: 3},
			},
		},
		Security: config.SecurityConfig{EnableCORS: true, EnableRequestID: true, MaxRequestBytes: 1024},
	}
}

func newTestServer(t *testing.T, cfg *config.Config, withDB bool) (*Server, *atomic.Int32) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var catalogCalls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		catalogCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"bookId":"1","bookName":"Hidden Heir","chapterCount":80}]`))
	}))
	t.Cleanup(upstream.Close)

	deps := &types.Dependencies{
		Catalog: catalog.NewClient(catalog.Config{BaseURL: upstream.URL}),
	}
	if withDB {
		db, err := database.Initialize(":memory:", false)
		require.NoError(t, err)
		require.NoError(t, db.Migrate())
		t.Cleanup(func() { _ = db.Close() })
		deps.DB = db
	}

	server := NewServer(cfg)
	server.SetDependencies(deps)
	require.NoError(t, server.Initialize())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})

	return server, &catalogCalls
}

func serve(s *Server, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestServer_Routes(t *testing.T) {
	server, _ := newTestServer(t, testConfig(), true)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"version", http.MethodGet, "/", http.StatusOK},
		{"docs redirect", http.MethodGet, "/docs", http.StatusMovedPermanently},
		{"trending", http.MethodGet, "/api/v1/dramas/trending", http.StatusOK},
		{"relay without url", http.MethodGet, "/api/image-proxy", http.StatusBadRequest},
		{"library without client id", http.MethodGet, "/api/v1/library/mylist", http.StatusBadRequest},
		{"unknown route", http.MethodGet, "/api/v2/anything", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(server, tt.method, tt.path, nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		})
	}

	assert.Equal(t, "127.0.0.1:8080", server.Addr())
}

func TestServer_LibraryDisabledWithoutDatabase(t *testing.T) {
	server, _ := newTestServer(t, testConfig(), false)

	assert.False(t, server.Dependencies().LibraryEnabled())

	header := http.Header{types.ClientIDHeader: []string{uuid.NewString()}}
	w := serve(server, http.MethodGet, "/api/v1/library/mylist", header)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_CatalogResponsesAreCached(t *testing.T) {
	server, calls := newTestServer(t, testConfig(), false)

	first := serve(server, http.MethodGet, "/api/v1/dramas/trending", nil)
	second := serve(server, http.MethodGet, "/api/v1/dramas/trending", nil)

	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, int32(1), calls.Load())
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestServer_CatalogCacheTTLByPath(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimiting.Enabled = false
	cfg.Cache.TTLByPath = map[string]time.Duration{"/api/v1/dramas/trending": time.Nanosecond}
	server, calls := newTestServer(t, cfg, false)

	serve(server, http.MethodGet, "/api/v1/dramas/trending", nil)
	time.Sleep(time.Millisecond)
	trending := serve(server, http.MethodGet, "/api/v1/dramas/trending", nil)

	serve(server, http.MethodGet, "/api/v1/dramas/latest", nil)
	latest := serve(server, http.MethodGet, "/api/v1/dramas/latest", nil)

	assert.Equal(t, "MISS", trending.Header().Get("X-Cache"), "trending entry expires on its own TTL")
	assert.Equal(t, "HIT", latest.Header().Get("X-Cache"), "other shelves keep the default TTL")
	assert.Equal(t, int32(3), calls.Load())
}

func TestServer_CatalogRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = false
	server, _ := newTestServer(t, cfg, false)

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		codes = append(codes, serve(server, http.MethodGet, "/api/v1/dramas/latest", nil).Code)
	}

	assert.Equal(t, []int{200, 200, 200}, codes[:3])
	assert.Contains(t, codes[3:], http.StatusTooManyRequests)

	// health is never limited
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(server, http.MethodGet, "/health", nil).Code)
	}
}

func TestRegisterRoutes_RequiresConfig(t *testing.T) {
	err := RegisterRoutes(gin.New(), &types.Dependencies{}, nil, nil, nil, nil)
	assert.Error(t, err)
}
