package dramas

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/xianplay-api/api/types"
	"github.com/killallgit/xianplay-api/internal/services/catalog"
)

// MockCatalog is a mock implementation of types.CatalogClient
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetTrending(ctx context.Context) []catalog.RawDrama {
	ret := m.Called(ctx)
	dramas, _ := ret.Get(0).([]catalog.RawDrama)
	return dramas
}

func (m *MockCatalog) GetLatest(ctx context.Context) []catalog.RawDrama {
	ret := m.Called(ctx)
	dramas, _ := ret.Get(0).([]catalog.RawDrama)
	return dramas
}

func (m *MockCatalog) GetPopularSearch(ctx context.Context) []catalog.RawDrama {
	ret := m.Called(ctx)
	dramas, _ := ret.Get(0).([]catalog.RawDrama)
	return dramas
}

func (m *MockCatalog) GetVIP(ctx context.Context) mo.Option[catalog.VIPFeed] {
	return m.Called(ctx).Get(0).(mo.Option[catalog.VIPFeed])
}

func (m *MockCatalog) Search(ctx context.Context, query string) []catalog.RawDrama {
	ret := m.Called(ctx, query)
	dramas, _ := ret.Get(0).([]catalog.RawDrama)
	return dramas
}

func (m *MockCatalog) GetDetail(ctx context.Context, bookID string) mo.Option[catalog.DramaDetail] {
	return m.Called(ctx, bookID).Get(0).(mo.Option[catalog.DramaDetail])
}

func (m *MockCatalog) GetAllEpisodes(ctx context.Context, bookID string) []catalog.Episode {
	ret := m.Called(ctx, bookID)
	episodes, _ := ret.Get(0).([]catalog.Episode)
	return episodes
}

func (m *MockCatalog) GetRandom(ctx context.Context) []catalog.RawDrama {
	ret := m.Called(ctx)
	dramas, _ := ret.Get(0).([]catalog.RawDrama)
	return dramas
}

func setupRouter(client *MockCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1/dramas"), &types.Dependencies{Catalog: client})
	return router
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func sampleEpisodes() []catalog.Episode {
	return []catalog.Episode{
		{
			ChapterID:   "c0",
			ChapterName: "EP 1",
			CdnList: []catalog.CDN{{VideoPathList: []catalog.Rendition{
				{Quality: 540, VideoPath: "https://cdn/0-540.mp4"},
				{Quality: 720, IsDefault: true, VideoPath: "https://cdn/0-720.mp4"},
				{Quality: 1080, VideoPath: "https://cdn/0-1080.mp4"},
			}}},
		},
		{
			ChapterID:   "c1",
			ChapterName: "EP 2",
			CdnList:     []catalog.CDN{{VideoPathList: []catalog.Rendition{}}},
		},
	}
}

func TestShelves(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		method string
	}{
		{name: "trending", path: "/api/v1/dramas/trending", method: "GetTrending"},
		{name: "latest", path: "/api/v1/dramas/latest", method: "GetLatest"},
		{name: "popular", path: "/api/v1/dramas/popular", method: "GetPopularSearch"},
		{name: "random", path: "/api/v1/dramas/random", method: "GetRandom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &MockCatalog{}
			client.On(tt.method, mock.Anything).Return([]catalog.RawDrama{
				{BookID: "1", BookName: "First", ChapterCount: 60, Tags: catalog.Tags{"Romance"}},
				{Title: "Second", Cover: "https://cdn/2.jpg"},
			})

			w := doGet(t, setupRouter(client), tt.path)

			assert.Equal(t, http.StatusOK, w.Code)
			var resp types.DramaListResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, types.StatusOK, resp.Status)
			require.Equal(t, 2, resp.Count)
			assert.Equal(t, catalog.DramaSummary{ID: "1", Title: "First", EpisodeCount: "60", Tag: "Romance"}, resp.Dramas[0])
			assert.Equal(t, "https://cdn/2.jpg", resp.Dramas[1].CoverURL)
			client.AssertExpectations(t)
		})
	}
}

func TestShelfDegradedCatalog(t *testing.T) {
	client := &MockCatalog{}
	client.On("GetTrending", mock.Anything).Return([]catalog.RawDrama{})

	w := doGet(t, setupRouter(client), "/api/v1/dramas/trending")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Fetched trending dramas","dramas":[],"count":0}`, w.Body.String())
}

func TestSearch(t *testing.T) {
	client := &MockCatalog{}
	client.On("Search", mock.Anything, "ceo wife").Return([]catalog.RawDrama{{BookID: "9", BookName: "CEO"}})
	router := setupRouter(client)

	w := doGet(t, router, "/api/v1/dramas/search?query=ceo+wife")
	assert.Equal(t, http.StatusOK, w.Code)
	var resp types.DramaListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ceo wife", resp.Query)
	assert.Equal(t, 1, resp.Count)

	w = doGet(t, router, "/api/v1/dramas/search")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	client.AssertNumberOfCalls(t, "Search", 1)
}

func TestGetVIP(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		client := &MockCatalog{}
		client.On("GetVIP", mock.Anything).Return(mo.Some(catalog.VIPFeed{Columns: []catalog.VIPColumn{
			{Title: "Hot", BookList: []catalog.RawDrama{{BookID: "1", BookName: "A"}}},
		}}))

		w := doGet(t, setupRouter(client), "/api/v1/dramas/vip")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp types.VIPResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Available)
		require.Len(t, resp.Columns, 1)
		assert.Equal(t, "Hot", resp.Columns[0].Title)
		assert.Equal(t, "A", resp.Columns[0].Dramas[0].Title)
	})

	t.Run("unavailable", func(t *testing.T) {
		client := &MockCatalog{}
		client.On("GetVIP", mock.Anything).Return(mo.None[catalog.VIPFeed]())

		w := doGet(t, setupRouter(client), "/api/v1/dramas/vip")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp types.VIPResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Available)
		assert.NotNil(t, resp.Columns)
		assert.Empty(t, resp.Columns)
	})
}

func TestGetDetail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client := &MockCatalog{}
		client.On("GetDetail", mock.Anything, "41000").Return(mo.Some(catalog.DramaDetail{RawDrama: catalog.RawDrama{
			BookName:     "Detail",
			Introduction: "A story",
		}}))

		w := doGet(t, setupRouter(client), "/api/v1/dramas/41000")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp types.DramaDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "41000", resp.Drama.ID)
		assert.Equal(t, "Detail", resp.Drama.Title)
		assert.Equal(t, "A story", resp.Drama.Introduction)
		assert.Equal(t, "?", resp.Drama.EpisodeCount)
	})

	t.Run("absent", func(t *testing.T) {
		client := &MockCatalog{}
		client.On("GetDetail", mock.Anything, "missing").Return(mo.None[catalog.DramaDetail]())

		w := doGet(t, setupRouter(client), "/api/v1/dramas/missing")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetEpisodes(t *testing.T) {
	client := &MockCatalog{}
	client.On("GetAllEpisodes", mock.Anything, "41000").Return(sampleEpisodes())

	w := doGet(t, setupRouter(client), "/api/v1/dramas/41000/episodes")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp types.EpisodesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "41000", resp.DramaID)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "c0", resp.Episodes[0].ID)
	assert.Len(t, resp.Episodes[0].Renditions, 3)
	assert.Empty(t, resp.Episodes[1].Renditions)
}

func TestGetStream(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantStatus  int
		wantURL     string
		wantQuality int
	}{
		{name: "default quality", path: "/api/v1/dramas/41000/episodes/0/stream", wantStatus: http.StatusOK, wantURL: "https://cdn/0-720.mp4", wantQuality: 720},
		{name: "exact quality", path: "/api/v1/dramas/41000/episodes/0/stream?quality=1080", wantStatus: http.StatusOK, wantURL: "https://cdn/0-1080.mp4", wantQuality: 1080},
		{name: "missing quality falls back to default", path: "/api/v1/dramas/41000/episodes/0/stream?quality=2160", wantStatus: http.StatusOK, wantURL: "https://cdn/0-720.mp4", wantQuality: 720},
		{name: "no playable rendition", path: "/api/v1/dramas/41000/episodes/1/stream", wantStatus: http.StatusNotFound},
		{name: "index out of range", path: "/api/v1/dramas/41000/episodes/5/stream", wantStatus: http.StatusNotFound},
		{name: "non-numeric index", path: "/api/v1/dramas/41000/episodes/first/stream", wantStatus: http.StatusBadRequest},
		{name: "non-numeric quality", path: "/api/v1/dramas/41000/episodes/0/stream?quality=hd", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &MockCatalog{}
			client.On("GetAllEpisodes", mock.Anything, "41000").Return(sampleEpisodes())

			w := doGet(t, setupRouter(client), tt.path)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp types.StreamResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantURL, resp.URL)
			assert.Equal(t, tt.wantQuality, resp.Quality)
			assert.Equal(t, []int{540, 720, 1080}, resp.Qualities)
		})
	}
}
