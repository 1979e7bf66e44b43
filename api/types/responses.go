package types

import (
	"github.com/killallgit/xianplay-api/internal/models"
	"github.com/killallgit/xianplay-api/internal/services/catalog"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// DramaListResponse for every drama shelf and search
type DramaListResponse struct {
	BaseResponse
	Dramas []catalog.DramaSummary `json:"dramas"`
	Query  string                 `json:"query,omitempty"`
	Count  int                    `json:"count"`
}

// VIPResponse for the featured shelf. Available is false when the catalog
// could not provide it.
type VIPResponse struct {
	BaseResponse
	Available bool        `json:"available"`
	Columns   []VIPColumn `json:"columns"`
}

// DramaDetailResponse for a single drama
type DramaDetailResponse struct {
	BaseResponse
	Drama catalog.DramaSummary `json:"drama"`
}

// EpisodesResponse for the episode list of a drama
type EpisodesResponse struct {
	BaseResponse
	DramaID  string    `json:"dramaId"`
	Episodes []Episode `json:"episodes"`
	Count    int       `json:"count"`
}

// StreamResponse carries the playback URL chosen for an episode
type StreamResponse struct {
	BaseResponse
	DramaID          string `json:"dramaId"`
	Index            int    `json:"index"`
	RequestedQuality int    `json:"requestedQuality"`
	Quality          int    `json:"quality"` // quality of the chosen rendition, 0 if unknown
	URL              string `json:"url"`
	Qualities        []int  `json:"qualities"`
}

// MyListResponse for the saved dramas of a client
type MyListResponse struct {
	BaseResponse
	Items []models.MyListItem `json:"items"`
	Count int                 `json:"count"`
}

// MyListItemResponse for a single saved drama
type MyListItemResponse struct {
	BaseResponse
	Item *models.MyListItem `json:"item"`
}

// HistoryResponse for the watch history of a client
type HistoryResponse struct {
	BaseResponse
	Entries []models.WatchHistoryEntry `json:"entries"`
	Count   int                        `json:"count"`
}

// HistoryEntryResponse for a single recorded history entry
type HistoryEntryResponse struct {
	BaseResponse
	Entry *models.WatchHistoryEntry `json:"entry"`
}

// RelayErrorResponse is the body of a failed image relay. The shape is fixed
// because browser clients match on the message.
type RelayErrorResponse struct {
	Error string `json:"error" example:"Domain not allowed"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Database  map[string]string `json:"database"`
}
