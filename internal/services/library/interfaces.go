package library

import (
	"context"

	"github.com/killallgit/xianplay-api/internal/models"
)

// LibraryRepository defines persistence for saved dramas and watch history
type LibraryRepository interface {
	// My list
	ListMyList(ctx context.Context, clientID string) ([]models.MyListItem, error)
	AddMyListItem(ctx context.Context, item *models.MyListItem) (bool, error)
	GetMyListItem(ctx context.Context, clientID, dramaID string) (*models.MyListItem, error)
	DeleteMyListItem(ctx context.Context, clientID, dramaID string) (bool, error)

	// Watch history
	ListHistory(ctx context.Context, clientID string) ([]models.WatchHistoryEntry, error)
	UpsertHistory(ctx context.Context, entry *models.WatchHistoryEntry, keep int) error
}

// LibraryService defines the per-client library operations exposed over HTTP.
// Every error it returns is an *errors.AppError.
type LibraryService interface {
	ListMyList(ctx context.Context, clientID string) ([]models.MyListItem, error)
	AddToMyList(ctx context.Context, clientID string, item models.MyListItem) (*models.MyListItem, error)
	RemoveFromMyList(ctx context.Context, clientID, dramaID string) error
	InMyList(ctx context.Context, clientID, dramaID string) (bool, error)

	ListHistory(ctx context.Context, clientID string) ([]models.WatchHistoryEntry, error)
	RecordProgress(ctx context.Context, clientID string, entry models.WatchHistoryEntry) (*models.WatchHistoryEntry, error)
}
