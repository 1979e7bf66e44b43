package library

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/killallgit/xianplay-api/internal/models"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements LibraryRepository interface
var _ LibraryRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListMyList(ctx context.Context, clientID string) ([]models.MyListItem, error) {
	items := []models.MyListItem{}
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("added_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("listing my list: %w", err)
	}
	return items, nil
}

// AddMyListItem inserts the item unless the client already saved that drama.
// It reports whether a row was created.
func (r *Repository) AddMyListItem(ctx context.Context, item *models.MyListItem) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "drama_id"}},
			DoNothing: true,
		}).
		Create(item)
	if result.Error != nil {
		return false, fmt.Errorf("adding to my list: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) GetMyListItem(ctx context.Context, clientID, dramaID string) (*models.MyListItem, error) {
	var item models.MyListItem
	if err := r.db.WithContext(ctx).
		Where("client_id = ? AND drama_id = ?", clientID, dramaID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting my list item: %w", err)
	}
	return &item, nil
}

// DeleteMyListItem reports whether a row was removed
func (r *Repository) DeleteMyListItem(ctx context.Context, clientID, dramaID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("client_id = ? AND drama_id = ?", clientID, dramaID).
		Delete(&models.MyListItem{})
	if result.Error != nil {
		return false, fmt.Errorf("removing from my list: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) ListHistory(ctx context.Context, clientID string) ([]models.WatchHistoryEntry, error) {
	entries := []models.WatchHistoryEntry{}
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("watched_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return entries, nil
}

// UpsertHistory writes the entry, replacing any earlier entry for the same
// drama, then drops all but the keep most recent entries for the client.
func (r *Repository) UpsertHistory(ctx context.Context, entry *models.WatchHistoryEntry, keep int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "drama_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "cover_url", "episode", "progress", "watched_at"}),
		}).Create(entry).Error; err != nil {
			return fmt.Errorf("upserting history: %w", err)
		}

		if keep <= 0 {
			return nil
		}

		var ids []uint
		if err := tx.Model(&models.WatchHistoryEntry{}).
			Where("client_id = ?", entry.ClientID).
			Order("watched_at DESC, id DESC").
			Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("loading history ids: %w", err)
		}
		if len(ids) <= keep {
			return nil
		}

		if err := tx.Delete(&models.WatchHistoryEntry{}, ids[keep:]).Error; err != nil {
			return fmt.Errorf("trimming history: %w", err)
		}
		return nil
	})
}
