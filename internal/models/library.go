package models

import (
	"time"
)

// MyListItem is a drama a client has saved for later
type MyListItem struct {
	ID       uint      `json:"-" gorm:"primaryKey"`
	ClientID string    `json:"-" gorm:"not null;uniqueIndex:idx_mylist_client_drama"`
	DramaID  string    `json:"dramaId" gorm:"not null;uniqueIndex:idx_mylist_client_drama"`
	Title    string    `json:"title"`
	CoverURL string    `json:"coverUrl"`
	AddedAt  time.Time `json:"addedAt" gorm:"not null;index"`
}

// WatchHistoryEntry records how far a client got into a drama. There is at
// most one entry per client and drama.
type WatchHistoryEntry struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	ClientID  string    `json:"-" gorm:"not null;uniqueIndex:idx_history_client_drama;index:idx_history_client_watched"`
	DramaID   string    `json:"dramaId" gorm:"not null;uniqueIndex:idx_history_client_drama"`
	Title     string    `json:"title"`
	CoverURL  string    `json:"coverUrl"`
	Episode   int       `json:"episode"`
	Progress  float64   `json:"progress"` // percent watched, 0-100
	WatchedAt time.Time `json:"watchedAt" gorm:"not null;index:idx_history_client_watched"`
}

// All returns every model the library schema is built from
func All() []any {
	return []any{
		&MyListItem{},
		&WatchHistoryEntry{},
	}
}
