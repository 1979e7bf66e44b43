package library

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/killallgit/xianplay-api/internal/models"
	apperrors "github.com/killallgit/xianplay-api/pkg/errors"
)

// DefaultHistoryLimit is how many watch history entries are kept per client
const DefaultHistoryLimit = 20

// Service implements the LibraryService interface with validation on top of a repository
type Service struct {
	repository   LibraryRepository
	historyLimit int
	now          func() time.Time
	log          *logrus.Entry
}

// Ensure Service implements LibraryService interface
var _ LibraryService = (*Service)(nil)

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithHistoryLimit sets how many history entries are kept per client
func WithHistoryLimit(limit int) ServiceOption {
	return func(s *Service) {
		if limit > 0 {
			s.historyLimit = limit
		}
	}
}

// WithClock replaces the time source used to stamp entries
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a new library service with optional configuration
func NewService(repository LibraryRepository, opts ...ServiceOption) *Service {
	s := &Service{
		repository:   repository,
		historyLimit: DefaultHistoryLimit,
		now:          time.Now,
		log:          logrus.WithField("component", "library"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ListMyList returns the client's saved dramas, newest first
func (s *Service) ListMyList(ctx context.Context, clientID string) ([]models.MyListItem, error) {
	if err := validateClientID(clientID); err != nil {
		return nil, err
	}

	items, err := s.repository.ListMyList(ctx, clientID)
	if err != nil {
		return nil, apperrors.DatabaseError("list my list", err)
	}
	return items, nil
}

// AddToMyList saves a drama for the client. Saving a drama twice keeps the
// first entry and returns it.
func (s *Service) AddToMyList(ctx context.Context, clientID string, item models.MyListItem) (*models.MyListItem, error) {
	if err := validateClientID(clientID); err != nil {
		return nil, err
	}
	dramaID, err := validateDramaID(item.DramaID)
	if err != nil {
		return nil, err
	}

	item.ID = 0
	item.ClientID = clientID
	item.DramaID = dramaID
	item.AddedAt = s.now().UTC()

	created, err := s.repository.AddMyListItem(ctx, &item)
	if err != nil {
		return nil, apperrors.DatabaseError("add to my list", err)
	}
	if created {
		s.log.WithFields(logrus.Fields{"client_id": clientID, "drama_id": dramaID}).Debug("added to my list")
		return &item, nil
	}

	existing, err := s.repository.GetMyListItem(ctx, clientID, dramaID)
	if err != nil {
		return nil, apperrors.DatabaseError("add to my list", err)
	}
	if existing == nil {
		return nil, apperrors.DatabaseError("add to my list", errMissingAfterConflict)
	}
	return existing, nil
}

// RemoveFromMyList deletes a saved drama
func (s *Service) RemoveFromMyList(ctx context.Context, clientID, dramaID string) error {
	if err := validateClientID(clientID); err != nil {
		return err
	}
	dramaID, err := validateDramaID(dramaID)
	if err != nil {
		return err
	}

	removed, err := s.repository.DeleteMyListItem(ctx, clientID, dramaID)
	if err != nil {
		return apperrors.DatabaseError("remove from my list", err)
	}
	if !removed {
		return apperrors.NotFound("my list item", dramaID)
	}
	return nil
}

// InMyList reports whether the client saved the drama
func (s *Service) InMyList(ctx context.Context, clientID, dramaID string) (bool, error) {
	if err := validateClientID(clientID); err != nil {
		return false, err
	}
	dramaID, err := validateDramaID(dramaID)
	if err != nil {
		return false, err
	}

	item, err := s.repository.GetMyListItem(ctx, clientID, dramaID)
	if err != nil {
		return false, apperrors.DatabaseError("check my list", err)
	}
	return item != nil, nil
}

// ListHistory returns the client's watch history, most recently watched first
func (s *Service) ListHistory(ctx context.Context, clientID string) ([]models.WatchHistoryEntry, error) {
	if err := validateClientID(clientID); err != nil {
		return nil, err
	}

	entries, err := s.repository.ListHistory(ctx, clientID)
	if err != nil {
		return nil, apperrors.DatabaseError("list history", err)
	}
	return entries, nil
}

// RecordProgress stores where the client is in a drama. The entry replaces
// any earlier one for the same drama and moves to the front of the history.
func (s *Service) RecordProgress(ctx context.Context, clientID string, entry models.WatchHistoryEntry) (*models.WatchHistoryEntry, error) {
	if err := validateClientID(clientID); err != nil {
		return nil, err
	}
	dramaID, err := validateDramaID(entry.DramaID)
	if err != nil {
		return nil, err
	}
	if entry.Episode < 0 {
		return nil, apperrors.ValidationError("episode", "must not be negative")
	}
	if entry.Progress < 0 || entry.Progress > 100 {
		return nil, apperrors.ValidationError("progress", "must be between 0 and 100")
	}

	entry.ID = 0
	entry.ClientID = clientID
	entry.DramaID = dramaID
	entry.WatchedAt = s.now().UTC()

	if err := s.repository.UpsertHistory(ctx, &entry, s.historyLimit); err != nil {
		return nil, apperrors.DatabaseError("record progress", err)
	}

	s.log.WithFields(logrus.Fields{
		"client_id": clientID,
		"drama_id":  dramaID,
		"episode":   entry.Episode,
	}).Debug("recorded watch progress")

	return &entry, nil
}

func validateClientID(clientID string) error {
	if _, err := uuid.Parse(clientID); err != nil {
		return apperrors.ValidationError("clientId", "must be a UUID")
	}
	return nil
}

func validateDramaID(dramaID string) (string, error) {
	dramaID = strings.TrimSpace(dramaID)
	if dramaID == "" {
		return "", apperrors.ValidationError("dramaId", "must not be empty")
	}
	return dramaID, nil
}
