// Package repository persists the whole application state as one
// versioned JSON blob under a fixed key in the blob store.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"littlewords/internal/models"
	"littlewords/internal/storage"
)

const (
	// StorageKey is the single key the application blob lives under
	StorageKey = "littlewords-app-data"
	// CurrentVersion is stamped on every saved blob
	CurrentVersion = "1.0"
)

// AppRepository loads and saves the AppData blob
type AppRepository struct {
	store  storage.Store
	logger *zap.Logger
}

// NewAppRepository creates a new app repository over the given store
func NewAppRepository(store storage.Store, logger *zap.Logger) *AppRepository {
	return &AppRepository{store: store, logger: logger}
}

// Initialize loads the persisted state. A missing blob yields a fresh
// empty AppData; an unreadable or unparseable blob logs a warning and
// degrades to the same fresh structure rather than failing startup.
func (r *AppRepository) Initialize(ctx context.Context) *models.AppData {
	raw, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			r.logger.Warn("failed to load app data, starting fresh", zap.Error(err))
		}
		return models.NewAppData(CurrentVersion)
	}

	var data models.AppData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		r.logger.Warn("failed to parse app data, starting fresh", zap.Error(err))
		return models.NewAppData(CurrentVersion)
	}
	if data.Children == nil {
		data.Children = make(map[string]*models.Child)
	}

	return migrate(&data)
}

// Save serializes the state and writes it to the store. Failures
// propagate to the caller; the in-memory state may then be ahead of
// disk, which the single-writer design tolerates.
func (r *AppRepository) Save(ctx context.Context, data *models.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize app data: %w", err)
	}
	if err := r.store.Set(ctx, StorageKey, string(raw)); err != nil {
		return fmt.Errorf("failed to save app data: %w", err)
	}
	return nil
}

// Reset removes the persisted blob entirely
func (r *AppRepository) Reset(ctx context.Context) error {
	if err := r.store.Remove(ctx, StorageKey); err != nil {
		return fmt.Errorf("failed to reset app data: %w", err)
	}
	return nil
}

// MarkBackedUp stamps the last-backup time and persists it
func (r *AppRepository) MarkBackedUp(ctx context.Context, data *models.AppData, at time.Time) error {
	data.LastBackup = &at
	return r.Save(ctx, data)
}

// migrate upgrades a loaded blob to the current schema version. It is
// idempotent and never fails on already-current data. Pre-versioning
// blobs carry no version field and are stamped here.
func migrate(data *models.AppData) *models.AppData {
	if data.Version == "" {
		data.Version = CurrentVersion
	}
	return data
}
