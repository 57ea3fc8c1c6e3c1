package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KeyValueStore keeps tracker keys in the kv_records table
type KeyValueStore struct {
	db *gorm.DB
}

// NewKeyValueStore creates a new database-backed key-value store
func NewKeyValueStore(db *gorm.DB) KeyValueStoreInterface {
	return &KeyValueStore{
		db: db,
	}
}

// Get returns the stored value and whether the key exists
func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.New("key cannot be empty")
	}

	var record models.KVRecord
	result := s.db.WithContext(ctx).Where("key = ?", key).Limit(1).Find(&record)
	if result.Error != nil {
		return "", false, fmt.Errorf("failed to get key %q: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}

	return record.Value, true, nil
}

// Set stores value under key, replacing any previous value
func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	record := models.KVRecord{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}

	return nil
}
