package offline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCacheStorage persists caches in the cached_assets table. Every cache
// has a marker row so that empty caches are still listed.
type GormCacheStorage struct {
	db *gorm.DB
}

// NewGormCacheStorage creates a database-backed cache storage
func NewGormCacheStorage(db *gorm.DB) CacheStorageInterface {
	return &GormCacheStorage{db: db}
}

func (s *GormCacheStorage) Open(ctx context.Context, name string) (CacheInterface, error) {
	if name == "" {
		return nil, errors.New("cache name cannot be empty")
	}

	marker := models.CachedAsset{
		CacheName: name,
		URL:       models.CacheMarker,
		CreatedAt: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&marker).Error
	if err != nil {
		return nil, fmt.Errorf("failed to open cache %q: %w", name, err)
	}

	return &gormCache{db: s.db, name: name}, nil
}

func (s *GormCacheStorage) Keys(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&models.CachedAsset{}).
		Where("url = ?", models.CacheMarker).
		Order("created_at ASC").
		Order("cache_name ASC").
		Pluck("cache_name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list caches: %w", err)
	}
	return names, nil
}

func (s *GormCacheStorage) Delete(ctx context.Context, name string) (bool, error) {
	result := s.db.WithContext(ctx).Where("cache_name = ?", name).Delete(&models.CachedAsset{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete cache %q: %w", name, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *GormCacheStorage) Match(ctx context.Context, key string) (*Response, bool, error) {
	if key == models.CacheMarker {
		return nil, false, nil
	}

	var names []string
	if err := s.db.WithContext(ctx).
		Model(&models.CachedAsset{}).
		Where("url = ?", key).
		Pluck("cache_name", &names).Error; err != nil {
		return nil, false, fmt.Errorf("failed to match %q: %w", key, err)
	}
	if len(names) == 0 {
		return nil, false, nil
	}

	order, err := s.Keys(ctx)
	if err != nil {
		return nil, false, err
	}

	holding := make(map[string]bool, len(names))
	for _, n := range names {
		holding[n] = true
	}
	for _, name := range order {
		if holding[name] {
			return (&gormCache{db: s.db, name: name}).Match(ctx, key)
		}
	}

	return nil, false, nil
}

type gormCache struct {
	db   *gorm.DB
	name string
}

func (c *gormCache) Name() string {
	return c.name
}

func (c *gormCache) AddAll(ctx context.Context, responses []*Response) error {
	assets := make([]models.CachedAsset, 0, len(responses))
	now := time.Now().UTC()
	for _, r := range responses {
		if r == nil {
			return ErrNilResponse
		}
		assets = append(assets, models.CachedAsset{
			CacheName:  c.name,
			URL:        r.URL,
			StatusCode: r.StatusCode,
			Headers:    models.FromHTTPHeader(r.Header),
			Body:       r.Body,
			CreatedAt:  now,
		})
	}

	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range assets {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "cache_name"}, {Name: "url"}},
				DoUpdates: clause.AssignmentColumns([]string{"status_code", "headers", "body", "created_at"}),
			}).Create(&assets[i]).Error
			if err != nil {
				return fmt.Errorf("failed to store %q in cache %q: %w", assets[i].URL, c.name, err)
			}
		}
		return nil
	})
}

func (c *gormCache) Match(ctx context.Context, key string) (*Response, bool, error) {
	if key == models.CacheMarker {
		return nil, false, nil
	}

	var asset models.CachedAsset
	result := c.db.WithContext(ctx).
		Where("cache_name = ? AND url = ?", c.name, key).
		Limit(1).
		Find(&asset)
	if result.Error != nil {
		return nil, false, fmt.Errorf("failed to match %q in cache %q: %w", key, c.name, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, false, nil
	}

	return &Response{
		URL:        asset.URL,
		StatusCode: asset.StatusCode,
		Header:     asset.Headers.HTTPHeader(),
		Body:       asset.Body,
	}, true, nil
}

func (c *gormCache) Keys(ctx context.Context) ([]string, error) {
	var urls []string
	err := c.db.WithContext(ctx).
		Model(&models.CachedAsset{}).
		Where("cache_name = ? AND url <> ?", c.name, models.CacheMarker).
		Order("url ASC").
		Pluck("url", &urls).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cache %q: %w", c.name, err)
	}
	return urls, nil
}
