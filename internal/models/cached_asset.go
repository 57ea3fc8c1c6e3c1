package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CachedAsset is one stored response of a versioned offline cache
type CachedAsset struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CacheName  string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_cached_assets_cache_url" json:"cache_name"`
	URL        string    `gorm:"type:varchar(2048);not null;uniqueIndex:idx_cached_assets_cache_url" json:"url"`
	StatusCode int       `gorm:"not null" json:"status_code"`
	Headers    HeaderMap `gorm:"type:text" json:"headers,omitempty"`
	Body       []byte    `json:"-"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for CachedAsset
func (a *CachedAsset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name for CachedAsset
func (CachedAsset) TableName() string {
	return "cached_assets"
}

// CacheMarker is a row that only records that a named cache exists
const CacheMarker = ""

// HeaderMap stores response headers as JSON text
type HeaderMap map[string][]string

// FromHTTPHeader converts response headers for storage
func FromHTTPHeader(h http.Header) HeaderMap {
	if len(h) == 0 {
		return nil
	}
	m := make(HeaderMap, len(h))
	for k, v := range h {
		m[k] = append([]string(nil), v...)
	}
	return m
}

// HTTPHeader converts the stored headers back
func (m HeaderMap) HTTPHeader() http.Header {
	h := make(http.Header, len(m))
	for k, v := range m {
		h[k] = append([]string(nil), v...)
	}
	return h
}

// Value implements driver.Valuer interface
func (m HeaderMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan implements sql.Scanner interface
func (m *HeaderMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into HeaderMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
