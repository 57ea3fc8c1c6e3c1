package database

import (
	"path/filepath"
	"testing"

	"expense-tracker/internal/config"
	"expense-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Load()
	cfg.Server.Environment = "testing"
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLitePath = filepath.Join(t.TempDir(), "expenses.db")
	return cfg
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "mysql"}, logger.Silent)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestGormLogLevel(t *testing.T) {
	cfg := &config.Config{}

	cfg.Server.Environment = "production"
	assert.Equal(t, logger.Silent, gormLogLevel(cfg))

	for _, env := range []string{"development", "testing", ""} {
		cfg.Server.Environment = env
		assert.Equal(t, logger.Info, gormLogLevel(cfg), env)
	}
}

func TestInitialize_SQLiteAutoMigrate(t *testing.T) {
	t.Setenv("AUTO_MIGRATE", "false")
	cfg := sqliteConfig(t)

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
	assert.True(t, db.Migrator().HasTable(&models.KVRecord{}))
	assert.True(t, db.Migrator().HasTable(&models.CachedAsset{}))
}

func TestInitialize_SQLiteEmbeddedMigrations(t *testing.T) {
	t.Setenv("AUTO_MIGRATE", "true")
	cfg := sqliteConfig(t)

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.Migrator().HasTable("kv_records"))
	assert.True(t, db.Migrator().HasTable("cached_assets"))

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	version, dirty, err := NewMigrationRunner(sqlDB, config.DriverSQLite).GetMigrationStatus()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, dirty)
}

func TestSetupTestDB_CleanupEmptiesTables(t *testing.T) {
	db := SetupTestDB(t)

	require.NoError(t, db.Create(&models.KVRecord{Key: models.KeyDarkMode, Value: "true"}).Error)
	CleanupTestDB(t, db)

	var count int64
	require.NoError(t, db.Model(&models.KVRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}
