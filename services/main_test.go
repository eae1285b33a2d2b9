package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zt15864126114/mksxk/config"
	"github.com/zt15864126114/mksxk/models"
)

// newTestDB 为每个测试创建独立的sqlite数据库并完成迁移
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Product{},
		&models.News{},
		&models.Message{},
	))
	return db
}

// newTestConfig 测试用配置
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		JWTSecretKey:    "test-secret-key",
		JWTExpiresHours: 1,
		UploadDir:       t.TempDir(),
	}
}
