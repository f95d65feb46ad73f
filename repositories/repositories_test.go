package repositories

import (
	"testing"

	"newsapp-api/config"
	"newsapp-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func seedTags(t *testing.T, db *gorm.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, db.Create(&models.Tag{Name: name}).Error)
	}
}

func tagIDsOf(t *testing.T, db *gorm.DB, articleID uint) []uint {
	t.Helper()
	var ids []uint
	require.NoError(t, db.Model(&models.ArticleTag{}).
		Where("article_id = ?", articleID).
		Order("tag_id").
		Pluck("tag_id", &ids).Error)
	return ids
}
