package query

import (
	"testing"
	"time"

	"newsapp-api/config"
	"newsapp-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
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

func seedArticles(t *testing.T, db *gorm.DB) {
	t.Helper()

	author := "Alice"
	require.NoError(t, db.Create(&models.User{FullName: &author}).Error)
	require.NoError(t, db.Create(&models.Category{Name: "Tech"}).Error)
	require.NoError(t, db.Create(&models.Tag{Name: "go"}).Error)
	require.NoError(t, db.Create(&models.Tag{Name: "db"}).Error)

	one := uint(1)
	body := "all about databases"
	articles := []models.Article{
		{Title: "Go concurrency", AuthorID: &one, CategoryID: &one, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Title: "Storage engines", Content: &body, CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{Title: "Unrelated", CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	for i := range articles {
		require.NoError(t, db.Create(&articles[i]).Error)
	}

	require.NoError(t, db.Create(&models.ArticleTag{ArticleID: 1, TagID: 1}).Error)
	require.NoError(t, db.Create(&models.ArticleTag{ArticleID: 2, TagID: 2}).Error)
}

func TestArticleScopeKeywordSearchesTitleAndContent(t *testing.T) {
	db := newTestDB(t)
	seedArticles(t, db)

	var got []models.Article
	require.NoError(t, db.Scopes(ArticleScope(models.ArticleFilter{Keyword: "databases"})).Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "Storage engines", got[0].Title)

	// nil content must not break the match on other rows
	require.NoError(t, db.Scopes(ArticleScope(models.ArticleFilter{Keyword: "Go"})).Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "Go concurrency", got[0].Title)
}

func TestArticleScopeTagSemiJoin(t *testing.T) {
	db := newTestDB(t)
	seedArticles(t, db)

	tagID := uint(2)
	var got []models.Article
	require.NoError(t, db.Model(&models.Article{}).
		Scopes(ArticleScope(models.ArticleFilter{TagID: &tagID})).
		Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "Storage engines", got[0].Title)
}

func TestArticleScopeConjunction(t *testing.T) {
	db := newTestDB(t)
	seedArticles(t, db)

	one := uint(1)
	f := models.ArticleFilter{AuthorID: &one, Keyword: "concurrency"}
	var got []models.Article
	require.NoError(t, db.Scopes(ArticleScope(f)).Find(&got).Error)
	require.Len(t, got, 1)

	// same author, keyword that matches a different row: conjunction empties it
	f.Keyword = "databases"
	require.NoError(t, db.Scopes(ArticleScope(f)).Find(&got).Error)
	assert.Empty(t, got)
}

func TestArticleScopeDateRangeAppliedLiterally(t *testing.T) {
	db := newTestDB(t)
	seedArticles(t, db)

	from := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)
	var got []models.Article
	require.NoError(t, db.Scopes(ArticleScope(models.ArticleFilter{CreatedFrom: &from, CreatedTo: &to})).Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "Storage engines", got[0].Title)

	// inverted range yields nothing rather than an error
	require.NoError(t, db.Scopes(ArticleScope(models.ArticleFilter{CreatedFrom: &to, CreatedTo: &from})).Find(&got).Error)
	assert.Empty(t, got)
}

func TestCategoryScopeIDRange(t *testing.T) {
	db := newTestDB(t)
	for _, name := range []string{"a", "b", "c", "d"} {
		require.NoError(t, db.Create(&models.Category{Name: name}).Error)
	}

	lo, hi := uint(2), uint(3)
	var got []models.Category
	require.NoError(t, db.Scopes(CategoryScope(models.CategoryFilter{IDFrom: &lo, IDTo: &hi})).Find(&got).Error)
	assert.Len(t, got, 2)
}

func TestPaginateClampsPage(t *testing.T) {
	db := newTestDB(t)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, db.Create(&models.Tag{Name: name}).Error)
	}

	var got []models.Tag
	require.NoError(t, db.Order("id").Scopes(Paginate(0, 2)).Find(&got).Error)
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)

	require.NoError(t, db.Order("id").Scopes(Paginate(2, 2)).Find(&got).Error)
	require.Len(t, got, 2)
	assert.Equal(t, uint(3), got[0].ID)

	// past the end is an empty page, not an error
	require.NoError(t, db.Order("id").Scopes(Paginate(100, 10)).Find(&got).Error)
	assert.Empty(t, got)
}
