package services

import (
	"testing"

	"newsapp-api/models"
	"newsapp-api/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedReader(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	name := "Reader"
	user := models.User{FullName: &name}
	require.NoError(t, db.Create(&user).Error)
	article := models.Article{Title: "Story"}
	require.NoError(t, db.Create(&article).Error)
	return user.ID, article.ID
}

func TestBookmarkCreateRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	userID, articleID := seedReader(t, db)
	svc := NewBookmarkService(repositories.NewBookmarkRepository(db))

	req := models.CreateBookmarkRequest{UserID: &userID, ArticleID: &articleID}

	_, err := svc.Create(req)
	require.NoError(t, err)

	_, err = svc.Create(req)
	require.Error(t, err)
	assert.IsType(t, models.ErrorConflict{}, err)
}

func TestBookmarkDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookmarkService(repositories.NewBookmarkRepository(db))

	err := svc.Delete(7)
	require.Error(t, err)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestReadHistoryCreateAllowsRepeats(t *testing.T) {
	db := newTestDB(t)
	userID, articleID := seedReader(t, db)
	svc := NewReadHistoryService(repositories.NewReadHistoryRepository(db))

	req := models.CreateReadHistoryRequest{UserID: &userID, ArticleID: &articleID}
	_, err := svc.Create(req)
	require.NoError(t, err)
	_, err = svc.Create(req)
	require.NoError(t, err)

	entries, err := svc.GetByUser(userID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
