package repositories

import (
	"newsapp-api/models"
	"newsapp-api/query"

	"gorm.io/gorm"
)

type BookmarkRepository interface {
	Create(bookmark *models.Bookmark) error
	Exists(userID, articleID uint) (bool, error)
	GetByUser(userID uint) ([]models.Bookmark, error)
	GetAllFiltered(f models.BookmarkFilter) ([]models.Bookmark, error)
	Delete(id uint) (bool, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Create(bookmark *models.Bookmark) error {
	return r.db.Create(bookmark).Error
}

func (r *bookmarkRepository) Exists(userID, articleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Bookmark{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error
	return count > 0, err
}

func (r *bookmarkRepository) GetByUser(userID uint) ([]models.Bookmark, error) {
	bookmarks := []models.Bookmark{}
	err := r.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *bookmarkRepository) GetAllFiltered(f models.BookmarkFilter) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := r.db.Preload("User").Preload("Article").
		Scopes(query.BookmarkScope(f)).
		Order("created_at asc, id asc").
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *bookmarkRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Bookmark{}, id)
	return res.RowsAffected > 0, res.Error
}
