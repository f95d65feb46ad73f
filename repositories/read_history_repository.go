package repositories

import (
	"newsapp-api/models"
	"newsapp-api/query"

	"gorm.io/gorm"
)

type ReadHistoryRepository interface {
	Create(entry *models.ReadHistory) error
	GetByUser(userID uint) ([]models.ReadHistory, error)
	GetAllFiltered(f models.ReadHistoryFilter) ([]models.ReadHistory, error)
}

type readHistoryRepository struct {
	db *gorm.DB
}

func NewReadHistoryRepository(db *gorm.DB) ReadHistoryRepository {
	return &readHistoryRepository{db: db}
}

func (r *readHistoryRepository) Create(entry *models.ReadHistory) error {
	return r.db.Create(entry).Error
}

func (r *readHistoryRepository) GetByUser(userID uint) ([]models.ReadHistory, error) {
	entries := []models.ReadHistory{}
	err := r.db.Where("user_id = ?", userID).
		Order("read_at desc").
		Find(&entries).Error
	return entries, err
}

func (r *readHistoryRepository) GetAllFiltered(f models.ReadHistoryFilter) ([]models.ReadHistory, error) {
	var entries []models.ReadHistory
	err := r.db.Preload("User").Preload("Article").
		Scopes(query.ReadHistoryScope(f)).
		Order("read_at asc, id asc").
		Find(&entries).Error
	return entries, err
}
