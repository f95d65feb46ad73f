package repositories

import (
	"newsapp-api/models"
	"newsapp-api/query"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByID(id uint) (*models.Tag, error)
	GetList(f models.TagFilter) ([]models.Tag, int64, error)
	GetAllFiltered(f models.TagFilter) ([]models.Tag, error)
	Update(tag *models.Tag) error
	Delete(id uint) (bool, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	return &tag, err
}

func (r *tagRepository) GetList(f models.TagFilter) ([]models.Tag, int64, error) {
	var tags []models.Tag
	var total int64

	q := r.db.Model(&models.Tag{}).Scopes(query.TagScope(f))

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order(query.TagSort.Resolve(f.SortBy, f.SortDir)).
		Scopes(query.Paginate(f.Page, f.PageSize)).
		Find(&tags).Error

	return tags, total, err
}

func (r *tagRepository) GetAllFiltered(f models.TagFilter) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Scopes(query.TagScope(f)).Order("id asc").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

func (r *tagRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Tag{}, id)
	return res.RowsAffected > 0, res.Error
}
