package repositories

import (
	"newsapp-api/models"
	"newsapp-api/query"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetList(f models.CategoryFilter) ([]models.Category, int64, error)
	GetAllFiltered(f models.CategoryFilter) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) (bool, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	return &category, err
}

func (r *categoryRepository) GetList(f models.CategoryFilter) ([]models.Category, int64, error) {
	var categories []models.Category
	var total int64

	q := r.db.Model(&models.Category{}).Scopes(query.CategoryScope(f))

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order(query.CategorySort.Resolve(f.SortBy, f.SortDir)).
		Scopes(query.Paginate(f.Page, f.PageSize)).
		Find(&categories).Error

	return categories, total, err
}

func (r *categoryRepository) GetAllFiltered(f models.CategoryFilter) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Scopes(query.CategoryScope(f)).Order("id asc").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Category{}, id)
	return res.RowsAffected > 0, res.Error
}
