package services

import (
	"errors"

	"newsapp-api/export"
	"newsapp-api/models"
	"newsapp-api/repositories"

	"gorm.io/gorm"
)

type CategoryService interface {
	Create(req models.CreateCategoryRequest) (*models.Category, error)
	GetByID(id uint) (*models.Category, error)
	GetList(f models.CategoryFilter) ([]models.Category, int64, error)
	Update(id uint, req models.UpdateCategoryRequest) (*models.Category, error)
	Delete(id uint) error
	ExportCSV(f models.CategoryFilter) (string, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) Create(req models.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetByID(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrorNotFound{Message: "Category not found"}
	}
	return category, err
}

func (s *categoryService) GetList(f models.CategoryFilter) ([]models.Category, int64, error) {
	return s.categoryRepo.GetList(f)
}

func (s *categoryService) Update(id uint, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Category not found"}
		}
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(id uint) error {
	ok, err := s.categoryRepo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrorNotFound{Message: "Category not found"}
	}
	return nil
}

func (s *categoryService) ExportCSV(f models.CategoryFilter) (string, error) {
	categories, err := s.categoryRepo.GetAllFiltered(f)
	if err != nil {
		return "", err
	}
	return export.CSV(categories, export.CategoryColumns()), nil
}
