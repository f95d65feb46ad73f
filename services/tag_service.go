package services

import (
	"errors"

	"newsapp-api/export"
	"newsapp-api/models"
	"newsapp-api/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	Create(req models.CreateTagRequest) (*models.Tag, error)
	GetByID(id uint) (*models.Tag, error)
	GetList(f models.TagFilter) ([]models.Tag, int64, error)
	Update(id uint, req models.UpdateTagRequest) (*models.Tag, error)
	Delete(id uint) error
	ExportCSV(f models.TagFilter) (string, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) Create(req models.CreateTagRequest) (*models.Tag, error) {
	tag := &models.Tag{Name: req.Name}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) GetByID(id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrorNotFound{Message: "Tag not found"}
	}
	return tag, err
}

func (s *tagService) GetList(f models.TagFilter) ([]models.Tag, int64, error) {
	return s.tagRepo.GetList(f)
}

func (s *tagService) Update(id uint, req models.UpdateTagRequest) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Tag not found"}
		}
		return nil, err
	}

	tag.Name = req.Name

	if err := s.tagRepo.Update(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) Delete(id uint) error {
	ok, err := s.tagRepo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrorNotFound{Message: "Tag not found"}
	}
	return nil
}

func (s *tagService) ExportCSV(f models.TagFilter) (string, error) {
	tags, err := s.tagRepo.GetAllFiltered(f)
	if err != nil {
		return "", err
	}
	return export.CSV(tags, export.TagColumns()), nil
}
