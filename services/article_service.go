package services

import (
	"errors"

	"newsapp-api/export"
	"newsapp-api/models"
	"newsapp-api/repositories"

	"gorm.io/gorm"
)

type ArticleService interface {
	Create(req models.CreateArticleRequest) (*models.Article, error)
	GetByID(id uint) (*models.Article, error)
	GetList(f models.ArticleFilter) ([]models.Article, int64, error)
	Update(id uint, req models.UpdateArticleRequest) (*models.Article, error)
	Delete(id uint) error
	AttachTags(id uint, tagIDs []uint) (*models.Article, error)
	DetachTag(id, tagID uint) error
	ExportCSV(f models.ArticleFilter) (string, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

func (s *articleService) Create(req models.CreateArticleRequest) (*models.Article, error) {
	article := &models.Article{
		Title:      req.Title,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		AuthorID:   req.AuthorID,
		CategoryID: req.CategoryID,
	}

	if err := s.articleRepo.Create(article, req.TagIDs); err != nil {
		return nil, err
	}

	// reload with relations for the response shape
	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) GetByID(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrorNotFound{Message: "Article not found"}
	}
	return article, err
}

func (s *articleService) GetList(f models.ArticleFilter) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(f)
}

func (s *articleService) Update(id uint, req models.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Article not found"}
		}
		return nil, err
	}

	article.Title = req.Title
	article.Content = req.Content
	article.ImageURL = req.ImageURL
	article.CategoryID = req.CategoryID

	// nil TagIDs means the tag set was not part of the request
	if err := s.articleRepo.Update(article, req.TagIDs, req.TagIDs != nil); err != nil {
		return nil, err
	}
	return s.articleRepo.GetByID(id)
}

func (s *articleService) Delete(id uint) error {
	ok, err := s.articleRepo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrorNotFound{Message: "Article not found"}
	}
	return nil
}

func (s *articleService) AttachTags(id uint, tagIDs []uint) (*models.Article, error) {
	if err := s.articleRepo.AttachTags(id, tagIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Article not found"}
		}
		return nil, err
	}
	return s.articleRepo.GetByID(id)
}

func (s *articleService) DetachTag(id, tagID uint) error {
	ok, err := s.articleRepo.DetachTag(id, tagID)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrorNotFound{Message: "Association not found"}
	}
	return nil
}

func (s *articleService) ExportCSV(f models.ArticleFilter) (string, error) {
	articles, err := s.articleRepo.GetAllFiltered(f)
	if err != nil {
		return "", err
	}
	return export.CSV(articles, export.ArticleColumns()), nil
}
