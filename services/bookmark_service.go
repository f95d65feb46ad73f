package services

import (
	"newsapp-api/export"
	"newsapp-api/models"
	"newsapp-api/repositories"
)

type BookmarkService interface {
	Create(req models.CreateBookmarkRequest) (*models.Bookmark, error)
	GetByUser(userID uint) ([]models.Bookmark, error)
	Delete(id uint) error
	ExportCSV(f models.BookmarkFilter) (string, error)
}

type bookmarkService struct {
	bookmarkRepo repositories.BookmarkRepository
}

func NewBookmarkService(bookmarkRepo repositories.BookmarkRepository) BookmarkService {
	return &bookmarkService{bookmarkRepo: bookmarkRepo}
}

func (s *bookmarkService) Create(req models.CreateBookmarkRequest) (*models.Bookmark, error) {
	if req.UserID != nil && req.ArticleID != nil {
		exists, err := s.bookmarkRepo.Exists(*req.UserID, *req.ArticleID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, models.ErrorConflict{Message: "Bookmark already exists."}
		}
	}

	bookmark := &models.Bookmark{UserID: req.UserID, ArticleID: req.ArticleID}
	if err := s.bookmarkRepo.Create(bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

func (s *bookmarkService) GetByUser(userID uint) ([]models.Bookmark, error) {
	return s.bookmarkRepo.GetByUser(userID)
}

func (s *bookmarkService) Delete(id uint) error {
	ok, err := s.bookmarkRepo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrorNotFound{Message: "Bookmark not found"}
	}
	return nil
}

func (s *bookmarkService) ExportCSV(f models.BookmarkFilter) (string, error) {
	bookmarks, err := s.bookmarkRepo.GetAllFiltered(f)
	if err != nil {
		return "", err
	}
	return export.CSV(bookmarks, export.BookmarkColumns()), nil
}
