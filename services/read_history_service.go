package services

import (
	"newsapp-api/export"
	"newsapp-api/models"
	"newsapp-api/repositories"
)

type ReadHistoryService interface {
	Create(req models.CreateReadHistoryRequest) (*models.ReadHistory, error)
	GetByUser(userID uint) ([]models.ReadHistory, error)
	ExportCSV(f models.ReadHistoryFilter) (string, error)
}

type readHistoryService struct {
	readRepo repositories.ReadHistoryRepository
}

func NewReadHistoryService(readRepo repositories.ReadHistoryRepository) ReadHistoryService {
	return &readHistoryService{readRepo: readRepo}
}

func (s *readHistoryService) Create(req models.CreateReadHistoryRequest) (*models.ReadHistory, error) {
	entry := &models.ReadHistory{UserID: req.UserID, ArticleID: req.ArticleID}
	if err := s.readRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *readHistoryService) GetByUser(userID uint) ([]models.ReadHistory, error) {
	return s.readRepo.GetByUser(userID)
}

func (s *readHistoryService) ExportCSV(f models.ReadHistoryFilter) (string, error) {
	entries, err := s.readRepo.GetAllFiltered(f)
	if err != nil {
		return "", err
	}
	return export.CSV(entries, export.ReadHistoryColumns()), nil
}
