package services

import (
	"fmt"

	"cosmicdevspace/app/models"
	"cosmicdevspace/app/repositories"

	"github.com/microcosm-cc/bluemonday"
)

// PortfolioService handles business logic for portfolio items
type PortfolioService struct {
	itemRepo    repositories.PortfolioRepository
	commentRepo repositories.CommentRepository
	sanitizer   *bluemonday.Policy
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(itemRepo repositories.PortfolioRepository, commentRepo repositories.CommentRepository) *PortfolioService {
	return &PortfolioService{
		itemRepo:    itemRepo,
		commentRepo: commentRepo,
		sanitizer:   bluemonday.UGCPolicy(),
	}
}

// CreateItem creates a new portfolio item. Descriptions may carry markup,
// so they are sanitized before they are stored.
func (s *PortfolioService) CreateItem(item *models.PortfolioItem) error {
	item.Description = s.sanitizer.Sanitize(item.Description)
	item.BeforeCreate()

	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid portfolio item: %w", err)
	}

	return s.itemRepo.Create(item)
}

// GetItem retrieves a portfolio item by ID
func (s *PortfolioService) GetItem(id string) (*models.PortfolioItem, error) {
	return s.itemRepo.GetByID(id)
}

// ListItems retrieves all portfolio items
func (s *PortfolioService) ListItems() ([]*models.PortfolioItem, error) {
	return s.itemRepo.List()
}

// UpdateItem updates an existing portfolio item
func (s *PortfolioService) UpdateItem(item *models.PortfolioItem) error {
	existing, err := s.itemRepo.GetByID(item.ID)
	if err != nil {
		return err
	}

	// Preserve creation time
	item.CreatedAt = existing.CreatedAt
	item.Description = s.sanitizer.Sanitize(item.Description)

	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid portfolio item: %w", err)
	}

	return s.itemRepo.Update(item)
}

// DeleteItem deletes a portfolio item and all of its comments
func (s *PortfolioService) DeleteItem(id string) error {
	if _, err := s.itemRepo.GetByID(id); err != nil {
		return err
	}

	comments, err := s.commentRepo.ListByItem(id, repositories.SortNewestFirst, 0)
	if err != nil {
		return err
	}
	for _, comment := range comments {
		if err := s.commentRepo.Delete(id, comment.ID); err != nil {
			return err
		}
	}

	return s.itemRepo.Delete(id)
}
