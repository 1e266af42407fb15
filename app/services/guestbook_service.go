package services

import (
	"fmt"
	"strings"

	"cosmicdevspace/app/models"
	"cosmicdevspace/app/repositories"
)

// GuestbookService handles business logic for the guestbook
type GuestbookService struct {
	guestRepo repositories.GuestbookRepository
}

// NewGuestbookService creates a new GuestbookService
func NewGuestbookService(guestRepo repositories.GuestbookRepository) *GuestbookService {
	return &GuestbookService{guestRepo: guestRepo}
}

// Sign records a new guestbook entry
func (s *GuestbookService) Sign(name, message string) (*models.GuestbookEntry, error) {
	entry := &models.GuestbookEntry{
		Name:    strings.TrimSpace(name),
		Message: strings.TrimSpace(message),
	}
	entry.BeforeCreate()

	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid guestbook entry: %w", err)
	}

	if err := s.guestRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List retrieves guestbook entries, newest first
func (s *GuestbookService) List(limit int) ([]*models.GuestbookEntry, error) {
	return s.guestRepo.List(limit)
}
