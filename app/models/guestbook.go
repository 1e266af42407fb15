package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the guestbook entry meets all validation requirements
func (g *GuestbookEntry) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return errors.New("name cannot be blank")
	}
	if strings.TrimSpace(g.Message) == "" {
		return errors.New("message cannot be blank")
	}

	if err := validate.Struct(g); err != nil {
		return err
	}

	if g.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (g *GuestbookEntry) BeforeCreate() {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
}
