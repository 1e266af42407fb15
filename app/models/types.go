package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Category classifies a portfolio item.
type Category string

const (
	CategoryProject       Category = "project"
	CategoryCertification Category = "certification"
	CategoryAchievement   Category = "achievement"
)

// PortfolioItem represents a portfolio entry that comments attach to.
type PortfolioItem struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required,min=3,max=100"`
	Description string    `json:"description" validate:"max=2000"`
	Category    Category  `json:"category" validate:"required,oneof=project certification achievement"`
	CreatedAt   time.Time `json:"createdAt" validate:"required"`
}

// Comment represents a top-level remark on a portfolio item.
type Comment struct {
	ID         string    `json:"id" validate:"required"`
	ItemID     string    `json:"itemId" validate:"required"`
	Name       string    `json:"name" validate:"required,max=100"`
	Email      string    `json:"email,omitempty" validate:"omitempty,email,max=200"`
	Text       string    `json:"text" validate:"required,max=500"`
	LikesCount int       `json:"likesCount" validate:"gte=0"`
	Liked      bool      `json:"liked" validate:"-"`
	CreatedAt  time.Time `json:"createdAt" validate:"required"`
	Replies    []*Reply  `json:"replies" validate:"-"`
}

// Reply is a second-level remark attached to exactly one comment.
// Replies cannot themselves have replies.
type Reply struct {
	ID        string    `json:"id" validate:"required"`
	CommentID string    `json:"commentId" validate:"required"`
	Name      string    `json:"name" validate:"required,max=100"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email,max=200"`
	Text      string    `json:"text" validate:"required,max=500"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

// GuestbookEntry represents one signature in the guestbook.
type GuestbookEntry struct {
	ID        string    `json:"id" validate:"required"`
	Name      string    `json:"name" validate:"required,max=100"`
	Message   string    `json:"message" validate:"required,max=500"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}
