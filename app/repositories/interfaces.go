package repositories

import "cosmicdevspace/app/models"

// SortOrder selects the ordering of listed comments by creation time.
type SortOrder string

const (
	SortNewestFirst SortOrder = "-createdAt"
	SortOldestFirst SortOrder = "createdAt"
)

// PortfolioRepository defines the interface for portfolio item data access
type PortfolioRepository interface {
	Create(item *models.PortfolioItem) error
	GetByID(id string) (*models.PortfolioItem, error)
	List() ([]*models.PortfolioItem, error)
	Update(item *models.PortfolioItem) error
	Delete(id string) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(itemID, commentID string) (*models.Comment, error)
	ListByItem(itemID string, sort SortOrder, limit int) ([]*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(itemID, commentID string) error
}

// LikeRepository defines the interface for per-visitor like toggles
type LikeRepository interface {
	Toggle(commentID, visitorID string) (liked bool, err error)
	IsLiked(commentID, visitorID string) (bool, error)
	Count(commentID string) (int, error)
}

// GuestbookRepository defines the interface for guestbook data access
type GuestbookRepository interface {
	Create(entry *models.GuestbookEntry) error
	List(limit int) ([]*models.GuestbookEntry, error)
}
