package services

import (
	"fmt"
	"strings"

	"cosmicdevspace/app/models"
	"cosmicdevspace/app/repositories"
)

// CommentService handles business logic for comments, replies and likes
type CommentService struct {
	commentRepo repositories.CommentRepository
	likeRepo    repositories.LikeRepository
	itemRepo    repositories.PortfolioRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, likeRepo repositories.LikeRepository, itemRepo repositories.PortfolioRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		itemRepo:    itemRepo,
	}
}

// CreateComment creates a new top-level comment on a portfolio item
func (s *CommentService) CreateComment(itemID, name, email, text string) (*models.Comment, error) {
	// Verify item exists
	if _, err := s.itemRepo.GetByID(itemID); err != nil {
		return nil, fmt.Errorf("portfolio item not found: %w", err)
	}

	comment := &models.Comment{
		ItemID: itemID,
		Name:   strings.TrimSpace(name),
		Email:  strings.TrimSpace(email),
		Text:   strings.TrimSpace(text),
	}
	comment.BeforeCreate()

	if err := comment.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comment: %w", err)
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateReply attaches a reply to an existing comment. Replies stay one
// level deep; there is no reply-to-reply.
func (s *CommentService) CreateReply(itemID, commentID, name, email, text string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(itemID, commentID)
	if err != nil {
		return nil, fmt.Errorf("comment not found: %w", err)
	}

	reply := &models.Reply{
		CommentID: commentID,
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Text:      strings.TrimSpace(text),
	}
	reply.BeforeCreate()

	if err := reply.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reply: %w", err)
	}

	if err := comment.AddReply(reply); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments retrieves comments for an item in the requested order.
// When visitorID is non-empty each comment's Liked flag reflects that
// visitor's like state.
func (s *CommentService) ListComments(itemID string, sort repositories.SortOrder, limit int, visitorID string) ([]*models.Comment, error) {
	// Verify item exists
	if _, err := s.itemRepo.GetByID(itemID); err != nil {
		return nil, fmt.Errorf("portfolio item not found: %w", err)
	}

	comments, err := s.commentRepo.ListByItem(itemID, sort, limit)
	if err != nil {
		return nil, err
	}

	for _, comment := range comments {
		comment.Liked = false
		if visitorID != "" {
			liked, err := s.likeRepo.IsLiked(comment.ID, visitorID)
			if err != nil {
				return nil, err
			}
			comment.Liked = liked
		}
	}

	return comments, nil
}

// ToggleLike flips the visitor's like on a comment and returns the new
// liked state together with the authoritative like count.
func (s *CommentService) ToggleLike(itemID, commentID, visitorID string) (bool, int, error) {
	if strings.TrimSpace(visitorID) == "" {
		return false, 0, fmt.Errorf("visitor id is required")
	}

	comment, err := s.commentRepo.GetByID(itemID, commentID)
	if err != nil {
		return false, 0, fmt.Errorf("comment not found: %w", err)
	}

	liked, err := s.likeRepo.Toggle(commentID, visitorID)
	if err != nil {
		return false, 0, err
	}

	count, err := s.likeRepo.Count(commentID)
	if err != nil {
		return false, 0, err
	}

	// Cache the derived count on the comment document
	comment.LikesCount = count
	if err := s.commentRepo.Update(comment); err != nil {
		return false, 0, err
	}

	return liked, count, nil
}

// GetComment retrieves one comment scoped to its item
func (s *CommentService) GetComment(itemID, commentID string) (*models.Comment, error) {
	return s.commentRepo.GetByID(itemID, commentID)
}

// DeleteComment deletes a comment
func (s *CommentService) DeleteComment(itemID, commentID string) error {
	if _, err := s.commentRepo.GetByID(itemID, commentID); err != nil {
		return err
	}
	return s.commentRepo.Delete(itemID, commentID)
}
