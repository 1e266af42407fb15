package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name cannot be blank")
	}
	if strings.TrimSpace(c.Text) == "" {
		return errors.New("text cannot be blank")
	}

	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
}

// SetItem attaches the comment to the given portfolio item
func (c *Comment) SetItem(item *PortfolioItem) error {
	if item == nil {
		return errors.New("item cannot be nil")
	}

	c.ItemID = item.ID
	return nil
}

// AddReply appends a reply to the comment. Nesting stays one level deep:
// a reply always points back at this comment, never at another reply.
func (c *Comment) AddReply(reply *Reply) error {
	if reply == nil {
		return errors.New("reply cannot be nil")
	}

	reply.CommentID = c.ID
	c.Replies = append(c.Replies, reply)
	return nil
}

// Validate checks if the reply meets all validation requirements
func (r *Reply) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name cannot be blank")
	}
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("text cannot be blank")
	}

	if err := validate.Struct(r); err != nil {
		return err
	}

	if r.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (r *Reply) BeforeCreate() {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
}
