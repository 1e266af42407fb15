package mock

import (
	"sort"
	"sync"

	"cosmicdevspace/app/models"
	"cosmicdevspace/app/repositories"
)

type PortfolioRepository struct {
	items map[string]*models.PortfolioItem
	mutex sync.RWMutex
}

type CommentRepository struct {
	comments map[string]*models.Comment
	mutex    sync.RWMutex
}

type LikeRepository struct {
	likes map[string]map[string]bool
	mutex sync.RWMutex
}

type GuestbookRepository struct {
	entries []*models.GuestbookEntry
	mutex   sync.RWMutex
}

func NewPortfolioRepository() *PortfolioRepository {
	return &PortfolioRepository{items: make(map[string]*models.PortfolioItem)}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{comments: make(map[string]*models.Comment)}
}

func NewLikeRepository() *LikeRepository {
	return &LikeRepository{likes: make(map[string]map[string]bool)}
}

func NewGuestbookRepository() *GuestbookRepository {
	return &GuestbookRepository{}
}

// PortfolioRepository implementation

func (m *PortfolioRepository) Create(item *models.PortfolioItem) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	item.BeforeCreate()
	m.items[item.ID] = item
	return nil
}

func (m *PortfolioRepository) GetByID(id string) (*models.PortfolioItem, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	item, exists := m.items[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return item, nil
}

func (m *PortfolioRepository) List() ([]*models.PortfolioItem, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var items []*models.PortfolioItem
	for _, item := range m.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (m *PortfolioRepository) Update(item *models.PortfolioItem) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.items[item.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.items[item.ID] = item
	return nil
}

func (m *PortfolioRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.items[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

// CommentRepository implementation

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.BeforeCreate()
	m.comments[comment.ID] = comment
	return nil
}

func (m *CommentRepository) GetByID(itemID, commentID string) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[commentID]
	if !exists || comment.ItemID != itemID {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (m *CommentRepository) ListByItem(itemID string, sortOrder repositories.SortOrder, limit int) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for _, comment := range m.comments {
		if comment.ItemID == itemID {
			comments = append(comments, comment)
		}
	}

	sort.Slice(comments, func(i, j int) bool {
		if sortOrder == repositories.SortOldestFirst {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})

	if limit > 0 && len(comments) > limit {
		comments = comments[:limit]
	}
	return comments, nil
}

func (m *CommentRepository) Update(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[comment.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.comments[comment.ID] = comment
	return nil
}

func (m *CommentRepository) Delete(itemID, commentID string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment, exists := m.comments[commentID]
	if !exists || comment.ItemID != itemID {
		return repositories.ErrNotFound
	}
	delete(m.comments, commentID)
	return nil
}

// LikeRepository implementation

func (m *LikeRepository) Toggle(commentID, visitorID string) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.likes[commentID] == nil {
		m.likes[commentID] = make(map[string]bool)
	}
	if m.likes[commentID][visitorID] {
		delete(m.likes[commentID], visitorID)
		return false, nil
	}
	m.likes[commentID][visitorID] = true
	return true, nil
}

func (m *LikeRepository) IsLiked(commentID, visitorID string) (bool, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.likes[commentID][visitorID], nil
}

func (m *LikeRepository) Count(commentID string) (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.likes[commentID]), nil
}

// GuestbookRepository implementation

func (m *GuestbookRepository) Create(entry *models.GuestbookEntry) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry.BeforeCreate()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *GuestbookRepository) List(limit int) ([]*models.GuestbookEntry, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	entries := make([]*models.GuestbookEntry, len(m.entries))
	copy(entries, m.entries)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
