package repositories

import (
	"sort"

	"cosmicdevspace/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create stores a new comment. The item ID is part of the key so that
// listing an item's comments is a single prefix scan.
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	comment.BeforeCreate()

	data, err := marshalEntity(comment)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(commentKey(comment.ItemID, comment.ID), data)
	})
}

// GetByID retrieves a comment scoped to its item
func (r *BadgerCommentRepository) GetByID(itemID, commentID string) (*models.Comment, error) {
	var comment models.Comment

	err := r.db.View(func(txn *badger.Txn) error {
		entry, err := txn.Get(commentKey(itemID, commentID))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return entry.Value(func(val []byte) error {
			return unmarshalEntity(val, &comment)
		})
	})

	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByItem retrieves comments for an item ordered by creation time.
// A limit <= 0 means no limit.
func (r *BadgerCommentRepository) ListByItem(itemID string, sortOrder SortOrder, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CommentKeyPrefix + itemID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			comments = append(comments, &comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(comments, func(i, j int) bool {
		if sortOrder == SortOldestFirst {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})

	if limit > 0 && len(comments) > limit {
		comments = comments[:limit]
	}

	return comments, nil
}

// Update updates an existing comment
func (r *BadgerCommentRepository) Update(comment *models.Comment) error {
	data, err := marshalEntity(comment)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := commentKey(comment.ItemID, comment.ID)
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a comment by ID
func (r *BadgerCommentRepository) Delete(itemID, commentID string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := commentKey(itemID, commentID)
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}
