package repositories

import (
	"github.com/dgraph-io/badger/v4"
)

// BadgerLikeRepository implements LikeRepository using BadgerDB.
// One key per (comment, visitor) pair; presence of the key means liked.
type BadgerLikeRepository struct {
	db *badger.DB
}

// NewBadgerLikeRepository creates a new BadgerLikeRepository
func NewBadgerLikeRepository(db *badger.DB) *BadgerLikeRepository {
	return &BadgerLikeRepository{db: db}
}

// Toggle flips the visitor's like on a comment and reports the new state
func (r *BadgerLikeRepository) Toggle(commentID, visitorID string) (bool, error) {
	var liked bool

	err := r.db.Update(func(txn *badger.Txn) error {
		key := likeKey(commentID, visitorID)
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			liked = true
			return txn.Set(key, []byte{1})
		}
		if err != nil {
			return err
		}
		liked = false
		return txn.Delete(key)
	})

	return liked, err
}

// IsLiked reports whether the visitor has liked the comment
func (r *BadgerLikeRepository) IsLiked(commentID, visitorID string) (bool, error) {
	var liked bool

	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(likeKey(commentID, visitorID))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		liked = true
		return nil
	})

	return liked, err
}

// Count returns the number of likes on a comment
func (r *BadgerLikeRepository) Count(commentID string) (int, error) {
	count := 0

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(LikeKeyPrefix + commentID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})

	return count, err
}
