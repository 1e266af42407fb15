package repositories

import (
	"sort"

	"cosmicdevspace/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerGuestbookRepository implements GuestbookRepository using BadgerDB
type BadgerGuestbookRepository struct {
	db *badger.DB
}

// NewBadgerGuestbookRepository creates a new BadgerGuestbookRepository
func NewBadgerGuestbookRepository(db *badger.DB) *BadgerGuestbookRepository {
	return &BadgerGuestbookRepository{db: db}
}

// Create stores a new guestbook entry
func (r *BadgerGuestbookRepository) Create(entry *models.GuestbookEntry) error {
	entry.BeforeCreate()

	data, err := marshalEntity(entry)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(guestKey(entry.ID), data)
	})
}

// List retrieves guestbook entries, newest first. A limit <= 0 means no limit.
func (r *BadgerGuestbookRepository) List(limit int) ([]*models.GuestbookEntry, error) {
	var entries []*models.GuestbookEntry

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(GuestKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var entry models.GuestbookEntry
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &entry)
			})
			if err != nil {
				return err
			}
			entries = append(entries, &entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}
