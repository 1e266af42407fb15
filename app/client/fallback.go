package client

import (
	"encoding/json"
	"os"
	"sort"

	"cosmicdevspace/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	visitorKey         = "visitor:id"
	pendingGuestPrefix = "pending:guest:"
)

// FallbackStore is the client's local key-value store. It keeps the
// visitor identity and guestbook entries that could not reach the server.
type FallbackStore struct {
	db       *badger.DB
	path     string
	isTempDB bool
}

// NewFallbackStore opens the local store at path. An empty path opens a
// throwaway store in a temporary directory, used by tests.
func NewFallbackStore(path string) (*FallbackStore, error) {
	isTemp := false
	if path == "" {
		tempPath, err := os.MkdirTemp("", "cosmicdevspace_fallback_")
		if err != nil {
			return nil, err
		}
		path = tempPath
		isTemp = true
	}

	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &FallbackStore{db: db, path: path, isTempDB: isTemp}, nil
}

// Close closes the store, removing it entirely when it was temporary
func (f *FallbackStore) Close() error {
	if err := f.db.Close(); err != nil {
		return err
	}
	if f.isTempDB {
		return os.RemoveAll(f.path)
	}
	return nil
}

// VisitorID returns this installation's opaque visitor identity,
// generating and persisting one on first use.
func (f *FallbackStore) VisitorID() (string, error) {
	var id string

	err := f.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(visitorKey))
		if err == nil {
			return item.Value(func(val []byte) error {
				id = string(val)
				return nil
			})
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		id = uuid.NewString()
		return txn.Set([]byte(visitorKey), []byte(id))
	})

	return id, err
}

// SaveEntry queues a guestbook entry that could not reach the server
func (f *FallbackStore) SaveEntry(entry models.GuestbookEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return f.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(pendingGuestPrefix+entry.ID), data)
	})
}

// PendingEntries returns locally queued guestbook entries, oldest first
func (f *FallbackStore) PendingEntries() ([]models.GuestbookEntry, error) {
	var entries []models.GuestbookEntry

	err := f.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(pendingGuestPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var entry models.GuestbookEntry
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			})
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	return entries, nil
}
