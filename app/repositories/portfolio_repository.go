package repositories

import (
	"errors"
	"sort"

	"cosmicdevspace/app/models"

	"github.com/dgraph-io/badger/v4"
)

var (
	ErrNotFound = errors.New("record not found")
)

// BadgerPortfolioRepository implements PortfolioRepository using BadgerDB
type BadgerPortfolioRepository struct {
	db *badger.DB
}

// NewBadgerPortfolioRepository creates a new BadgerPortfolioRepository
func NewBadgerPortfolioRepository(db *badger.DB) *BadgerPortfolioRepository {
	return &BadgerPortfolioRepository{db: db}
}

// Create stores a new portfolio item
func (r *BadgerPortfolioRepository) Create(item *models.PortfolioItem) error {
	item.BeforeCreate()

	data, err := marshalEntity(item)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(itemKey(item.ID), data)
	})
}

// GetByID retrieves a portfolio item by ID
func (r *BadgerPortfolioRepository) GetByID(id string) (*models.PortfolioItem, error) {
	var item models.PortfolioItem

	err := r.db.View(func(txn *badger.Txn) error {
		entry, err := txn.Get(itemKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return entry.Value(func(val []byte) error {
			return unmarshalEntity(val, &item)
		})
	})

	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List retrieves all portfolio items, newest first
func (r *BadgerPortfolioRepository) List() ([]*models.PortfolioItem, error) {
	var items []*models.PortfolioItem

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(ItemKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var item models.PortfolioItem
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &item)
			})
			if err != nil {
				return err
			}
			items = append(items, &item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items, nil
}

// Update updates an existing portfolio item
func (r *BadgerPortfolioRepository) Update(item *models.PortfolioItem) error {
	data, err := marshalEntity(item)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(itemKey(item.ID)); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return txn.Set(itemKey(item.ID), data)
	})
}

// Delete deletes a portfolio item by ID
func (r *BadgerPortfolioRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(itemKey(id)); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return txn.Delete(itemKey(id))
	})
}
