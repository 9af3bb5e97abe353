package storage

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"movie-rec/errors"

	"github.com/dgraph-io/badger/v4"
)

const cachePrefix = "cache:"

// BadgerStore persists cache artifacts in BadgerDB under "cache:{key}".
type BadgerStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerStore(db *badger.DB, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, log: log}
}

func (b BadgerStore) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(cachePrefix + key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", errors.ErrMissingCache, key)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}

func (b BadgerStore) Put(key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(cachePrefix+key), value)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	b.log.Debug("Cache artifact stored", "key", key, "bytes", len(value))
	return nil
}

func (b BadgerStore) Delete(key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(cachePrefix + key))
	})
}

// Keys lists the stored artifact keys in lexical order.
func (b BadgerStore) Keys() ([]string, error) {
	var keys []string
	prefix := []byte(cachePrefix)
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list cache keys: %w", err)
	}
	return keys, nil
}
