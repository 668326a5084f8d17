package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/buntdb"
)

const inMemoryPath = ":memory:"

// BuntCache is a ResultCache on buntdb with native per-key expiry.
type BuntCache struct {
	db *buntdb.DB
}

// NewBuntCache opens a buntdb file at path, or an in-memory database when path is empty.
func NewBuntCache(path string) (*BuntCache, error) {
	if path == "" {
		path = inMemoryPath
	}
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, err
	}
	return &BuntCache{db: db}, nil
}

func (c *BuntCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var val string
	err := c.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key)
		if err != nil {
			return err
		}
		val = v
		return nil
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("can't get %s: %w", key, err)
	}
	return []byte(val), true, nil
}

// Set stores value under key. A non-positive ttl stores without expiry.
func (c *BuntCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, string(value), &buntdb.SetOptions{
			Expires: ttl > 0,
			TTL:     ttl,
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("can't set %s: %w", key, err)
	}
	return nil
}

func (c *BuntCache) Close() error {
	return c.db.Close()
}
