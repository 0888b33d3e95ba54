package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

const prefsBucket = "prefs"

// Bolt is a bbolt-backed Store.
type Bolt struct {
	db *bbolt.DB
}

// Open opens (creating if needed) a bbolt database at path.
func Open(path string) (*Bolt, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("prefs path is required")
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("create prefs dir: %w", err)
	}
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open prefs db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(prefsBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create prefs bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Close closes the underlying database.
func (b *Bolt) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

func (b *Bolt) Get(key string) ([]byte, bool, error) {
	if b == nil || b.db == nil {
		return nil, false, ErrClosed
	}
	var (
		value []byte
		found bool
	)
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(prefsBucket))
		if bucket == nil {
			return fmt.Errorf("prefs bucket is missing")
		}
		// Bytes are only valid inside the transaction.
		if v := bucket.Get([]byte(key)); v != nil {
			value = append([]byte{}, v...)
			found = true
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return value, found, nil
}

func (b *Bolt) Put(key string, value []byte) error {
	if b == nil || b.db == nil {
		return ErrClosed
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(prefsBucket))
		if bucket == nil {
			return fmt.Errorf("prefs bucket is missing")
		}
		return bucket.Put([]byte(key), value)
	})
}

func (b *Bolt) Delete(key string) error {
	if b == nil || b.db == nil {
		return ErrClosed
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(prefsBucket))
		if bucket == nil {
			return fmt.Errorf("prefs bucket is missing")
		}
		return bucket.Delete([]byte(key))
	})
}

// Keys returns every stored key in byte order.
func (b *Bolt) Keys() ([]string, error) {
	if b == nil || b.db == nil {
		return nil, ErrClosed
	}
	var keys []string
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(prefsBucket))
		if bucket == nil {
			return fmt.Errorf("prefs bucket is missing")
		}
		return bucket.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}
