package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	bolt "go.etcd.io/bbolt"
)

const summariesBktName = "summaries"

// Summary is a generated summary of an article.
type Summary struct {
	WebURL    string    `json:"web_url"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Bolt is an archive of generated summaries that uses BoltDB as a backend.
type Bolt struct {
	db *bolt.DB
}

// NewBolt creates new Bolt storage.
func NewBolt(dir string) (*Bolt, error) {
	db, err := bolt.Open(path.Join(dir, "summaries.db"), 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to make boltdb for %s: %w", dir, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{summariesBktName} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create top-level bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("make buckets: %w", err)
	}

	return &Bolt{db: db}, nil
}

// PutSummary puts summary to storage.
func (b *Bolt) PutSummary(_ context.Context, s Summary) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket([]byte(summariesBktName))

		bts, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}

		if err := bkt.Put([]byte(s.WebURL), bts); err != nil {
			return fmt.Errorf("put summary to storage: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("update storage: %w", err)
	}

	return nil
}

// GetSummary returns summary of the article with the given url.
func (b *Bolt) GetSummary(_ context.Context, webURL string) (s Summary, err error) {
	err = b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket([]byte(summariesBktName))

		bts := bkt.Get([]byte(webURL))
		if bts == nil {
			return ErrNotFound
		}

		if err := json.Unmarshal(bts, &s); err != nil {
			return fmt.Errorf("unmarshal summary: %w", err)
		}

		return nil
	})
	if err != nil {
		return Summary{}, fmt.Errorf("view storage: %w", err)
	}

	return s, nil
}

// Close closes the storage.
func (b *Bolt) Close() error { return b.db.Close() }
