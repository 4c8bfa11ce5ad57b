package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/shelf/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var bucketJournal = []byte("journal")

// maxMemoryEntries bounds the journal in memory-only mode
const maxMemoryEntries = 1000

// Journal implements domain.Journal using BoltDB. Entries are keyed by the
// bucket sequence, so cursor order is record order.
type Journal struct {
	db *bolt.DB

	// memory-only mode (no persistence)
	mu      sync.Mutex
	seq     uint64
	entries []domain.JournalEntry
}

// NewJournal opens the journal at path. An empty path selects memory-only mode.
func NewJournal(path string) (*Journal, error) {
	if path == "" {
		return &Journal{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketJournal)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record appends an entry, assigning its sequence number and, when unset,
// its timestamp
func (j *Journal) Record(entry domain.JournalEntry) error {
	if entry.At.IsZero() {
		entry.At = time.Now()
	}

	if j.db == nil {
		j.mu.Lock()
		defer j.mu.Unlock()
		j.seq++
		entry.Seq = j.seq
		j.entries = append(j.entries, entry)
		if len(j.entries) > maxMemoryEntries {
			j.entries = j.entries[len(j.entries)-maxMemoryEntries:]
		}
		return nil
	}

	return j.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketJournal)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		entry.Seq = seq

		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return b.Put(seqKey(seq), data)
	})
}

// Recent returns up to limit entries, newest first. limit <= 0 returns all.
func (j *Journal) Recent(limit int) ([]domain.JournalEntry, error) {
	if j.db == nil {
		j.mu.Lock()
		defer j.mu.Unlock()
		var out []domain.JournalEntry
		for i := len(j.entries) - 1; i >= 0; i-- {
			if limit > 0 && len(out) >= limit {
				break
			}
			out = append(out, j.entries[i])
		}
		return out, nil
	}

	var out []domain.JournalEntry
	err := j.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketJournal).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(out) >= limit {
				break
			}
			var entry domain.JournalEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("corrupt journal entry %x: %w", k, err)
			}
			out = append(out, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

var _ domain.Journal = (*Journal)(nil)
