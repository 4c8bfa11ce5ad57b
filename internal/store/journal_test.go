package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openJournal(t *testing.T, path string) *Journal {
	t.Helper()
	j, err := NewJournal(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func recordOps(t *testing.T, j *Journal, ops ...domain.Operation) {
	t.Helper()
	for _, op := range ops {
		require.NoError(t, j.Record(domain.JournalEntry{Op: op, OK: true}))
	}
}

func TestJournalRecentNewestFirst(t *testing.T) {
	for name, path := range map[string]string{
		"bolt":   filepath.Join(t.TempDir(), "journal.db"),
		"memory": "",
	} {
		t.Run(name, func(t *testing.T) {
			j := openJournal(t, path)
			recordOps(t, j, domain.OpRegister, domain.OpLogin, domain.OpListBooks)

			entries, err := j.Recent(0)
			require.NoError(t, err)
			require.Len(t, entries, 3)
			assert.Equal(t, domain.OpListBooks, entries[0].Op)
			assert.Equal(t, domain.OpRegister, entries[2].Op)
			assert.Equal(t, uint64(3), entries[0].Seq)
			assert.False(t, entries[0].At.IsZero())

			limited, err := j.Recent(2)
			require.NoError(t, err)
			require.Len(t, limited, 2)
			assert.Equal(t, domain.OpLogin, limited[1].Op)
		})
	}
}

func TestJournalPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.db")

	j, err := NewJournal(path)
	require.NoError(t, err)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, j.Record(domain.JournalEntry{
		At: at, Op: domain.OpRemoveBook, Status: 404, Message: "Book not found",
	}))
	require.NoError(t, j.Close())

	j = openJournal(t, path)
	entries, err := j.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.OpRemoveBook, entries[0].Op)
	assert.False(t, entries[0].OK)
	assert.Equal(t, 404, entries[0].Status)
	assert.Equal(t, "Book not found", entries[0].Message)
	assert.True(t, at.Equal(entries[0].At))

	recordOps(t, j, domain.OpLogin)
	entries, err = j.Recent(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), entries[0].Seq)
}

func TestJournalEmpty(t *testing.T) {
	j := openJournal(t, filepath.Join(t.TempDir(), "journal.db"))

	entries, err := j.Recent(5)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMemoryJournalIsBounded(t *testing.T) {
	j := openJournal(t, "")
	for i := 0; i < maxMemoryEntries+5; i++ {
		require.NoError(t, j.Record(domain.JournalEntry{Op: domain.OpListBooks, OK: true}))
	}

	entries, err := j.Recent(0)
	require.NoError(t, err)
	assert.Len(t, entries, maxMemoryEntries)
	assert.Equal(t, uint64(maxMemoryEntries+5), entries[0].Seq)
}
