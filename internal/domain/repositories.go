package domain

import (
	"context"
)

// AccountRepository provides the user endpoints of the catalog API
type AccountRepository interface {
	// Register creates a user. The returned string is the server's reply body.
	Register(ctx context.Context, creds Credentials) (string, error)

	// Login authenticates and returns the opaque session token body
	Login(ctx context.Context, creds Credentials) (string, error)
}

// BookRepository provides the book endpoints of the catalog API
type BookRepository interface {
	// AddBook creates a book owned by the logged-in user
	AddBook(ctx context.Context, draft BookDraft) error

	// RemoveBook deletes a book by ID
	RemoveBook(ctx context.Context, id int64) error

	// ListBooks returns the user's books in server order
	ListBooks(ctx context.Context) ([]Book, error)
}

// Journal records operation outcomes
type Journal interface {
	Record(entry JournalEntry) error
	Recent(limit int) ([]JournalEntry, error)
	Close() error
}

// NopJournal discards entries (journal disabled, tests).
type NopJournal struct{}

func (NopJournal) Record(JournalEntry) error          { return nil }
func (NopJournal) Recent(int) ([]JournalEntry, error) { return nil, nil }
func (NopJournal) Close() error                       { return nil }
