package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Credentials is the username/password pair typed into the registration
// and login forms. It is never persisted or logged.
type Credentials struct {
	Username string
	Password string
}

// BookDraft is the input for creating a book
type BookDraft struct {
	Title  string
	Author string
	Year   int
}

// Book is a catalog record as returned by the remote API
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
}

// Row returns the book formatted as table cells (ID, Title, Author, Year)
func (b Book) Row() []string {
	return []string{
		strconv.FormatInt(b.ID, 10),
		b.Title,
		b.Author,
		strconv.Itoa(b.Year),
	}
}

// FilterText returns the text the catalog filter matches against
func (b Book) FilterText() string {
	return b.Title + " " + b.Author
}

// Operation names an outbound API operation
type Operation string

const (
	OpRegister   Operation = "register"
	OpLogin      Operation = "login"
	OpAddBook    Operation = "add_book"
	OpRemoveBook Operation = "remove_book"
	OpListBooks  Operation = "list_books"
)

// JournalEntry records the outcome of one operation.
// Entries never carry credentials, tokens or book data.
type JournalEntry struct {
	Seq     uint64    `json:"seq"`
	At      time.Time `json:"at"`
	Op      Operation `json:"op"`
	OK      bool      `json:"ok"`
	Status  int       `json:"status,omitempty"`
	Message string    `json:"message,omitempty"`
}

// String returns a single-line summary of the entry
func (e JournalEntry) String() string {
	outcome := "ok"
	if !e.OK {
		outcome = "failed"
	}
	s := fmt.Sprintf("%s  %-12s %s", e.At.Format(time.DateTime), e.Op, outcome)
	if e.Status != 0 {
		s += fmt.Sprintf(" (%d)", e.Status)
	}
	if e.Message != "" {
		s += ": " + e.Message
	}
	return s
}
