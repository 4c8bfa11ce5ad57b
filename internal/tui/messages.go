package tui

import (
	"github.com/mmcdole/shelf/internal/domain"
)

// Message types for the TUI

// RegisteredMsg signals a successful registration
type RegisteredMsg struct {
	Reply string
}

// LoggedInMsg signals a successful login
type LoggedInMsg struct {
	Token string
}

// BookAddedMsg signals that a book was created
type BookAddedMsg struct {
	Title string
}

// BookRemovedMsg signals that a book was deleted
type BookRemovedMsg struct {
	ID int64
}

// BooksLoadedMsg carries a fresh book list
type BooksLoadedMsg struct {
	Books []domain.Book
}

// OperationFailedMsg reports a failed operation
type OperationFailedMsg struct {
	Op  domain.Operation
	Err error
}

func (e OperationFailedMsg) Error() string {
	return e.Err.Error()
}

// ClearNoticeMsg clears the notification if it is still the one with ID
type ClearNoticeMsg struct {
	ID int
}
