package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/service"
)

// Command factories for async operations. Requests carry no deadline.

// RegisterCmd creates a user
func RegisterCmd(svc *service.AccountService, creds domain.Credentials) tea.Cmd {
	return func() tea.Msg {
		reply, err := svc.Register(context.Background(), creds)
		if err != nil {
			return OperationFailedMsg{Op: domain.OpRegister, Err: err}
		}
		return RegisteredMsg{Reply: reply}
	}
}

// LoginCmd authenticates and yields the session token
func LoginCmd(svc *service.AccountService, creds domain.Credentials) tea.Cmd {
	return func() tea.Msg {
		token, err := svc.Login(context.Background(), creds)
		if err != nil {
			return OperationFailedMsg{Op: domain.OpLogin, Err: err}
		}
		return LoggedInMsg{Token: token}
	}
}

// AddBookCmd creates a book
func AddBookCmd(svc *service.CatalogService, draft domain.BookDraft) tea.Cmd {
	return func() tea.Msg {
		if err := svc.AddBook(context.Background(), draft); err != nil {
			return OperationFailedMsg{Op: domain.OpAddBook, Err: err}
		}
		return BookAddedMsg{Title: draft.Title}
	}
}

// RemoveBookCmd deletes a book
func RemoveBookCmd(svc *service.CatalogService, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := svc.RemoveBook(context.Background(), id); err != nil {
			return OperationFailedMsg{Op: domain.OpRemoveBook, Err: err}
		}
		return BookRemovedMsg{ID: id}
	}
}

// ListBooksCmd fetches the book list
func ListBooksCmd(svc *service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		books, err := svc.ListBooks(context.Background())
		if err != nil {
			return OperationFailedMsg{Op: domain.OpListBooks, Err: err}
		}
		return BooksLoadedMsg{Books: books}
	}
}

// ClearNoticeCmd returns a command that clears notification id after a delay
func ClearNoticeCmd(delay time.Duration, id int) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearNoticeMsg{ID: id}
	})
}
