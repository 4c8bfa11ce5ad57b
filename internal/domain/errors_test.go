package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorIsAuthFailedOn401(t *testing.T) {
	err := fmt.Errorf("login: %w", &APIError{Op: OpLogin, Status: http.StatusUnauthorized, Message: "invalid credentials"})
	assert.ErrorIs(t, err, ErrAuthFailed)

	err = &APIError{Op: OpAddBook, Status: http.StatusBadRequest}
	assert.NotErrorIs(t, err, ErrAuthFailed)
}

func TestFailureMessage(t *testing.T) {
	assert.Equal(t, "", FailureMessage(nil))
	assert.Equal(t, "invalid credentials", FailureMessage(&APIError{Op: OpLogin, Status: 401, Message: "invalid credentials"}))
	assert.Equal(t, "", FailureMessage(&APIError{Op: OpAddBook, Status: 200}))

	netErr := &NetworkError{Op: OpListBooks, Err: fmt.Errorf("%w: dial tcp: refused", ErrServerOffline)}
	assert.Equal(t, "catalog server is unreachable: dial tcp: refused", FailureMessage(netErr))
	assert.ErrorIs(t, netErr, ErrServerOffline)

	assert.Equal(t, "boom", FailureMessage(errors.New("boom")))
}

func TestFailureStatus(t *testing.T) {
	assert.Equal(t, 429, FailureStatus(&APIError{Op: OpListBooks, Status: 429}))
	assert.Equal(t, 0, FailureStatus(&NetworkError{Op: OpListBooks, Err: ErrServerOffline}))
}

func TestAPIErrorString(t *testing.T) {
	assert.Equal(t, "remove_book: Book not found", (&APIError{Op: OpRemoveBook, Status: 500, Message: "Book not found"}).Error())
	assert.Equal(t, "add_book: server returned status 200", (&APIError{Op: OpAddBook, Status: 200}).Error())
}

func TestBookRow(t *testing.T) {
	b := Book{ID: 1, Title: "T", Author: "A", Year: 2000}
	assert.Equal(t, []string{"1", "T", "A", "2000"}, b.Row())
	assert.Equal(t, "T A", b.FilterText())
}

func TestJournalEntryString(t *testing.T) {
	at := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	ok := JournalEntry{At: at, Op: OpLogin, OK: true}
	assert.Equal(t, "2026-10-19 09:30:00  login        ok", ok.String())

	failed := JournalEntry{At: at, Op: OpLogin, Status: 401, Message: "Unauthorized"}
	assert.Equal(t, "2026-10-19 09:30:00  login        failed (401): Unauthorized", failed.String())
}
