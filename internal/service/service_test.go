package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccounts struct {
	reply string
	token string
	err   error
	got   domain.Credentials
}

func (f *fakeAccounts) Register(_ context.Context, creds domain.Credentials) (string, error) {
	f.got = creds
	return f.reply, f.err
}

func (f *fakeAccounts) Login(_ context.Context, creds domain.Credentials) (string, error) {
	f.got = creds
	return f.token, f.err
}

type fakeBooks struct {
	books   []domain.Book
	err     error
	draft   domain.BookDraft
	removed int64
	calls   int
}

func (f *fakeBooks) AddBook(_ context.Context, draft domain.BookDraft) error {
	f.calls++
	f.draft = draft
	return f.err
}

func (f *fakeBooks) RemoveBook(_ context.Context, id int64) error {
	f.calls++
	f.removed = id
	return f.err
}

func (f *fakeBooks) ListBooks(context.Context) ([]domain.Book, error) {
	f.calls++
	return f.books, f.err
}

type failingJournal struct{ domain.NopJournal }

func (failingJournal) Record(domain.JournalEntry) error { return errors.New("disk full") }

func newJournal(t *testing.T) *store.Journal {
	t.Helper()
	j, err := store.NewJournal("")
	require.NoError(t, err)
	return j
}

func TestAccountService_LoginRecordsNoToken(t *testing.T) {
	journal := newJournal(t)
	repo := &fakeAccounts{token: "abc123"}
	svc := NewAccountService(repo, journal, nil)

	token, err := svc.Login(context.Background(), domain.Credentials{Username: "u1", Password: "Passw0rd!"})
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
	assert.Equal(t, "u1", repo.got.Username)

	entries, err := journal.Recent(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.OpLogin, entries[0].Op)
	assert.True(t, entries[0].OK)
	assert.NotContains(t, entries[0].String(), "abc123")
	assert.NotContains(t, entries[0].String(), "Passw0rd!")
}

func TestAccountService_RegisterFailure(t *testing.T) {
	journal := newJournal(t)
	repo := &fakeAccounts{err: &domain.APIError{Op: domain.OpRegister, Status: http.StatusConflict, Message: "User already exists"}}
	svc := NewAccountService(repo, journal, nil)

	reply, err := svc.Register(context.Background(), domain.Credentials{Username: "u1", Password: "x"})
	require.Error(t, err)
	assert.Empty(t, reply)
	assert.Equal(t, "User already exists", domain.FailureMessage(err))

	entries, err := journal.Recent(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].OK)
	assert.Equal(t, http.StatusConflict, entries[0].Status)
	assert.Equal(t, "User already exists", entries[0].Message)
}

func TestAccountService_JournalErrorDoesNotFailOperation(t *testing.T) {
	svc := NewAccountService(&fakeAccounts{reply: "User added"}, failingJournal{}, nil)

	reply, err := svc.Register(context.Background(), domain.Credentials{Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "User added", reply)
}

func TestAccountService_NeverLogsCredentials(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	creds := domain.Credentials{Username: "ann-the-user", Password: "Passw0rd!"}
	ctx := context.Background()

	ok := NewAccountService(&fakeAccounts{reply: "User added", token: "tok-123"}, nil, logger)
	_, err := ok.Register(ctx, creds)
	require.NoError(t, err)
	_, err = ok.Login(ctx, creds)
	require.NoError(t, err)

	failing := NewAccountService(&fakeAccounts{err: &domain.APIError{Op: domain.OpLogin, Status: 401, Message: "Unauthorized"}}, nil, logger)
	_, err = failing.Register(ctx, creds)
	require.Error(t, err)
	_, err = failing.Login(ctx, creds)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "logged in")
	assert.Contains(t, out, "login failed")
	assert.NotContains(t, out, "ann-the-user")
	assert.NotContains(t, out, "Passw0rd!")
	assert.NotContains(t, out, "tok-123")
}

func TestCatalogService_PassesThrough(t *testing.T) {
	journal := newJournal(t)
	repo := &fakeBooks{books: []domain.Book{{ID: 2, Title: "B"}, {ID: 1, Title: "A"}}}
	svc := NewCatalogService(repo, journal, nil)
	ctx := context.Background()

	require.NoError(t, svc.AddBook(ctx, domain.BookDraft{Title: "Dune", Author: "Herbert", Year: 1965}))
	assert.Equal(t, "Dune", repo.draft.Title)

	require.NoError(t, svc.RemoveBook(ctx, 7))
	assert.Equal(t, int64(7), repo.removed)

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, []int64{books[0].ID, books[1].ID})

	// Every call reaches the server; nothing is cached.
	_, err = svc.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, repo.calls)

	entries, err := journal.Recent(0)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, domain.OpListBooks, entries[0].Op)
	assert.Equal(t, domain.OpAddBook, entries[3].Op)
}

func TestCatalogService_ListFailureReturnsNil(t *testing.T) {
	repo := &fakeBooks{
		books: []domain.Book{{ID: 1}},
		err:   &domain.NetworkError{Op: domain.OpListBooks, Err: domain.ErrServerOffline},
	}
	svc := NewCatalogService(repo, nil, nil)

	books, err := svc.ListBooks(context.Background())
	assert.Nil(t, books)
	assert.ErrorIs(t, err, domain.ErrServerOffline)
}

func TestHistoryService_Find(t *testing.T) {
	journal := newJournal(t)
	for _, e := range []domain.JournalEntry{
		{Op: domain.OpRegister, OK: true},
		{Op: domain.OpLogin, OK: false, Status: 401, Message: "Unauthorized"},
		{Op: domain.OpAddBook, OK: true},
		{Op: domain.OpLogin, OK: true},
	} {
		require.NoError(t, journal.Record(e))
	}
	svc := NewHistoryService(journal)

	recent, err := svc.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, domain.OpLogin, recent[0].Op)
	assert.Equal(t, domain.OpAddBook, recent[1].Op)

	found, err := svc.Find("unauthorized", 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 401, found[0].Status)

	found, err = svc.Find("login", 0)
	require.NoError(t, err)
	require.Len(t, found, 2)
	for _, e := range found {
		assert.Equal(t, domain.OpLogin, e.Op)
	}

	found, err = svc.Find("", 3)
	require.NoError(t, err)
	assert.Len(t, found, 3)

	found, err = svc.Find("zzzz", 0)
	require.NoError(t, err)
	assert.Empty(t, found)
}
