// Package session holds the client's in-memory session: the token returned by
// login, the cookie jar carrying ambient credentials, and the book snapshot.
// Nothing here is ever written to disk.
package session

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"slices"
	"sync"

	"github.com/mmcdole/shelf/internal/domain"
	"golang.org/x/net/publicsuffix"
)

// State is the session state shared by the TUI and the API client.
// The TUI update loop is the only writer; the API client reads the jar
// and token from command goroutines.
type State struct {
	mu    sync.RWMutex
	token string
	books []domain.Book
	// fetched is false until the first successful list fetch
	fetched bool

	jar http.CookieJar
}

// New creates an empty session with a fresh in-memory cookie jar
func New() (*State, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &State{jar: jar}, nil
}

// Jar returns the cookie jar holding ambient credentials
func (s *State) Jar() http.CookieJar {
	return s.jar
}

// Token returns the current session token, empty before the first login
func (s *State) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores the token from a successful login, replacing any previous one
func (s *State) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Books returns a copy of the current snapshot
func (s *State) Books() []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.books)
}

// ReplaceBooks discards the snapshot and installs books in its place
func (s *State) ReplaceBooks(books []domain.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = slices.Clone(books)
	s.fetched = true
}

// HasBooks reports whether the snapshot is non-empty
func (s *State) HasBooks() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books) > 0
}

// Fetched reports whether a list fetch has ever succeeded
func (s *State) Fetched() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetched
}
