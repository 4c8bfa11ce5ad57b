package session

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(t *testing.T) *State {
	t.Helper()
	s, err := New()
	require.NoError(t, err)
	return s
}

func TestNewStateIsEmpty(t *testing.T) {
	s := newState(t)

	assert.Empty(t, s.Token())
	assert.Empty(t, s.Books())
	assert.False(t, s.HasBooks())
	assert.False(t, s.Fetched())
	assert.NotNil(t, s.Jar())
}

func TestSetTokenOverwrites(t *testing.T) {
	s := newState(t)

	s.SetToken("tok-1")
	assert.Equal(t, "tok-1", s.Token())

	s.SetToken("tok-2")
	assert.Equal(t, "tok-2", s.Token())
}

func TestReplaceBooksDiscardsPreviousSnapshot(t *testing.T) {
	s := newState(t)

	s.ReplaceBooks([]domain.Book{
		{ID: 1, Title: "T", Author: "A", Year: 2000},
		{ID: 2, Title: "U", Author: "B", Year: 2001},
	})
	require.Len(t, s.Books(), 2)

	s.ReplaceBooks([]domain.Book{{ID: 3, Title: "V", Author: "C", Year: 2002}})
	assert.Equal(t, []domain.Book{{ID: 3, Title: "V", Author: "C", Year: 2002}}, s.Books())
	assert.True(t, s.Fetched())
}

func TestReplaceBooksWithEmptyList(t *testing.T) {
	s := newState(t)
	s.ReplaceBooks([]domain.Book{{ID: 1, Title: "T"}})

	s.ReplaceBooks(nil)

	assert.Empty(t, s.Books())
	assert.False(t, s.HasBooks())
	assert.True(t, s.Fetched())
}

func TestBooksReturnsCopy(t *testing.T) {
	s := newState(t)
	s.ReplaceBooks([]domain.Book{{ID: 1, Title: "T"}})

	books := s.Books()
	books[0].Title = "changed"

	assert.Equal(t, "T", s.Books()[0].Title)
}

func TestReplaceBooksCopiesInput(t *testing.T) {
	s := newState(t)
	in := []domain.Book{{ID: 1, Title: "T"}}
	s.ReplaceBooks(in)

	in[0].Title = "changed"

	assert.Equal(t, "T", s.Books()[0].Title)
}

func TestJarKeepsCookiesPerSession(t *testing.T) {
	u, err := url.Parse("http://localhost:3030/api/login")
	require.NoError(t, err)

	a := newState(t)
	b := newState(t)
	a.Jar().SetCookies(u, []*http.Cookie{{Name: "token", Value: "jwt", Path: "/"}})

	assert.Len(t, a.Jar().Cookies(u), 1)
	assert.Empty(t, b.Jar().Cookies(u))
}
