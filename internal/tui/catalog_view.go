package tui

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/i18n"
	"github.com/mmcdole/shelf/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

const (
	catGetBooks = iota
	catTitle
	catAuthor
	catYear
	catAdd
	catBookID
	catRemove
)

const maxTableRows = 15

// bookSource implements sahilm/fuzzy.Source over title and author
type bookSource []domain.Book

func (s bookSource) String(i int) string { return strings.ToLower(s[i].FilterText()) }
func (s bookSource) Len() int            { return len(s) }

// catalogView manages books. It renders a copy of the session snapshot and
// never changes it.
type catalogView struct {
	form      form
	keys      KeyMap
	table     table.Model
	filter    textinput.Model
	filtering bool

	books   []domain.Book
	visible []domain.Book
	fetched bool
}

func newCatalogView(keys KeyMap) catalogView {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: i18n.T("form.title"), Width: 32},
		{Title: i18n.T("form.author"), Width: 24},
		{Title: i18n.T("form.year"), Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(1),
	)
	s := table.DefaultStyles()
	s.Header = styles.TableHeaderStyle
	s.Cell = styles.TableCellStyle
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	fi := textinput.New()
	fi.Prompt = ""
	fi.CharLimit = 64
	fi.Width = 30
	fi.Cursor.Style = styles.CursorStyle
	fi.TextStyle = styles.FilterStyle

	return catalogView{
		form: newForm(keys,
			buttonItem(i18n.T("form.get_books"), actionGetBooks),
			textItem(i18n.T("form.title"), ""),
			textItem(i18n.T("form.author"), ""),
			numberItem(i18n.T("form.year"), "2000"),
			buttonItem(i18n.T("form.add_book"), actionAddBook),
			numberItem(i18n.T("form.book_id"), ""),
			buttonItem(i18n.T("form.remove_book"), actionRemoveBook),
		),
		keys:   keys,
		table:  t,
		filter: fi,
	}
}

func (v catalogView) Update(msg tea.Msg) (catalogView, tea.Cmd, formAction) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if v.filtering && isKey {
		switch {
		case key.Matches(keyMsg, v.keys.ClearFilter):
			v.clearFilter()
			return v, nil, actionNone
		case key.Matches(keyMsg, v.keys.Submit):
			v.filtering = false
			v.filter.Blur()
			return v, nil, actionNone
		}
		var cmd tea.Cmd
		v.filter, cmd = v.filter.Update(msg)
		v.applyFilter()
		return v, cmd, actionNone
	}

	if isKey {
		switch {
		case key.Matches(keyMsg, v.keys.Filter):
			v.filtering = true
			return v, v.filter.Focus(), actionNone
		case key.Matches(keyMsg, v.keys.ClearFilter):
			v.clearFilter()
			return v, nil, actionNone
		case key.Matches(keyMsg, v.keys.GetBooks):
			return v, nil, actionGetBooks
		}
	}

	var cmd tea.Cmd
	var action formAction
	v.form, cmd, action = v.form.Update(msg)
	return v, cmd, action
}

// Draft returns the book entered in the add fields. When the year is not a
// number, ok is false.
func (v catalogView) Draft() (draft domain.BookDraft, ok bool) {
	year, err := strconv.Atoi(strings.TrimSpace(v.form.Value(catYear)))
	if err != nil {
		return domain.BookDraft{}, false
	}
	return domain.BookDraft{
		Title:  v.form.Value(catTitle),
		Author: v.form.Value(catAuthor),
		Year:   year,
	}, true
}

// BookID returns the ID entered in the remove field
func (v catalogView) BookID() (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(v.form.Value(catBookID)), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// SetBooks replaces the rendered rows. fetched tells an empty catalog
// apart from one that was never loaded.
func (v *catalogView) SetBooks(books []domain.Book, fetched bool) {
	v.books = books
	v.fetched = fetched
	v.applyFilter()
}

// Visible returns the rows currently shown
func (v catalogView) Visible() []domain.Book {
	return v.visible
}

// Reset clears the form and the filter
func (v *catalogView) Reset() {
	v.form.Reset()
	v.clearFilter()
}

func (v *catalogView) clearFilter() {
	v.filtering = false
	v.filter.Reset()
	v.filter.Blur()
	v.applyFilter()
}

// applyFilter narrows rows by fuzzy match, keeping server order
func (v *catalogView) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(v.filter.Value()))
	if query == "" {
		v.visible = v.books
	} else {
		matches := fuzzy.FindFrom(query, bookSource(v.books))
		idx := make([]int, len(matches))
		for i, m := range matches {
			idx[i] = m.Index
		}
		sort.Ints(idx)

		v.visible = make([]domain.Book, len(idx))
		for i, j := range idx {
			v.visible[i] = v.books[j]
		}
	}

	rows := make([]table.Row, len(v.visible))
	for i, b := range v.visible {
		rows[i] = table.Row(b.Row())
	}
	v.table.SetRows(rows)
	v.table.SetHeight(min(max(len(rows), 1), maxTableRows) + 1)
	v.table.GotoTop()
}

func (v catalogView) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(i18n.T("catalog.header")))
	b.WriteString("\n\n")
	b.WriteString(v.form.View())
	b.WriteString("\n\n")

	if len(v.books) == 0 {
		msg := i18n.T("catalog.empty")
		if v.fetched {
			msg = i18n.T("catalog.none")
		}
		b.WriteString(styles.DimStyle.Render(msg))
		return b.String()
	}

	if v.filtering || v.filter.Value() != "" {
		b.WriteString(styles.FilterPromptStyle.Render(i18n.T("catalog.filter") + ": "))
		b.WriteString(v.filter.View())
		b.WriteString("\n")
	}

	if len(v.visible) == 0 {
		b.WriteString(styles.DimStyle.Render(i18n.T("catalog.filter_none")))
		return b.String()
	}
	b.WriteString(v.table.View())
	return b.String()
}
