package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/i18n"
	"github.com/mmcdole/shelf/internal/service"
	"github.com/mmcdole/shelf/internal/session"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// NoticeKind classifies a notification
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// Notification is the message shown after an operation completes
type Notification struct {
	Kind  NoticeKind
	Title string
	Text  string
}

// successNoticeTTL is how long success notifications stay visible.
// Errors stay until replaced.
const successNoticeTTL = 5 * time.Second

// Model is the main Bubble Tea model for the application
type Model struct {
	Ready  bool
	Width  int
	Height int

	// Services
	AccountSvc *service.AccountService
	CatalogSvc *service.CatalogService

	session *session.State
	nav     Navigator
	keys    KeyMap
	logger  *slog.Logger

	// Views
	registration registrationView
	login        loginView
	catalog      catalogView

	// UI state
	notice   Notification
	noticeID int
	pending  int
	spinner  spinner.Model
}

// NewModel creates a new application model. The model is the only writer
// of st.
func NewModel(
	st *session.State,
	accountSvc *service.AccountService,
	catalogSvc *service.CatalogService,
	logger *slog.Logger,
) Model {
	if logger == nil {
		logger = slog.Default()
	}
	keys := DefaultKeyMap()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	m := Model{
		AccountSvc:   accountSvc,
		CatalogSvc:   catalogSvc,
		session:      st,
		keys:         keys,
		logger:       logger,
		registration: newRegistrationView(keys),
		login:        newLoginView(keys),
		catalog:      newCatalogView(keys),
		spinner:      sp,
	}
	m.catalog.SetBooks(st.Books(), st.Fetched())
	return m
}

// Page returns the active page
func (m Model) Page() Page {
	return m.nav.Current()
}

// Notice returns the current notification
func (m Model) Notice() Notification {
	return m.notice
}

// Pending returns the number of operations in flight
func (m Model) Pending() int {
	return m.pending
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case RegisteredMsg:
		m.done()
		m.goTo(PageLogin)
		return m, m.notify(NoticeSuccess, "", i18n.T("notify.register.success"))

	case LoggedInMsg:
		m.done()
		m.session.SetToken(msg.Token)
		m.goTo(PageCatalog)
		return m, m.notify(NoticeSuccess, "", i18n.Tf("notify.login.success", map[string]any{"Token": msg.Token}))

	case BookAddedMsg:
		m.done()
		return m, m.notify(NoticeSuccess, "", i18n.T("notify.book.added"))

	case BookRemovedMsg:
		m.done()
		return m, m.notify(NoticeSuccess, "", i18n.T("notify.book.removed"))

	case BooksLoadedMsg:
		m.done()
		m.session.ReplaceBooks(msg.Books)
		m.catalog.SetBooks(m.session.Books(), true)
		return m, m.notify(NoticeSuccess, "", i18n.Tn("notify.book.listed", len(msg.Books)))

	case OperationFailedMsg:
		m.done()
		m.logger.Error("operation failed", "op", msg.Op, "status", domain.FailureStatus(msg.Err), "error", msg.Err)
		return m, m.notify(NoticeError, failureTitle(msg.Op), domain.FailureMessage(msg.Err))

	case ClearNoticeMsg:
		if msg.ID == m.noticeID {
			m.notice = Notification{}
		}
		return m, nil
	}

	return m.updateView(msg)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Registration):
		m.goTo(PageRegistration)
		return m, nil
	case key.Matches(msg, m.keys.Login):
		m.goTo(PageLogin)
		return m, nil
	case key.Matches(msg, m.keys.Catalog):
		m.goTo(PageCatalog)
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		m.goTo(m.nav.Current().Next())
		return m, nil
	case key.Matches(msg, m.keys.PrevPage):
		m.goTo(m.nav.Current().Prev())
		return m, nil
	}
	return m.updateView(msg)
}

// updateView routes msg to the active view and runs any submitted action
func (m Model) updateView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var action formAction

	switch m.nav.Current() {
	case PageRegistration:
		m.registration, cmd, action = m.registration.Update(msg)
	case PageLogin:
		m.login, cmd, action = m.login.Update(msg)
	case PageCatalog:
		m.catalog, cmd, action = m.catalog.Update(msg)
	}

	if action == actionNone {
		return m, cmd
	}
	return m.submit(action)
}

// submit fires exactly one operation for action
func (m Model) submit(action formAction) (tea.Model, tea.Cmd) {
	switch action {
	case actionRegister:
		m.pending++
		return m, RegisterCmd(m.AccountSvc, m.registration.Credentials())

	case actionLogin:
		m.pending++
		return m, LoginCmd(m.AccountSvc, m.login.Credentials())

	case actionGetBooks:
		m.pending++
		return m, ListBooksCmd(m.CatalogSvc)

	case actionAddBook:
		draft, ok := m.catalog.Draft()
		if !ok {
			return m, m.notify(NoticeError, i18n.T("notify.book.add_failed"),
				i18n.Tf("notify.not_a_number", map[string]any{"Field": i18n.T("form.year")}))
		}
		m.pending++
		return m, AddBookCmd(m.CatalogSvc, draft)

	case actionRemoveBook:
		id, ok := m.catalog.BookID()
		if !ok {
			return m, m.notify(NoticeError, i18n.T("notify.book.remove_failed"),
				i18n.Tf("notify.not_a_number", map[string]any{"Field": i18n.T("form.book_id")}))
		}
		m.pending++
		return m, RemoveBookCmd(m.CatalogSvc, id)
	}
	return m, nil
}

// goTo activates p and resets the input state of the page being left
func (m *Model) goTo(p Page) {
	prev := m.nav.Current()
	if !m.nav.Go(p) {
		return
	}
	switch prev {
	case PageRegistration:
		m.registration.Reset()
	case PageLogin:
		m.login.Reset()
	case PageCatalog:
		m.catalog.Reset()
	}
	m.logger.Debug("page changed", "from", prev, "to", p)
}

func (m *Model) done() {
	if m.pending > 0 {
		m.pending--
	}
}

func (m *Model) notify(kind NoticeKind, title, text string) tea.Cmd {
	m.noticeID++
	m.notice = Notification{Kind: kind, Title: title, Text: text}
	if kind == NoticeSuccess {
		return ClearNoticeCmd(successNoticeTTL, m.noticeID)
	}
	return nil
}

func failureTitle(op domain.Operation) string {
	switch op {
	case domain.OpRegister:
		return i18n.T("notify.register.failed")
	case domain.OpLogin:
		return i18n.T("notify.login.failed")
	case domain.OpAddBook:
		return i18n.T("notify.book.add_failed")
	case domain.OpRemoveBook:
		return i18n.T("notify.book.remove_failed")
	case domain.OpListBooks:
		return i18n.T("notify.book.list_failed")
	}
	return string(op)
}
