package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/i18n"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	var body string
	switch m.nav.Current() {
	case PageRegistration:
		body = m.registration.View()
	case PageLogin:
		body = m.login.View()
	case PageCatalog:
		body = m.catalog.View()
	}

	sections := []string{
		m.renderNavBar(),
		styles.PanelStyle.Render(body),
	}
	if notice := m.renderNotice(); notice != "" {
		sections = append(sections, notice)
	}
	sections = append(sections, m.renderFooter())

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.Ready && m.Width > 0 {
		view = lipgloss.NewStyle().MaxWidth(m.Width).Render(view)
	}
	return view
}

// renderNavBar renders one tab per page with the active page highlighted
func (m Model) renderNavBar() string {
	tabs := make([]string, 0, len(Pages)+1)
	tabs = append(tabs, styles.AccentStyle.Bold(true).Render(i18n.T("app.title"))+"  ")
	for _, p := range Pages {
		style := styles.NavInactiveStyle
		if p == m.nav.Current() {
			style = styles.NavActiveStyle
		}
		tabs = append(tabs, style.Render(p.Title()), " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderNotice() string {
	if m.notice == (Notification{}) {
		return ""
	}

	var color lipgloss.Color
	var textStyle lipgloss.Style
	switch m.notice.Kind {
	case NoticeError:
		color, textStyle = styles.Red, styles.ErrorStyle
	case NoticeSuccess:
		color, textStyle = styles.Green, styles.SuccessStyle
	default:
		color, textStyle = styles.Blue, styles.InfoStyle
	}

	var lines []string
	if m.notice.Title != "" {
		lines = append(lines, styles.TitleStyle.Render(m.notice.Title))
	}
	if m.notice.Text != "" {
		lines = append(lines, textStyle.Render(m.notice.Text))
	}
	return styles.NoticeStyle.BorderForeground(color).Render(strings.Join(lines, "\n"))
}

// renderFooter renders spinner and key hints on a single line
func (m Model) renderFooter() string {
	var left string
	if m.pending > 0 {
		left = m.spinner.View() + " " + styles.DimStyle.Render(i18n.T("notify.working")) + "  "
	}

	bindings := []key.Binding{m.keys.Registration, m.keys.Login, m.keys.Catalog, m.keys.NextField, m.keys.Submit}
	if m.nav.Current() == PageCatalog {
		bindings = append(bindings, m.keys.Filter, m.keys.GetBooks)
	}
	bindings = append(bindings, m.keys.Quit)

	hints := make([]string, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		hints[i] = styles.HelpKeyStyle.Render(h.Key) + " " + styles.HelpDescStyle.Render(h.Desc)
	}
	return left + strings.Join(hints, styles.DimStyle.Render(" · "))
}
