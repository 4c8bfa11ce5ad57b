package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/i18n"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

const (
	loginUsername = iota
	loginPassword
	loginSubmit
)

// loginView collects credentials for an existing account
type loginView struct {
	form form
}

func newLoginView(keys KeyMap) loginView {
	return loginView{
		form: newForm(keys,
			textItem(i18n.T("form.username"), ""),
			passwordItem(i18n.T("form.password")),
			buttonItem(i18n.T("form.login"), actionLogin),
		),
	}
}

func (v loginView) Update(msg tea.Msg) (loginView, tea.Cmd, formAction) {
	var cmd tea.Cmd
	var action formAction
	v.form, cmd, action = v.form.Update(msg)
	return v, cmd, action
}

// Credentials returns the entered username and password
func (v loginView) Credentials() domain.Credentials {
	return domain.Credentials{
		Username: v.form.Value(loginUsername),
		Password: v.form.Value(loginPassword),
	}
}

// Reset clears the form
func (v *loginView) Reset() {
	v.form.Reset()
}

func (v loginView) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(i18n.T("login.header")))
	b.WriteString("\n\n")
	b.WriteString(v.form.View())
	return b.String()
}
