package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/i18n"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

const (
	regUsername = iota
	regPassword
	regSubmit
)

// registrationView collects credentials for a new account
type registrationView struct {
	form form
}

func newRegistrationView(keys KeyMap) registrationView {
	return registrationView{
		form: newForm(keys,
			textItem(i18n.T("form.username"), ""),
			passwordItem(i18n.T("form.password")),
			buttonItem(i18n.T("form.register"), actionRegister),
		),
	}
}

func (v registrationView) Update(msg tea.Msg) (registrationView, tea.Cmd, formAction) {
	var cmd tea.Cmd
	var action formAction
	v.form, cmd, action = v.form.Update(msg)
	return v, cmd, action
}

// Credentials returns the entered username and password
func (v registrationView) Credentials() domain.Credentials {
	return domain.Credentials{
		Username: v.form.Value(regUsername),
		Password: v.form.Value(regPassword),
	}
}

// Reset clears the form
func (v *registrationView) Reset() {
	v.form.Reset()
}

func (v registrationView) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(i18n.T("registration.header")))
	b.WriteString("\n\n")
	b.WriteString(v.form.View())
	b.WriteString("\n\n")
	b.WriteString(styles.DimStyle.Width(60).Render(i18n.T("registration.policy")))
	return b.String()
}
