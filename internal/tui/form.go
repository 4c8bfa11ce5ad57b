package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// formAction is what a submitted form asks the root model to do
type formAction int

const (
	actionNone formAction = iota
	actionRegister
	actionLogin
	actionGetBooks
	actionAddBook
	actionRemoveBook
)

// formItem is either a text input or a button
type formItem struct {
	label   string
	input   textinput.Model
	button  bool
	action  formAction
	numeric bool
}

func textItem(label, placeholder string) formItem {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	ti.Width = 40
	ti.Cursor.Style = styles.CursorStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	return formItem{label: label, input: ti}
}

func passwordItem(label string) formItem {
	it := textItem(label, "")
	it.input.EchoMode = textinput.EchoPassword
	it.input.EchoCharacter = '•'
	return it
}

func numberItem(label, placeholder string) formItem {
	it := textItem(label, placeholder)
	it.input.CharLimit = 18
	it.numeric = true
	return it
}

func buttonItem(label string, action formAction) formItem {
	return formItem{label: label, button: true, action: action}
}

// form is a focus ring of inputs and buttons. Tab and arrows move focus,
// enter on an input advances and enter on a button submits.
type form struct {
	items []formItem
	focus int
	keys  KeyMap
}

func newForm(keys KeyMap, items ...formItem) form {
	f := form{items: items, keys: keys}
	f.setFocus(0)
	return f
}

// Focused returns the index of the focused item
func (f form) Focused() int {
	return f.focus
}

// Value returns the text of item i as typed
func (f form) Value(i int) string {
	if i < 0 || i >= len(f.items) {
		return ""
	}
	return f.items[i].input.Value()
}

// SetValue replaces the text of input i
func (f *form) SetValue(i int, s string) {
	if i < 0 || i >= len(f.items) || f.items[i].button {
		return
	}
	f.items[i].input.SetValue(s)
}

// Reset clears every input and returns focus to the first item
func (f *form) Reset() {
	for i := range f.items {
		if !f.items[i].button {
			f.items[i].input.Reset()
		}
	}
	f.setFocus(0)
}

func (f *form) setFocus(i int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	f.focus = (i + len(f.items)) % len(f.items)

	var cmd tea.Cmd
	for j := range f.items {
		if f.items[j].button {
			continue
		}
		if j == f.focus {
			cmd = f.items[j].input.Focus()
		} else {
			f.items[j].input.Blur()
		}
	}
	return cmd
}

// Update handles a message for the focused item
func (f form) Update(msg tea.Msg) (form, tea.Cmd, formAction) {
	if len(f.items) == 0 {
		return f, nil, actionNone
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, f.keys.NextField):
			return f, f.setFocus(f.focus + 1), actionNone
		case key.Matches(keyMsg, f.keys.PrevField):
			return f, f.setFocus(f.focus - 1), actionNone
		case key.Matches(keyMsg, f.keys.Submit):
			item := f.items[f.focus]
			if item.button {
				return f, nil, item.action
			}
			return f, f.setFocus(f.focus + 1), actionNone
		}

		if f.items[f.focus].numeric && keyMsg.Type == tea.KeyRunes && !digitsOnly(keyMsg.Runes) {
			return f, nil, actionNone
		}
	}

	item := &f.items[f.focus]
	if item.button {
		return f, nil, actionNone
	}
	var cmd tea.Cmd
	item.input, cmd = item.input.Update(msg)
	return f, cmd, actionNone
}

func digitsOnly(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// View renders the form, one item per line
func (f form) View() string {
	var b strings.Builder
	for i, item := range f.items {
		focused := i == f.focus
		if item.button {
			style := styles.ButtonStyle
			if focused {
				style = styles.FocusedButtonStyle
			}
			b.WriteString(style.Render(item.label))
		} else {
			label := styles.LabelStyle
			if focused {
				label = styles.FocusedLabelStyle
			}
			b.WriteString(label.Render(item.label))
			b.WriteString(" ")
			b.WriteString(item.input.View())
		}
		if i < len(f.items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
