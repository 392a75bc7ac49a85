// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package forminput holds the inputs used with formkit forms.
package forminput

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/masterkey/internal/tui/formkit"
)

// labelWidth aligns the values of stacked text inputs.
const labelWidth = 16

type Text struct {
	Label  string
	KeyMap TextKeyMap

	LabelStyle         lipgloss.Style
	FocusedLabelStyle  lipgloss.Style
	DisabledLabelStyle lipgloss.Style

	input   textinput.Model
	focused bool
	enabled bool
}

type TextKeyMap struct {
	Next key.Binding
}

func NewText(label, placeholder string, charLimit int) *Text {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	return &Text{
		Label: label,
		KeyMap: TextKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "next"),
			),
		},
		LabelStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		FocusedLabelStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		DisabledLabelStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true),
		input:              in,
		enabled:            true,
	}
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

func (t *Text) Focused() bool { return t.focused }

func (t *Text) Get() any {
	return t.input.Value()
}

// Value returns the current text.
func (t *Text) Value() string { return t.input.Value() }

func (t *Text) Init() tea.Cmd {
	return nil
}

func (t *Text) Reset() {
	t.input.SetValue("")
}

func (t *Text) Set(value any) {
	if value, ok := value.(string); ok {
		t.input.SetValue(value)
	}
}

func (t *Text) Enabled() bool { return t.enabled }

func (t *Text) SetEnabled(enabled bool) {
	t.enabled = enabled
	if !enabled {
		t.Blur()
	}
}

// CharLimit and SetCharLimit expose the width of the underlying input.
func (t *Text) CharLimit() int { return t.input.CharLimit }

func (t *Text) SetCharLimit(n int) { t.input.CharLimit = n }

func (t *Text) SetPlaceholder(s string) { t.input.Placeholder = s }

func (t *Text) Update(msg tea.Msg) (tea.Cmd, formkit.Action) {
	if !t.enabled {
		return nil, formkit.ActionNone
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, t.KeyMap.Next) {
		return nil, formkit.ActionNext
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, formkit.ActionNone
}

func (t *Text) View(width int) string {
	label := fmt.Sprintf("%-*s", labelWidth, t.Label)
	switch {
	case !t.enabled:
		return t.DisabledLabelStyle.Render(label + " n/a")
	case t.focused:
		label = t.FocusedLabelStyle.Render(label)
	default:
		label = t.LabelStyle.Render(label)
	}

	if width > labelWidth+2 {
		t.input.Width = width - labelWidth - 2
	}
	return label + " " + t.input.View()
}

var _ formkit.FormInput = (*Text)(nil)
