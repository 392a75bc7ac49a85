// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/masterkey/internal/tui/formkit"
)

type Button struct {
	Label  string
	KeyMap ButtonKeyMap

	DisabledStyle lipgloss.Style
	BlurredStyle  lipgloss.Style
	FocusedStyle  lipgloss.Style

	focused  bool
	disabled bool
}

type ButtonKeyMap struct {
	Click key.Binding
}

func NewButton(label string) *Button {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color("237")).
		Padding(0, 3).
		MarginTop(1)
	return &Button{
		Label: label,
		KeyMap: ButtonKeyMap{
			Click: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "submit"),
			),
		},
		DisabledStyle: base.Foreground(lipgloss.Color("240")),
		BlurredStyle:  base,
		FocusedStyle:  base.Background(lipgloss.Color("81")).Underline(true),
	}
}

func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

func (b *Button) Blur() {
	b.focused = false
}

func (b *Button) Focused() bool { return b.focused }

func (b *Button) Update(msg tea.Msg) (tea.Cmd, formkit.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.disabled && key.Matches(msg, b.KeyMap.Click) {
		return nil, formkit.ActionSubmit
	}
	return nil, formkit.ActionNone
}

func (b *Button) View(width int) string {
	style := b.BlurredStyle
	if b.disabled {
		style = b.DisabledStyle
	} else if b.focused {
		style = b.FocusedStyle
	}
	if width > 2 {
		style = style.MaxWidth(width - 2)
	}
	return style.Render(b.Label)
}

func (b *Button) Enabled() bool { return !b.disabled }

func (b *Button) SetEnabled(enabled bool) {
	b.disabled = !enabled
	if b.disabled {
		b.focused = false
	}
}

// not needed
func (b *Button) Get() any      { return nil }
func (b *Button) Init() tea.Cmd { return nil }
func (b *Button) Reset()        {}
func (b *Button) Set(any)       {}

var _ formkit.FormInput = (*Button)(nil)
