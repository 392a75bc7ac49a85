// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/masterkey/internal/model"
)

// inputsWidth bounds the inputs pane.
const inputsWidth = 44

func (m *mainModel) View() string {
	var b strings.Builder

	b.WriteString(mainTitleStyle.Render("🔑 Masterkey") + "\n\n")

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.platformView(),
		"",
		m.versionView(),
	)
	right := m.inputsView()

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(left),
		"  ",
		paneStyle.Render(right),
	))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	case m.result != "":
		b.WriteString("\n" + keyStyle.Render(string(m.result)) + "\n")
	}
	if m.status != "" {
		b.WriteString(successStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + alignFooter(m.help.View(m.keys), helpStyle.Render(m.coord.State().String()), m.width))
	return docStyle.Render(b.String())
}

func (m *mainModel) platformView() string {
	var b strings.Builder
	b.WriteString(m.sectionTitle("Platform", m.focus == focusPlatform) + "\n")
	for i, p := range model.Platforms() {
		b.WriteString(m.listItem(p.String(), i == m.platformCursor, m.focus == focusPlatform, p == m.coord.Platform()) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m *mainModel) versionView() string {
	var b strings.Builder
	b.WriteString(m.sectionTitle("System version", m.focus == focusVersion) + "\n")

	chosen, resolved := m.coord.Interval()
	switch {
	case len(m.view.choices) == 0:
		b.WriteString(helpStyle.Render("  select a platform first"))
	case !m.view.needsChoice:
		b.WriteString(chosenItemStyle.Render(m.view.choices[0].Label()))
	default:
		for i, iv := range m.view.choices {
			b.WriteString(m.listItem(iv.Label(), i == m.versionCursor, m.focus == focusVersion, resolved && i == chosen) + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m *mainModel) inputsView() string {
	return m.sectionTitle("Inputs", m.focus == focusInputs) + "\n" + m.view.inputs.View(inputsWidth)
}

func (m *mainModel) sectionTitle(title string, focused bool) string {
	if focused {
		return sectionTitleStyle.Render("▸ " + title)
	}
	return sectionTitleStyle.Render(title)
}

func (m *mainModel) listItem(label string, cursor, focused, chosen bool) string {
	if chosen {
		label += " ✓"
	}
	if cursor && focused {
		return selectedItemStyle.Render("» " + label)
	}
	if chosen {
		return chosenItemStyle.Render(label)
	}
	return itemStyle.Render(label)
}
