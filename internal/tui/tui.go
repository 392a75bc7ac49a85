// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui provides the terminal user interface for masterkey.
// It is a single form: pick a platform, pick a firmware version when the
// platform has more than one, fill in the inputs that apply and submit.
package tui

import (
	"context"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/masterkey/internal/form"
	"github.com/toeirei/masterkey/internal/keygen"
	"github.com/toeirei/masterkey/internal/logging"
	"github.com/toeirei/masterkey/internal/model"
	"github.com/toeirei/masterkey/internal/tui/formkit"
)

// Options configures Run.
type Options struct {
	Calculator      keygen.Calculator
	DefaultPlatform model.Platform
	// Clipboard enables copying the computed key.
	Clipboard bool
	// LogFile receives log output while the TUI owns the terminal. Logging
	// is discarded when empty.
	LogFile string
}

// focusArea identifies the part of the screen that receives key presses.
type focusArea int

const (
	focusPlatform focusArea = iota
	focusVersion
	focusInputs
	focusCount
)

// mainModel is the top-level model for the form.
type mainModel struct {
	ctx   context.Context
	coord *form.Coordinator
	view  *formView
	keys  keyMap
	help  help.Model

	focus          focusArea
	platformCursor int
	versionCursor  int

	result    keygen.MasterKey
	err       error
	status    string
	clipboard bool
	copy      func(string) error
	width     int
}

func newModel(opts Options) *mainModel {
	calc := opts.Calculator
	if calc == nil {
		calc = keygen.New()
	}
	m := &mainModel{
		ctx:       context.Background(),
		keys:      defaultKeyMap,
		help:      help.New(),
		clipboard: opts.Clipboard,
		copy:      clipboard.WriteAll,
	}
	m.view = newFormView(m.submitFields)
	m.coord = form.New(m.view, calc)

	if opts.DefaultPlatform.Valid() {
		for i, p := range model.Platforms() {
			if p == opts.DefaultPlatform {
				m.platformCursor = i
			}
		}
		if m.selectPlatform() {
			m.focusAfterPlatform()
		}
	}
	return m
}

// Run starts the form and blocks until the user quits.
func Run(opts Options) error {
	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "masterkey")
		if err != nil {
			return err
		}
		defer f.Close()
		logging.SetOutput(f)
	} else {
		logging.SetOutput(io.Discard)
	}
	defer logging.SetOutput(os.Stderr)

	_, err := tea.NewProgram(newModel(opts), tea.WithAltScreen()).Run()
	return err
}

func (m *mainModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.view.inputs.Init())
}

func (m *mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusInputs {
		cmd, _ := m.view.inputs.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *mainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reset):
		m.coord.Reset()
		m.view.inputs.Reset()
		m.platformCursor, m.versionCursor = 0, 0
		m.clearOutcome()
		return m, m.setFocus(focusPlatform, 1)
	}

	if m.focus == focusInputs {
		return m.updateInputs(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.ListQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		m.copyResult()
		return m, nil
	}

	switch m.focus {
	case focusPlatform:
		return m.updatePlatformList(msg)
	case focusVersion:
		return m.updateVersionList(msg)
	}
	return m, nil
}

func (m *mainModel) updatePlatformList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	platforms := model.Platforms()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.platformCursor > 0 {
			m.platformCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.platformCursor < len(platforms)-1 {
			m.platformCursor++
		}
	case key.Matches(msg, m.keys.Select):
		if !m.selectPlatform() {
			return m, nil
		}
		return m, m.focusAfterPlatform()
	}
	return m, nil
}

func (m *mainModel) updateVersionList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.versionCursor > 0 {
			m.versionCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.versionCursor < len(m.view.choices)-1 {
			m.versionCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.clearOutcome()
		if err := m.coord.SelectVersion(m.versionCursor); err != nil {
			m.err = err
			return m, nil
		}
		return m, m.setFocus(focusInputs, 1)
	}
	return m, nil
}

// updateInputs hands msg to the inputs form and mirrors changed values into
// the coordinator. Leaving the form past either end moves to the lists.
func (m *mainModel) updateInputs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Copy) && m.view.inputs.ActiveID() == submitID {
		m.copyResult()
		return m, nil
	}

	before, _ := m.view.inputs.Get()
	cmd, action := m.view.inputs.Update(msg)
	if after, err := m.view.inputs.Get(); err == nil && after != before {
		m.clearOutcome()
		if err := m.coord.LoadFields(after); err != nil {
			m.err = err
		}
	}

	switch action {
	case formkit.ActionNext:
		return m, tea.Batch(cmd, m.moveFocus(1))
	case formkit.ActionPrev:
		return m, tea.Batch(cmd, m.moveFocus(-1))
	}
	return m, cmd
}

// submitFields is the OnSubmit handler of the inputs form.
func (m *mainModel) submitFields(fields form.Fields, err error) tea.Cmd {
	m.clearOutcome()
	if err != nil {
		m.err = err
		return nil
	}
	if err := m.coord.LoadFields(fields); err != nil {
		m.err = err
		return nil
	}
	res, err := m.coord.Submit(m.ctx)
	if err != nil {
		m.err = err
		return nil
	}
	m.result = res
	return nil
}

func (m *mainModel) selectPlatform() bool {
	p := model.Platforms()[m.platformCursor]
	m.clearOutcome()
	m.versionCursor = 0
	if err := m.coord.SelectPlatform(p); err != nil {
		m.err = err
		return false
	}
	return true
}

// focusAfterPlatform moves to the version list when the platform needs a
// choice and straight to the inputs otherwise.
func (m *mainModel) focusAfterPlatform() tea.Cmd {
	if m.view.needsChoice {
		return m.setFocus(focusVersion, 1)
	}
	return m.setFocus(focusInputs, 1)
}

func (m *mainModel) copyResult() {
	if m.result == "" || !m.clipboard {
		return
	}
	if err := m.copy(string(m.result)); err != nil {
		m.err = err
		return
	}
	m.status = "Master key copied to clipboard."
}

func (m *mainModel) clearOutcome() {
	m.result = ""
	m.err = nil
	m.status = ""
}

// moveFocus moves to the next available area in direction dir, wrapping
// around. The version list is skipped unless a choice is needed.
func (m *mainModel) moveFocus(dir int) tea.Cmd {
	a := m.focus
	for range focusCount {
		a = (a + focusArea(dir) + focusCount) % focusCount
		if a != focusVersion || m.view.needsChoice {
			return m.setFocus(a, dir)
		}
	}
	return nil
}

// setFocus focuses area a. The inputs form is entered at its first input
// when dir is positive and at its last otherwise.
func (m *mainModel) setFocus(a focusArea, dir int) tea.Cmd {
	m.focus = a
	if a != focusInputs {
		m.view.inputs.Blur()
		return nil
	}
	if dir < 0 {
		return m.view.inputs.FocusLast()
	}
	return m.view.inputs.FocusFirst()
}
