// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package formkit is a small bubbletea form: a column of inputs with
// tab navigation, per-input enabled state and mapstructure decoding of the
// collected values into a result type.
package formkit

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
)

type FormInput interface {
	Init() tea.Cmd
	Focus() tea.Cmd
	Blur()
	Reset()
	Update(msg tea.Msg) (tea.Cmd, Action)
	// Set and Get exchange the input's value. Inputs that carry no value,
	// like buttons, return nil from Get.
	Set(any)
	Get() any
	Enabled() bool
	SetEnabled(bool)
	View(width int) string
}

type formItem struct {
	id    string
	input FormInput
}

type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	ResetAfterSubmit bool
	Wrap             bool
	KeyMap           KeyMap

	items       []formItem
	activeIndex int
	focused     bool
}

func (f *Form[T]) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(f.items))
	for _, item := range f.items {
		cmds = append(cmds, item.input.Init())
	}
	return tea.Batch(cmds...)
}

// Update routes msg to the active input. The returned action is ActionNext
// or ActionPrev only when focus leaves an unwrapped form.
func (f *Form[T]) Update(msg tea.Msg) (tea.Cmd, Action) {
	if !f.focused || len(f.items) == 0 {
		return nil, ActionNone
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, f.KeyMap.Next):
			return f.step(1)
		case key.Matches(kmsg, f.KeyMap.Prev):
			return f.step(-1)
		}
	}

	cmd, action := f.items[f.activeIndex].input.Update(msg)
	switch action {
	case ActionNext:
		next, out := f.step(1)
		return tea.Batch(cmd, next), out
	case ActionPrev:
		prev, out := f.step(-1)
		return tea.Batch(cmd, prev), out
	case ActionSubmit:
		return tea.Batch(cmd, f.Submit()), ActionNone
	}
	return cmd, ActionNone
}

func (f *Form[T]) View(width int) string {
	rows := make([]string, 0, len(f.items))
	for _, item := range f.items {
		rows = append(rows, item.input.View(width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Focus focuses the active input, or the first enabled one when the active
// input is disabled.
func (f *Form[T]) Focus() tea.Cmd {
	if i := f.enabledFrom(f.activeIndex, 1); i >= 0 {
		return f.focusIndex(i)
	}
	return nil
}

// FocusFirst and FocusLast enter the form from either end.
func (f *Form[T]) FocusFirst() tea.Cmd {
	if i := f.enabledFrom(0, 1); i >= 0 {
		return f.focusIndex(i)
	}
	return nil
}

func (f *Form[T]) FocusLast() tea.Cmd {
	if i := f.enabledFrom(len(f.items)-1, -1); i >= 0 {
		return f.focusIndex(i)
	}
	return nil
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

func (f *Form[T]) Focused() bool { return f.focused }

// ActiveID returns the id of the active input.
func (f *Form[T]) ActiveID() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

// Input returns the input registered under id, or nil.
func (f *Form[T]) Input(id string) FormInput {
	for _, item := range f.items {
		if item.id == id {
			return item.input
		}
	}
	return nil
}

// SetEnabled switches the input registered under id. A disabled input keeps
// no focus; a focused form moves on to the next enabled input.
func (f *Form[T]) SetEnabled(id string, enabled bool) tea.Cmd {
	for i, item := range f.items {
		if item.id != id {
			continue
		}
		item.input.SetEnabled(enabled)
		if !enabled && i == f.activeIndex && f.focused {
			if next := f.enabledFrom(i, 1); next >= 0 {
				return f.focusIndex(next)
			}
		}
	}
	return nil
}

func (f *Form[T]) Reset() {
	for _, item := range f.items {
		item.input.Reset()
	}
	if f.focused {
		f.items[f.activeIndex].input.Blur()
	}
	f.activeIndex, f.focused = 0, false
}

func (f *Form[T]) Submit() tea.Cmd {
	data, err := f.Get()
	if f.ResetAfterSubmit {
		f.Reset()
	}
	if f.OnSubmit == nil {
		return nil
	}
	return f.OnSubmit(data, err)
}

// Get decodes the values of the enabled inputs into a T.
func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))
	for _, item := range f.items {
		if !item.input.Enabled() {
			continue
		}
		if v := item.input.Get(); v != nil {
			values[item.id] = v
		}
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for _, item := range f.items {
		if value, ok := values[item.id]; ok {
			item.input.Set(value)
		}
	}
	return nil
}

// step moves focus to the next enabled input in direction dir.
func (f *Form[T]) step(dir int) (tea.Cmd, Action) {
	if i := f.enabledFrom(f.activeIndex+dir, dir); i >= 0 {
		return f.focusIndex(i), ActionNone
	}
	if f.Wrap {
		start := 0
		if dir < 0 {
			start = len(f.items) - 1
		}
		if i := f.enabledFrom(start, dir); i >= 0 {
			return f.focusIndex(i), ActionNone
		}
		return nil, ActionNone
	}

	f.Blur()
	if dir < 0 {
		return nil, ActionPrev
	}
	return nil, ActionNext
}

// enabledFrom returns the first enabled index at or after start in
// direction dir, or -1.
func (f *Form[T]) enabledFrom(start, dir int) int {
	for i := start; i >= 0 && i < len(f.items); i += dir {
		if f.items[i].input.Enabled() {
			return i
		}
	}
	return -1
}

func (f *Form[T]) focusIndex(i int) tea.Cmd {
	if f.focused && i != f.activeIndex {
		f.items[f.activeIndex].input.Blur()
	}
	f.activeIndex, f.focused = i, true
	return f.items[i].input.Focus()
}
