// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package formkit

import tea "github.com/charmbracelet/bubbletea"

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) *Form[T] {
	form := &Form[T]{KeyMap: DefaultKeyMap}
	for _, opt := range opts {
		opt(form)
	}
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

// WithWrap keeps focus inside the form when moving past the first or last
// input. Without it the form reports ActionNext or ActionPrev so the parent
// can move focus elsewhere.
func WithWrap[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.Wrap = true
	}
}

func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		form.items = append(form.items, formItem{
			id:    id,
			input: input,
		})
	}
}
