// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/masterkey/internal/form"
	"github.com/toeirei/masterkey/internal/model"
	"github.com/toeirei/masterkey/internal/tui/formkit"
	forminput "github.com/toeirei/masterkey/internal/tui/formkit/input"
)

// submitID is the form id of the calculate button.
const submitID = "submit"

var fieldLabels = map[model.Field]string{
	model.FieldInquiry:  "Inquiry number",
	model.FieldMonth:    "Month",
	model.FieldDay:      "Day",
	model.FieldDeviceID: "Device ID",
}

// formView is the bubbletea side of form.Presenter. The coordinator calls
// it from inside Update, so no locking is needed.
type formView struct {
	choices     []model.VersionInterval
	needsChoice bool
	directives  form.Directives

	inputs *formkit.Form[form.Fields]
	texts  map[model.Field]*forminput.Text
	button *forminput.Button
}

var _ form.Presenter = (*formView)(nil)

func newFormView(onSubmit func(form.Fields, error) tea.Cmd) *formView {
	v := &formView{texts: make(map[model.Field]*forminput.Text)}
	opts := []formkit.NewOpt[form.Fields]{formkit.WithOnSubmit(onSubmit)}

	for _, f := range model.Fields() {
		var in *forminput.Text
		switch f {
		case model.FieldInquiry:
			in = forminput.NewText(fieldLabels[f], "", model.ShortInquiryDigits)
		case model.FieldMonth:
			in = forminput.NewText(fieldLabels[f], "MM", 2)
		case model.FieldDay:
			in = forminput.NewText(fieldLabels[f], "DD", 2)
		case model.FieldDeviceID:
			in = forminput.NewText(fieldLabels[f], "hex, e.g. 0x0123456789abcdef", 18)
		}
		in.LabelStyle = formLabelStyle
		in.FocusedLabelStyle = formFocusedLabelStyle
		in.DisabledLabelStyle = formDisabledLabelStyle
		v.texts[f] = in
		opts = append(opts, formkit.WithInput[form.Fields](f.ID(), in))
	}

	v.button = forminput.NewButton("Calculate")
	v.button.BlurredStyle = buttonStyle
	v.button.FocusedStyle = activeButtonStyle
	v.button.DisabledStyle = disabledButtonStyle
	opts = append(opts, formkit.WithInput[form.Fields](submitID, v.button))

	v.inputs = formkit.New(opts...)
	return v
}

func (v *formView) ShowVersions(choices []model.VersionInterval, needsChoice bool) {
	v.choices = choices
	v.needsChoice = needsChoice
}

func (v *formView) ApplyRequirements(d form.Directives) {
	v.directives = d
	inquiry := v.texts[model.FieldInquiry]
	inquiry.SetCharLimit(d.InquiryDigits)
	inquiry.SetPlaceholder(fmt.Sprintf("up to %d digits", d.InquiryDigits))
	for _, f := range model.Fields() {
		v.inputs.SetEnabled(f.ID(), d.Enabled(f))
	}
}

func (v *formView) ClearField(f model.Field) {
	if in, ok := v.texts[f]; ok {
		in.Reset()
	}
}

func (v *formView) input(f model.Field) *forminput.Text {
	return v.texts[f]
}
