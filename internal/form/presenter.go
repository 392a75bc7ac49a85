// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import "github.com/toeirei/masterkey/internal/model"

// Directives tell the presentation layer which field groups are enabled and
// how many digits the inquiry number may have.
type Directives struct {
	DateEnabled     bool
	DeviceIDEnabled bool
	InquiryDigits   int
}

// idleDirectives is the field state before a variant is known.
var idleDirectives = Directives{InquiryDigits: model.ShortInquiryDigits}

func directivesFor(req model.InputRequirement) Directives {
	return Directives{
		DateEnabled:     req.NeedsDate,
		DeviceIDEnabled: req.NeedsDeviceID,
		InquiryDigits:   req.InquiryDigits,
	}
}

// Enabled reports whether input f may currently hold a value.
func (d Directives) Enabled(f model.Field) bool {
	switch f {
	case model.FieldInquiry:
		return true
	case model.FieldMonth, model.FieldDay:
		return d.DateEnabled
	case model.FieldDeviceID:
		return d.DeviceIDEnabled
	}
	return false
}

// Presenter is the coordinator's only handle on the presentation layer.
type Presenter interface {
	// ShowVersions replaces the offered version intervals. needsChoice is
	// false when the platform has a single interval that was resolved
	// without asking.
	ShowVersions(choices []model.VersionInterval, needsChoice bool)
	// ApplyRequirements enables or disables field groups and sets the
	// inquiry number width.
	ApplyRequirements(d Directives)
	// ClearField drops whatever the field currently displays.
	ClearField(f model.Field)
}

type nopPresenter struct{}

func (nopPresenter) ShowVersions([]model.VersionInterval, bool) {}
func (nopPresenter) ApplyRequirements(Directives)               {}
func (nopPresenter) ClearField(model.Field)                     {}
