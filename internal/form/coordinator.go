// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form coordinates the master key form: it reacts to platform and
// version selection, tells the presentation layer which inputs apply and
// only lets a fully resolved, valid request through to the key generator.
//
// A Coordinator is driven from a single event loop and is not safe for
// concurrent use.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/toeirei/masterkey/internal/catalog"
	"github.com/toeirei/masterkey/internal/keygen"
	"github.com/toeirei/masterkey/internal/logging"
	"github.com/toeirei/masterkey/internal/model"
	"github.com/toeirei/masterkey/internal/policy"
)

var (
	ErrNoPlatform        = errors.New("no platform selected")
	ErrUnknownPlatform   = errors.New("platform is not in the catalog")
	ErrVariantUnresolved = errors.New("firmware version not selected")
	ErrFieldDisabled     = errors.New("field does not apply to the selected version")
)

// Coordinator owns the form selection state.
type Coordinator struct {
	view Presenter
	calc keygen.Calculator

	platform   model.Platform
	interval   int
	variant    model.AlgorithmVariant
	directives Directives
	values     Fields
}

// New returns a Coordinator in the idle state and pushes the idle field
// state to view. A nil view is allowed for headless use.
func New(view Presenter, calc keygen.Calculator) *Coordinator {
	if view == nil {
		view = nopPresenter{}
	}
	c := &Coordinator{view: view, calc: calc, interval: -1}
	c.apply(idleDirectives)
	return c
}

// State derives the current state from the selection and field values.
func (c *Coordinator) State() State {
	switch {
	case c.platform == model.PlatformNone:
		return StateIdle
	case c.variant == model.VariantNone:
		return StatePlatformChosen
	case c.validateFields() != nil:
		return StateVariantResolved
	default:
		return StateSubmittable
	}
}

func (c *Coordinator) Platform() model.Platform { return c.platform }
func (c *Coordinator) Variant() model.AlgorithmVariant { return c.variant }
func (c *Coordinator) Directives() Directives { return c.directives }
func (c *Coordinator) Values() Fields { return c.values }

// Interval returns the index of the selected version interval.
func (c *Coordinator) Interval() (int, bool) {
	return c.interval, c.interval >= 0
}

// SelectPlatform starts over with platform p. Any resolved variant and the
// values of date and device fields are discarded. A platform with a single
// version interval is resolved immediately.
func (c *Coordinator) SelectPlatform(p model.Platform) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownPlatform, p)
	}

	c.platform = p
	c.variant = model.VariantNone
	c.interval = -1

	choices, needsChoice := catalog.Choices(p)
	c.view.ShowVersions(choices, needsChoice)
	c.apply(idleDirectives)

	if needsChoice {
		logging.Debugf("platform %v selected, %d version intervals offered", p, len(choices))
		return nil
	}
	return c.resolve(0, nil)
}

// SelectVersion picks the interval at index of the current platform's list.
func (c *Coordinator) SelectVersion(index int) error {
	if c.platform == model.PlatformNone {
		return ErrNoPlatform
	}
	iv, err := catalog.IntervalAt(c.platform, index)
	if err != nil {
		return err
	}
	return c.resolve(index, &iv)
}

func (c *Coordinator) resolve(index int, iv *model.VersionInterval) error {
	v, err := catalog.ResolveVariant(c.platform, iv)
	if err != nil {
		return err
	}
	c.interval = index
	c.variant = v
	c.apply(directivesFor(policy.RequirementsFor(v)))
	logging.Debugf("platform %v resolved to variant %s", c.platform, v)
	return nil
}

// apply pushes d to the view. Fields that d disables lose their value so a
// value accepted under one variant can never be submitted under another.
func (c *Coordinator) apply(d Directives) {
	c.directives = d
	for _, f := range model.Fields() {
		if !d.Enabled(f) {
			c.values.set(f, "")
			c.view.ClearField(f)
		}
	}
	c.view.ApplyRequirements(d)
}

// SetField stores the raw text of f.
func (c *Coordinator) SetField(f model.Field, value string) error {
	if !c.directives.Enabled(f) {
		return &FieldError{Field: f, Err: ErrFieldDisabled}
	}
	c.values.set(f, strings.TrimSpace(value))
	return nil
}

// Load stores values collected by field id. Fields whose id is absent from
// values keep their current value. Non-empty values for disabled fields are
// rejected; the enabled ones are stored regardless.
func (c *Coordinator) Load(values map[string]any) error {
	fields, err := DecodeFields(values)
	if err != nil {
		return err
	}
	var present []model.Field
	for _, f := range model.Fields() {
		if _, ok := values[f.ID()]; ok {
			present = append(present, f)
		}
	}
	return c.store(fields, present)
}

// LoadFields replaces every field with the values in fields. Non-empty
// values for disabled fields are rejected.
func (c *Coordinator) LoadFields(fields Fields) error {
	return c.store(fields, model.Fields())
}

func (c *Coordinator) store(fields Fields, which []model.Field) error {
	var errs []error
	for _, f := range which {
		v := strings.TrimSpace(fields.Get(f))
		if !c.directives.Enabled(f) {
			if v != "" {
				errs = append(errs, &FieldError{Field: f, Err: ErrFieldDisabled})
			}
			continue
		}
		c.values.set(f, v)
	}
	return errors.Join(errs...)
}

// Validate reports why the form is not submittable, or nil.
func (c *Coordinator) Validate() error {
	if c.platform == model.PlatformNone {
		return ErrNoPlatform
	}
	if c.variant == model.VariantNone {
		return ErrVariantUnresolved
	}
	return c.validateFields()
}

func (c *Coordinator) validateFields() error {
	_, err := c.build()
	return err
}

// Request returns the computation request for the current selection.
func (c *Coordinator) Request() (model.Request, error) {
	if err := c.Validate(); err != nil {
		return model.Request{}, err
	}
	return c.build()
}

func (c *Coordinator) build() (model.Request, error) {
	req := policy.RequirementsFor(c.variant)
	out := model.Request{Variant: c.variant, Platform: c.platform}
	var errs []error

	inquiry, err := parseInquiry(c.values.Inquiry, req.InquiryDigits)
	if err != nil {
		errs = append(errs, &FieldError{Field: model.FieldInquiry, Err: err})
	}
	out.Inquiry = inquiry

	if req.NeedsDate {
		month, err := parseMonth(c.values.Month)
		if err != nil {
			errs = append(errs, &FieldError{Field: model.FieldMonth, Err: err})
		}
		day, err := parseDay(c.values.Day, month)
		if err != nil {
			errs = append(errs, &FieldError{Field: model.FieldDay, Err: err})
		}
		out.Date = &model.MonthDay{Month: month, Day: day}
	}

	if req.NeedsDeviceID {
		id, err := parseDeviceID(c.values.DeviceID)
		if err != nil {
			errs = append(errs, &FieldError{Field: model.FieldDeviceID, Err: err})
		}
		out.DeviceID = &id
	}

	if len(errs) > 0 {
		return model.Request{}, errors.Join(errs...)
	}
	return out, nil
}

// Submit validates the form and hands the request to the calculator once.
// Nothing reaches the calculator unless the form is submittable.
func (c *Coordinator) Submit(ctx context.Context) (keygen.MasterKey, error) {
	req, err := c.Request()
	if err != nil {
		logging.Debugf("submission rejected: %v", err)
		return "", err
	}
	key, err := c.calc.Calculate(ctx, req)
	if err != nil {
		logging.Warnf("%s key derivation for %v failed: %v", req.Variant, req.Platform, err)
		return "", err
	}
	logging.Infof("%s master key computed for %v", req.Variant, req.Platform)
	return key, nil
}

// Reset returns to the idle state and clears every field.
func (c *Coordinator) Reset() {
	c.platform = model.PlatformNone
	c.variant = model.VariantNone
	c.interval = -1
	c.values = Fields{}
	c.view.ShowVersions(nil, false)
	c.view.ClearField(model.FieldInquiry)
	c.apply(idleDirectives)
}
