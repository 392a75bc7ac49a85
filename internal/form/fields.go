// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/masterkey/internal/model"
)

var (
	ErrRequired      = errors.New("value is required")
	ErrNotNumeric    = errors.New("value must contain only digits")
	ErrTooManyDigits = errors.New("value has too many digits")
	ErrOutOfRange    = errors.New("value is out of range")
	ErrNotHex        = errors.New("value must be hexadecimal")
)

// maxDeviceIDDigits is the width of a hardware device id in hex digits.
const maxDeviceIDDigits = 16

// FieldError reports an invalid value in one form field.
type FieldError struct {
	Field model.Field
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Fields holds the raw text of each input, keyed for mapstructure by the
// field ids in model.Field.
type Fields struct {
	Inquiry  string `mapstructure:"inquiry"`
	Month    string `mapstructure:"month"`
	Day      string `mapstructure:"day"`
	DeviceID string `mapstructure:"device_id"`
}

// DecodeFields converts values collected by field id into Fields. Numbers
// are accepted and converted to text.
func DecodeFields(values map[string]any) (Fields, error) {
	var f Fields
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &f,
	})
	if err != nil {
		return f, err
	}
	if err := dec.Decode(values); err != nil {
		return f, fmt.Errorf("decode form values: %w", err)
	}
	return f, nil
}

// Get returns the raw text of field f.
func (f Fields) Get(field model.Field) string {
	switch field {
	case model.FieldInquiry:
		return f.Inquiry
	case model.FieldMonth:
		return f.Month
	case model.FieldDay:
		return f.Day
	case model.FieldDeviceID:
		return f.DeviceID
	}
	return ""
}

func (f *Fields) set(field model.Field, value string) {
	switch field {
	case model.FieldInquiry:
		f.Inquiry = value
	case model.FieldMonth:
		f.Month = value
	case model.FieldDay:
		f.Day = value
	case model.FieldDeviceID:
		f.DeviceID = value
	}
}

func parseInquiry(s string, digits int) (uint64, error) {
	if s == "" {
		return 0, ErrRequired
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrNotNumeric
		}
	}
	if len(s) > digits {
		return 0, fmt.Errorf("%w: at most %d allowed", ErrTooManyDigits, digits)
	}
	return strconv.ParseUint(s, 10, 64)
}

func parseMonth(s string) (int, error) {
	m, err := parseSmallInt(s)
	if err != nil {
		return 0, err
	}
	if m < 1 || m > 12 {
		return 0, fmt.Errorf("%w: month must be 1-12", ErrOutOfRange)
	}
	return m, nil
}

// parseDay checks the day against month when month is valid. February 29
// is always accepted since the year is not known.
func parseDay(s string, month int) (int, error) {
	d, err := parseSmallInt(s)
	if err != nil {
		return 0, err
	}
	last := 31
	if month >= 1 && month <= 12 {
		last = time.Date(2000, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	}
	if d < 1 || d > last {
		return 0, fmt.Errorf("%w: day must be 1-%d", ErrOutOfRange, last)
	}
	return d, nil
}

func parseSmallInt(s string) (int, error) {
	if s == "" {
		return 0, ErrRequired
	}
	if len(s) > 2 {
		return 0, fmt.Errorf("%w: at most 2 allowed", ErrTooManyDigits)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrNotNumeric
		}
	}
	return strconv.Atoi(s)
}

func parseDeviceID(s string) (uint64, error) {
	hex := s
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		hex = s[2:]
	}
	if hex == "" {
		return 0, ErrRequired
	}
	if len(hex) > maxDeviceIDDigits {
		return 0, fmt.Errorf("%w: at most %d hex digits allowed", ErrTooManyDigits, maxDeviceIDDigits)
	}
	id, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, ErrNotHex
	}
	return id, nil
}
