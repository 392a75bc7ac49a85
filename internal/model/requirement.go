// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// Inquiry number widths used by the two generations of inquiry codes.
const (
	ShortInquiryDigits    = 8
	ExtendedInquiryDigits = 10
)

// InputRequirement lists which inputs a variant needs. It is always derived
// from a variant and never stored.
type InputRequirement struct {
	NeedsDate     bool
	NeedsDeviceID bool
	InquiryDigits int
}

// InquiryMax is the largest inquiry number accepted (99999999 or 9999999999).
func (r InputRequirement) InquiryMax() uint64 {
	limit := uint64(1)
	for i := 0; i < r.InquiryDigits; i++ {
		limit *= 10
	}
	return limit - 1
}

// Needs reports whether the field must carry a value.
func (r InputRequirement) Needs(f Field) bool {
	switch f {
	case FieldInquiry:
		return true
	case FieldMonth, FieldDay:
		return r.NeedsDate
	case FieldDeviceID:
		return r.NeedsDeviceID
	}
	return false
}

// Field names one input of the master key form.
type Field int

const (
	FieldInquiry Field = iota
	FieldMonth
	FieldDay
	FieldDeviceID
)

var fieldIDs = map[Field]string{
	FieldInquiry:  "inquiry",
	FieldMonth:    "month",
	FieldDay:      "day",
	FieldDeviceID: "device_id",
}

// Fields returns every form field in display order.
func Fields() []Field {
	return []Field{FieldInquiry, FieldMonth, FieldDay, FieldDeviceID}
}

// ID is the stable key used when form values are collected into a map.
func (f Field) ID() string {
	return fieldIDs[f]
}

func (f Field) String() string {
	if id, ok := fieldIDs[f]; ok {
		return id
	}
	return "unknown"
}
