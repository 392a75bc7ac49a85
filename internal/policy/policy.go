// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package policy derives the inputs an algorithm variant needs.
package policy

import (
	"errors"
	"fmt"

	"github.com/toeirei/masterkey/internal/model"
)

// requirements must have exactly one entry per model.Variants() member.
var requirements = map[model.AlgorithmVariant]model.InputRequirement{
	model.V0: {NeedsDate: true, InquiryDigits: model.ShortInquiryDigits},
	model.V1: {NeedsDate: true, InquiryDigits: model.ExtendedInquiryDigits},
	model.V2: {NeedsDate: true, InquiryDigits: model.ExtendedInquiryDigits},
	model.V3: {InquiryDigits: model.ExtendedInquiryDigits},
	model.V4: {NeedsDeviceID: true, InquiryDigits: model.ExtendedInquiryDigits},
}

// RequirementsFor returns the input requirement of v. It is total over the
// known variants; any other value is a programming error and panics.
func RequirementsFor(v model.AlgorithmVariant) model.InputRequirement {
	req, ok := requirements[v]
	if !ok {
		panic(fmt.Sprintf("policy: no input requirement for variant %v", v))
	}
	return req
}

// Validate reports variants without a requirement entry, entries for
// unknown variants and unsupported inquiry widths.
func Validate() error {
	var errs []error
	for _, v := range model.Variants() {
		req, ok := requirements[v]
		if !ok {
			errs = append(errs, fmt.Errorf("variant %v has no input requirement", v))
			continue
		}
		if req.InquiryDigits != model.ShortInquiryDigits && req.InquiryDigits != model.ExtendedInquiryDigits {
			errs = append(errs, fmt.Errorf("variant %v: unsupported inquiry width %d", v, req.InquiryDigits))
		}
		if req.NeedsDate && req.NeedsDeviceID {
			errs = append(errs, fmt.Errorf("variant %v needs both a date and a device id", v))
		}
	}
	for v := range requirements {
		if !v.Valid() {
			errs = append(errs, fmt.Errorf("input requirement for unknown variant %v", v))
		}
	}
	return errors.Join(errs...)
}

// MustValidate panics when the policy does not cover every variant.
func MustValidate() {
	if err := Validate(); err != nil {
		panic(fmt.Sprintf("policy: %v", err))
	}
}
