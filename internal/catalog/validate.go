// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package catalog

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/toeirei/masterkey/internal/model"
)

// Validate checks the authored table: every platform has intervals, bounds
// parse as versions, intervals ascend without overlap, and only a sole
// interval may leave its variant implicit.
func Validate() error {
	var errs []error
	for _, p := range model.Platforms() {
		intervals, ok := versionTable[p]
		if !ok || len(intervals) == 0 {
			errs = append(errs, fmt.Errorf("%v: no version intervals", p))
			continue
		}
		if err := validateIntervals(intervals); err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", p, err))
		}
	}
	for p := range versionTable {
		if !p.Valid() {
			errs = append(errs, fmt.Errorf("table entry for unknown platform %v", p))
		}
	}
	return errors.Join(errs...)
}

// MustValidate panics when the table is inconsistent. It is called once at
// startup; an inconsistent table must be fixed before release.
func MustValidate() {
	if err := Validate(); err != nil {
		panic(fmt.Sprintf("catalog: invalid version table: %v", err))
	}
}

func validateIntervals(intervals []model.VersionInterval) error {
	var prevUpper *semver.Version
	implicit := 0

	for i, iv := range intervals {
		lower, err := semver.NewVersion(iv.Lower)
		if err != nil {
			return fmt.Errorf("interval %d: invalid lower bound %q: %w", i, iv.Lower, err)
		}
		upper, err := semver.NewVersion(iv.Upper)
		if err != nil {
			return fmt.Errorf("interval %d: invalid upper bound %q: %w", i, iv.Upper, err)
		}
		if lower.GreaterThan(upper) {
			return fmt.Errorf("interval %d: lower bound %s is above upper bound %s", i, iv.Lower, iv.Upper)
		}
		if prevUpper != nil && !lower.GreaterThan(prevUpper) {
			return fmt.Errorf("interval %d: %s does not start after previous upper bound %s", i, iv.Lower, prevUpper.Original())
		}
		prevUpper = upper

		if iv.Implicit() {
			implicit++
		} else if !iv.Variant.Valid() {
			return fmt.Errorf("interval %d: unknown variant %v", i, iv.Variant)
		}
	}

	if implicit > 0 && len(intervals) > 1 {
		return fmt.Errorf("%d of %d intervals have no variant; only a sole interval may be implicit", implicit, len(intervals))
	}
	return nil
}
