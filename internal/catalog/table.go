// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package catalog holds the static firmware version table and resolves a
// platform plus version interval to the algorithm variant that applies.
package catalog

import (
	"fmt"

	"github.com/toeirei/masterkey/internal/model"
)

// ImplicitVariant is the variant used by platforms whose single interval
// carries no explicit tag.
const ImplicitVariant = model.V0

// versionTable is authored data. Intervals are ascending and disjoint per
// platform; see Validate.
var versionTable = map[model.Platform][]model.VersionInterval{
	model.Wii: {
		{Lower: "1.0", Upper: "4.3"},
	},
	model.DSi: {
		{Lower: "1.1", Upper: "1.4.5"},
	},
	model.WiiU: {
		{Lower: "1.0.0", Upper: "4.1.0", Variant: model.V0},
		{Lower: "5.0.0", Upper: "5.5.5", Variant: model.V2},
	},
	model.ThreeDS: {
		{Lower: "1.0.0", Upper: "6.3.0", Variant: model.V0},
		{Lower: "7.0.0", Upper: "7.1.0", Variant: model.V1},
		{Lower: "7.2.0", Upper: "11.15.0", Variant: model.V2},
	},
	model.Switch: {
		{Lower: "1.0.0", Upper: "7.0.1", Variant: model.V3},
		{Lower: "8.0.0", Upper: "14.1.2", Variant: model.V4},
	},
}

// IntervalsFor returns the ordered firmware intervals of p. The returned
// slice is a copy. Asking for a platform outside the catalog is a
// programming error and panics.
func IntervalsFor(p model.Platform) []model.VersionInterval {
	intervals, ok := versionTable[p]
	if !ok {
		panic(fmt.Sprintf("catalog: no version table for platform %v", p))
	}
	out := make([]model.VersionInterval, len(intervals))
	copy(out, intervals)
	return out
}

// Choices returns the intervals of p and whether the user has to pick one.
func Choices(p model.Platform) ([]model.VersionInterval, bool) {
	intervals := IntervalsFor(p)
	return intervals, len(intervals) > 1
}

// IntervalAt returns the interval at index i of p's table.
func IntervalAt(p model.Platform, i int) (model.VersionInterval, error) {
	intervals := IntervalsFor(p)
	if i < 0 || i >= len(intervals) {
		return model.VersionInterval{}, fmt.Errorf("%w: index %d for %v", ErrUnknownInterval, i, p)
	}
	return intervals[i], nil
}

// FindInterval looks an interval up by its "lower-upper" range or by its
// one-based position in the list offered to the user.
func FindInterval(p model.Platform, ref string) (int, model.VersionInterval, error) {
	intervals := IntervalsFor(p)
	for i, iv := range intervals {
		if ref == iv.Range() || ref == fmt.Sprint(i+1) {
			return i, iv, nil
		}
	}
	return -1, model.VersionInterval{}, fmt.Errorf("%w: %q for %v", ErrUnknownInterval, ref, p)
}
