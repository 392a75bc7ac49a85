// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package catalog

import (
	"errors"
	"fmt"

	"github.com/toeirei/masterkey/internal/model"
)

var (
	// ErrSelectionRequired is returned when a platform offers several
	// intervals and none was chosen.
	ErrSelectionRequired = errors.New("a firmware version interval must be selected")
	// ErrUnknownInterval is returned for an interval that is not registered
	// for the platform.
	ErrUnknownInterval = errors.New("version interval is not registered for platform")
)

// ResolveVariant returns the algorithm variant for p. For single-interval
// platforms selected may be nil. For the others it must be one of the exact
// intervals returned by IntervalsFor; no nearest-match is attempted.
func ResolveVariant(p model.Platform, selected *model.VersionInterval) (model.AlgorithmVariant, error) {
	intervals := IntervalsFor(p)

	if len(intervals) == 1 {
		only := intervals[0]
		if selected != nil && *selected != only {
			return model.VariantNone, fmt.Errorf("%w: %s for %v", ErrUnknownInterval, selected.Range(), p)
		}
		return variantOf(only), nil
	}

	if selected == nil {
		return model.VariantNone, fmt.Errorf("%w for %v", ErrSelectionRequired, p)
	}
	for _, iv := range intervals {
		if iv == *selected {
			return variantOf(iv), nil
		}
	}
	return model.VariantNone, fmt.Errorf("%w: %s for %v", ErrUnknownInterval, selected.Range(), p)
}

func variantOf(iv model.VersionInterval) model.AlgorithmVariant {
	if iv.Implicit() {
		return ImplicitVariant
	}
	return iv.Variant
}
