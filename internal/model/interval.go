// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "fmt"

// VersionInterval is one contiguous firmware range of a platform. Variant
// is VariantNone when the platform has a single, implied variant.
type VersionInterval struct {
	Lower   string
	Upper   string
	Variant AlgorithmVariant
}

// Label renders the interval the way it is offered to the user.
func (i VersionInterval) Label() string {
	return fmt.Sprintf("From %s to %s", i.Lower, i.Upper)
}

// Range renders the interval as "lower-upper", the form accepted by the
// command line.
func (i VersionInterval) Range() string {
	return i.Lower + "-" + i.Upper
}

// Implicit reports whether the interval leaves the variant to the platform.
func (i VersionInterval) Implicit() bool {
	return i.Variant == VariantNone
}
