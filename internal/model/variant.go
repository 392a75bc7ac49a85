// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"fmt"
	"strings"
)

// AlgorithmVariant tags one generation of the key-derivation procedure.
// The zero value means the variant is not yet known (or, inside a
// VersionInterval, that it is implied by the platform).
type AlgorithmVariant int

const (
	VariantNone AlgorithmVariant = iota
	V0
	V1
	V2
	V3
	V4
)

// variantLabels is the only bridge between variants and their text form.
// Presentation code must go through Label/ParseVariant, never through the
// numeric value.
var variantLabels = map[AlgorithmVariant]string{
	V0: "v0",
	V1: "v1",
	V2: "v2",
	V3: "v3",
	V4: "v4",
}

// Variants returns every known variant, oldest first.
func Variants() []AlgorithmVariant {
	return []AlgorithmVariant{V0, V1, V2, V3, V4}
}

// Label returns the presentation label ("v0".."v4"), or "" for values
// outside the set.
func (v AlgorithmVariant) Label() string {
	return variantLabels[v]
}

func (v AlgorithmVariant) String() string {
	if s, ok := variantLabels[v]; ok {
		return s
	}
	if v == VariantNone {
		return "none"
	}
	return fmt.Sprintf("unknown(%d)", int(v))
}

// Valid reports whether v is one of V0..V4.
func (v AlgorithmVariant) Valid() bool {
	_, ok := variantLabels[v]
	return ok
}

// ParseVariant maps a label back to its variant.
func ParseVariant(label string) (AlgorithmVariant, error) {
	needle := strings.ToLower(strings.TrimSpace(label))
	for v, l := range variantLabels {
		if l == needle {
			return v, nil
		}
	}
	return VariantNone, fmt.Errorf("unknown algorithm variant %q", label)
}
