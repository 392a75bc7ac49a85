// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model holds the plain data types shared by the catalog, the
// requirement policy, the form coordinator and the key generator.
package model

import (
	"fmt"
	"strings"
)

// Platform identifies a supported console family. The zero value means no
// platform has been chosen.
type Platform int

const (
	PlatformNone Platform = iota
	Wii
	DSi
	ThreeDS
	WiiU
	Switch
)

// platformLabels maps each platform to the name shown to users.
var platformLabels = map[Platform]string{
	Wii:     "Wii",
	DSi:     "DSi",
	ThreeDS: "3DS",
	WiiU:    "Wii U",
	Switch:  "Switch",
}

// platformIDs maps each platform to its short command-line identifier.
var platformIDs = map[Platform]string{
	Wii:     "wii",
	DSi:     "dsi",
	ThreeDS: "3ds",
	WiiU:    "wiiu",
	Switch:  "switch",
}

// Platforms returns every supported platform in catalog order.
func Platforms() []Platform {
	return []Platform{Wii, DSi, ThreeDS, WiiU, Switch}
}

// String returns the display label, or a fallback for unknown values.
func (p Platform) String() string {
	if s, ok := platformLabels[p]; ok {
		return s
	}
	if p == PlatformNone {
		return "none"
	}
	return fmt.Sprintf("unknown(%d)", int(p))
}

// ID returns the short identifier used on the command line and in config.
func (p Platform) ID() string {
	return platformIDs[p]
}

// Valid reports whether p is a member of the catalog.
func (p Platform) Valid() bool {
	_, ok := platformIDs[p]
	return ok
}

// ParsePlatform accepts either the identifier ("3ds") or the label ("3DS"),
// ignoring case and surrounding spaces.
func ParsePlatform(s string) (Platform, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Platforms() {
		if needle == platformIDs[p] || needle == strings.ToLower(platformLabels[p]) {
			return p, nil
		}
	}
	return PlatformNone, fmt.Errorf("unknown platform %q", s)
}
