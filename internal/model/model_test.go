// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "testing"

func TestPlatformLabelsAndIDs(t *testing.T) {
	want := map[Platform][2]string{
		Wii:     {"wii", "Wii"},
		DSi:     {"dsi", "DSi"},
		ThreeDS: {"3ds", "3DS"},
		WiiU:    {"wiiu", "Wii U"},
		Switch:  {"switch", "Switch"},
	}
	if len(Platforms()) != len(want) {
		t.Fatalf("expected %d platforms, got %d", len(want), len(Platforms()))
	}
	for _, p := range Platforms() {
		w, ok := want[p]
		if !ok {
			t.Fatalf("unexpected platform %v", p)
		}
		if p.ID() != w[0] || p.String() != w[1] {
			t.Errorf("platform %d: got (%q, %q), want (%q, %q)", int(p), p.ID(), p.String(), w[0], w[1])
		}
		if !p.Valid() {
			t.Errorf("platform %v should be valid", p)
		}
	}
	if PlatformNone.Valid() {
		t.Fatalf("PlatformNone must not be valid")
	}
}

func TestParsePlatform(t *testing.T) {
	cases := map[string]Platform{
		"wii":    Wii,
		" DSi ":  DSi,
		"3ds":    ThreeDS,
		"3DS":    ThreeDS,
		"Wii U":  WiiU,
		"wiiu":   WiiU,
		"SWITCH": Switch,
	}
	for in, want := range cases {
		got, err := ParsePlatform(in)
		if err != nil {
			t.Fatalf("ParsePlatform(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParsePlatform(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParsePlatform("gamecube"); err == nil {
		t.Fatalf("expected error for unknown platform")
	}
}

// Every variant must round-trip through its label without relying on the
// numeric value of the enum.
func TestVariantLabelRoundTrip(t *testing.T) {
	want := []string{"v0", "v1", "v2", "v3", "v4"}
	vs := Variants()
	if len(vs) != len(want) {
		t.Fatalf("expected %d variants, got %d", len(want), len(vs))
	}
	for i, v := range vs {
		if v.Label() != want[i] {
			t.Errorf("variant %d label = %q, want %q", i, v.Label(), want[i])
		}
		back, err := ParseVariant(v.Label())
		if err != nil {
			t.Fatalf("ParseVariant(%q): %v", v.Label(), err)
		}
		if back != v {
			t.Errorf("ParseVariant(%q) = %v, want %v", v.Label(), back, v)
		}
	}
	if VariantNone.Label() != "" || VariantNone.Valid() {
		t.Fatalf("VariantNone must have no label and be invalid")
	}
	if _, err := ParseVariant("0"); err == nil {
		t.Fatalf("numeric text must not parse as a variant")
	}
}

func TestInputRequirementHelpers(t *testing.T) {
	short := InputRequirement{NeedsDate: true, InquiryDigits: ShortInquiryDigits}
	if short.InquiryMax() != 99999999 {
		t.Fatalf("unexpected short max: %d", short.InquiryMax())
	}
	long := InputRequirement{NeedsDeviceID: true, InquiryDigits: ExtendedInquiryDigits}
	if long.InquiryMax() != 9999999999 {
		t.Fatalf("unexpected extended max: %d", long.InquiryMax())
	}

	if !short.Needs(FieldInquiry) || !short.Needs(FieldMonth) || !short.Needs(FieldDay) || short.Needs(FieldDeviceID) {
		t.Fatalf("date requirement reports wrong fields")
	}
	if long.Needs(FieldMonth) || !long.Needs(FieldDeviceID) {
		t.Fatalf("device requirement reports wrong fields")
	}
}

func TestVersionIntervalLabel(t *testing.T) {
	i := VersionInterval{Lower: "7.2.0", Upper: "11.15.0", Variant: V2}
	if got := i.Label(); got != "From 7.2.0 to 11.15.0" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := i.Range(); got != "7.2.0-11.15.0" {
		t.Fatalf("unexpected range %q", got)
	}
	if i.Implicit() {
		t.Fatalf("tagged interval reported as implicit")
	}
}
