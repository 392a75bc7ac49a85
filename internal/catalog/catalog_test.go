// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package catalog

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/masterkey/internal/model"
)

func TestTableIsValid(t *testing.T) {
	require.NoError(t, Validate())
	require.NotPanics(t, MustValidate)
}

func TestIntervalsForEveryPlatform(t *testing.T) {
	for _, p := range model.Platforms() {
		intervals := IntervalsFor(p)
		require.NotEmpty(t, intervals, "platform %v", p)

		for i := 1; i < len(intervals); i++ {
			prev := semver.MustParse(intervals[i-1].Upper)
			cur := semver.MustParse(intervals[i].Lower)
			require.True(t, cur.GreaterThan(prev), "%v: interval %d overlaps its predecessor", p, i)
		}
	}
}

func TestIntervalsForReturnsCopy(t *testing.T) {
	got := IntervalsFor(model.ThreeDS)
	got[0].Variant = model.V4
	require.Equal(t, model.V0, IntervalsFor(model.ThreeDS)[0].Variant)
}

func TestIntervalsForUnknownPlatformPanics(t *testing.T) {
	require.Panics(t, func() { IntervalsFor(model.PlatformNone) })
	require.Panics(t, func() { IntervalsFor(model.Platform(42)) })
}

func TestResolveSingleIntervalPlatforms(t *testing.T) {
	for _, p := range []model.Platform{model.Wii, model.DSi} {
		intervals, needsChoice := Choices(p)
		require.Len(t, intervals, 1)
		require.False(t, needsChoice)

		v, err := ResolveVariant(p, nil)
		require.NoError(t, err)
		require.Equal(t, model.V0, v)

		only := intervals[0]
		v, err = ResolveVariant(p, &only)
		require.NoError(t, err)
		require.Equal(t, model.V0, v)
	}
}

// Each listed interval resolves to exactly its own variant.
func TestResolveMultiIntervalPlatforms(t *testing.T) {
	for _, p := range []model.Platform{model.WiiU, model.ThreeDS, model.Switch} {
		intervals, needsChoice := Choices(p)
		require.True(t, needsChoice, "platform %v", p)

		for _, iv := range intervals {
			iv := iv
			v, err := ResolveVariant(p, &iv)
			require.NoError(t, err)
			require.Equal(t, iv.Variant, v, "%v %s", p, iv.Range())
		}

		_, err := ResolveVariant(p, nil)
		require.ErrorIs(t, err, ErrSelectionRequired)
	}
}

func TestResolveRejectsForeignInterval(t *testing.T) {
	foreign := IntervalsFor(model.Switch)[1]
	_, err := ResolveVariant(model.ThreeDS, &foreign)
	require.ErrorIs(t, err, ErrUnknownInterval)

	almost := IntervalsFor(model.ThreeDS)[2]
	almost.Upper = "11.16.0"
	_, err = ResolveVariant(model.ThreeDS, &almost)
	require.ErrorIs(t, err, ErrUnknownInterval)

	wiiu := IntervalsFor(model.WiiU)[0]
	_, err = ResolveVariant(model.Wii, &wiiu)
	require.ErrorIs(t, err, ErrUnknownInterval)
}

func TestSpecificResolutions(t *testing.T) {
	_, iv, err := FindInterval(model.ThreeDS, "7.2.0-11.15.0")
	require.NoError(t, err)
	v, err := ResolveVariant(model.ThreeDS, &iv)
	require.NoError(t, err)
	require.Equal(t, model.V2, v)

	idx, iv, err := FindInterval(model.Switch, "2")
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	require.Equal(t, "8.0.0", iv.Lower)
	require.Equal(t, model.V4, iv.Variant)

	_, _, err = FindInterval(model.Switch, "9.0.0")
	require.ErrorIs(t, err, ErrUnknownInterval)

	_, err = IntervalAt(model.WiiU, 2)
	require.ErrorIs(t, err, ErrUnknownInterval)
}

func TestValidateIntervalsRejectsBadTables(t *testing.T) {
	cases := map[string][]model.VersionInterval{
		"overlap": {
			{Lower: "1.0.0", Upper: "5.0.0", Variant: model.V0},
			{Lower: "4.0.0", Upper: "6.0.0", Variant: model.V1},
		},
		"descending": {
			{Lower: "7.0.0", Upper: "8.0.0", Variant: model.V1},
			{Lower: "1.0.0", Upper: "2.0.0", Variant: model.V0},
		},
		"inverted bounds": {
			{Lower: "3.0.0", Upper: "2.0.0", Variant: model.V0},
		},
		"bad version": {
			{Lower: "one", Upper: "2.0.0", Variant: model.V0},
		},
		"implicit among several": {
			{Lower: "1.0.0", Upper: "2.0.0"},
			{Lower: "3.0.0", Upper: "4.0.0", Variant: model.V1},
		},
		"unknown variant": {
			{Lower: "1.0.0", Upper: "2.0.0", Variant: model.AlgorithmVariant(9)},
		},
	}
	for name, intervals := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, validateIntervals(intervals))
		})
	}

	require.NoError(t, validateIntervals([]model.VersionInterval{{Lower: "1.0", Upper: "4.3"}}))
}

func TestLookupHelpers(t *testing.T) {
	choices, needsChoice := Choices(model.Wii)
	require.Len(t, choices, 1)
	require.False(t, needsChoice)

	choices, needsChoice = Choices(model.ThreeDS)
	require.Len(t, choices, 3)
	require.True(t, needsChoice)

	iv, err := IntervalAt(model.ThreeDS, 1)
	require.NoError(t, err)
	require.Equal(t, "7.0.0-7.1.0", iv.Range())

	_, err = IntervalAt(model.ThreeDS, 3)
	require.ErrorIs(t, err, ErrUnknownInterval)
	_, err = IntervalAt(model.ThreeDS, -1)
	require.ErrorIs(t, err, ErrUnknownInterval)

	i, iv, err := FindInterval(model.Switch, "8.0.0-14.1.2")
	require.NoError(t, err)
	require.Equal(t, 1, i)
	require.Equal(t, model.V4, iv.Variant)

	i, _, err = FindInterval(model.WiiU, "1")
	require.NoError(t, err)
	require.Equal(t, 0, i)

	_, _, err = FindInterval(model.WiiU, "0")
	require.ErrorIs(t, err, ErrUnknownInterval)
}
