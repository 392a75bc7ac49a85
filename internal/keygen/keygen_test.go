// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/masterkey/internal/model"
)

// testKey derives stand-in key material from the file name so the expected
// values below can be reproduced without the console keys.
func testKey(name string) []byte {
	sum := sha256.Sum256([]byte(name))
	return sum[:]
}

func testKeyStore() MemoryKeyStore {
	ks := MemoryKeyStore{}
	for _, name := range []string{
		"3ds_hmac_key_0.bin", "3ds_hmac_key_1.bin", "3ds_hmac_key_2.bin",
		"switch_hmac_key_version_0A.bin", "switch_hmac_key_version_0B.bin",
		"switch_hmac_key_version_0C.bin", "switch_hmac_key_version_0D.bin",
	} {
		ks[name] = testKey(name)
	}
	return ks
}

func date(m, d int) *model.MonthDay { return &model.MonthDay{Month: m, Day: d} }

func TestV0(t *testing.T) {
	e := New()
	cases := []struct {
		inquiry uint64
		month   int
		day     int
		want    MasterKey
	}{
		{12345678, 8, 5, "05525"},
		{1234, 1, 1, "61764"},
		{99999999, 12, 31, "44216"},
		{0, 2, 29, "56326"},
	}
	for _, c := range cases {
		for _, p := range []model.Platform{model.Wii, model.DSi, model.ThreeDS, model.WiiU} {
			got, err := e.Calculate(context.Background(), model.Request{
				Variant: model.V0, Platform: p, Inquiry: c.inquiry, Date: date(c.month, c.day),
			})
			require.NoError(t, err)
			require.Equal(t, c.want, got, "%v inquiry %d", p, c.inquiry)
		}
	}
}

func TestV0OnlyUsesLastFourDigits(t *testing.T) {
	e := New()
	a, err := e.Calculate(context.Background(), model.Request{Variant: model.V0, Platform: model.Wii, Inquiry: 12345678, Date: date(8, 5)})
	require.NoError(t, err)
	b, err := e.Calculate(context.Background(), model.Request{Variant: model.V0, Platform: model.Wii, Inquiry: 5678, Date: date(8, 5)})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestV0Errors(t *testing.T) {
	e := New()
	_, err := e.Calculate(context.Background(), model.Request{Variant: model.V0, Platform: model.Switch, Inquiry: 1, Date: date(1, 1)})
	require.ErrorIs(t, err, ErrUnsupportedPlatform)

	_, err = e.Calculate(context.Background(), model.Request{Variant: model.V0, Platform: model.Wii, Inquiry: 1})
	require.ErrorIs(t, err, ErrMissingInput)
}

func TestV1(t *testing.T) {
	e := New(WithKeyStore(testKeyStore()))
	cases := map[uint64]MasterKey{
		123456789:  "14444",
		1123456789: "63233",
		2123456789: "90424",
	}
	for inquiry, want := range cases {
		got, err := e.Calculate(context.Background(), model.Request{
			Variant: model.V1, Platform: model.ThreeDS, Inquiry: inquiry, Date: date(8, 5),
		})
		require.NoError(t, err)
		require.Equal(t, want, got, "inquiry %d", inquiry)
	}

	_, err := e.Calculate(context.Background(), model.Request{Variant: model.V1, Platform: model.ThreeDS, Inquiry: 3123456789, Date: date(8, 5)})
	require.ErrorIs(t, err, ErrInquiryRange)

	_, err = e.Calculate(context.Background(), model.Request{Variant: model.V1, Platform: model.WiiU, Inquiry: 123456789, Date: date(8, 5)})
	require.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestV3(t *testing.T) {
	e := New(WithKeyStore(testKeyStore()))
	cases := map[uint64]MasterKey{
		1034567890: "33336650",
		1134567890: "05189593",
		1234567890: "01926205",
		1334567890: "36213094",
	}
	for inquiry, want := range cases {
		got, err := e.Calculate(context.Background(), model.Request{
			Variant: model.V3, Platform: model.Switch, Inquiry: inquiry,
		})
		require.NoError(t, err)
		require.Equal(t, want, got, "inquiry %d", inquiry)
	}

	_, err := e.Calculate(context.Background(), model.Request{Variant: model.V3, Platform: model.Switch, Inquiry: 1434567890})
	require.ErrorIs(t, err, ErrInquiryRange)
}

func TestHMACVariantsWithoutKeys(t *testing.T) {
	e := New()
	_, err := e.Calculate(context.Background(), model.Request{Variant: model.V3, Platform: model.Switch, Inquiry: 1034567890})
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestDeferredVariants(t *testing.T) {
	e := New(WithKeyStore(testKeyStore()))
	deviceID := uint64(0x0123456789ABCDEF)

	_, err := e.Calculate(context.Background(), model.Request{Variant: model.V2, Platform: model.ThreeDS, Inquiry: 1234567890, Date: date(1, 2)})
	require.ErrorIs(t, err, ErrNotImplemented)

	_, err = e.Calculate(context.Background(), model.Request{Variant: model.V4, Platform: model.Switch, Inquiry: 1234567890, DeviceID: &deviceID})
	require.ErrorIs(t, err, ErrNotImplemented)
}

func TestCalculateHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Calculate(ctx, model.Request{Variant: model.V0, Platform: model.Wii, Inquiry: 1, Date: date(1, 1)})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDirKeyStore(t *testing.T) {
	dir := t.TempDir()
	raw := testKey("raw.bin")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "raw.bin"), raw, 0o600))

	packed := testKey("packed.bin")
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "packed.bin.zst"), enc.EncodeAll(packed, nil), 0o600))
	require.NoError(t, enc.Close())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "short.bin"), []byte{1, 2, 3}, 0o600))

	ks := DirKeyStore{Dir: dir}

	got, err := ks.Key("raw.bin")
	require.NoError(t, err)
	require.Equal(t, raw, got)

	got, err = ks.Key("packed.bin")
	require.NoError(t, err)
	require.Equal(t, packed, got)

	_, err = ks.Key("short.bin")
	require.ErrorIs(t, err, ErrBadKey)

	_, err = ks.Key("missing.bin")
	require.ErrorIs(t, err, ErrKeyNotFound)

	_, err = DirKeyStore{}.Key("raw.bin")
	require.ErrorIs(t, err, ErrKeyNotFound)
}
