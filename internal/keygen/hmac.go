// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/toeirei/masterkey/internal/model"
)

// v1 is the 3DS scheme introduced with firmware 7.0.0. The first inquiry
// digit selects one of three region keys.
func (e *Engine) v1(req model.Request) (MasterKey, error) {
	if req.Platform != model.ThreeDS {
		return "", fmt.Errorf("%w: v1 on %v", ErrUnsupportedPlatform, req.Platform)
	}
	if req.Date == nil {
		return "", fmt.Errorf("%w: date", ErrMissingInput)
	}

	region := req.Inquiry / 1_000_000_000
	if region > 2 {
		return "", fmt.Errorf("%w: region %d", ErrInquiryRange, region)
	}
	key, err := e.keys.Key(fmt.Sprintf("3ds_hmac_key_%d.bin", region))
	if err != nil {
		return "", err
	}

	input := fmt.Sprintf("%02d%02d%010d", req.Date.Month, req.Date.Day, req.Inquiry)
	sum := hmacSHA256(key, []byte(input))

	out := binary.LittleEndian.Uint32(sum[0:4]) % 100000
	return MasterKey(fmt.Sprintf("%05d", out)), nil
}

// v3 is the Switch scheme up to firmware 7.0.1. Digits three and four of
// the inquiry number select the key version, 0x0A to 0x0D.
func (e *Engine) v3(req model.Request) (MasterKey, error) {
	if req.Platform != model.Switch {
		return "", fmt.Errorf("%w: v3 on %v", ErrUnsupportedPlatform, req.Platform)
	}

	version := (req.Inquiry / 100_000_000) % 100
	if version < 0x0A || version > 0x0D {
		return "", fmt.Errorf("%w: key version %d", ErrInquiryRange, version)
	}
	key, err := e.keys.Key(fmt.Sprintf("switch_hmac_key_version_%02X.bin", version))
	if err != nil {
		return "", err
	}

	sum := hmacSHA256(key, []byte(fmt.Sprintf("%010d", req.Inquiry)))

	out := (binary.LittleEndian.Uint64(sum[0:8]) & 0x0000FFFFFFFFFFFF) % 100_000_000
	return MasterKey(fmt.Sprintf("%08d", out)), nil
}

func hmacSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
