// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"fmt"

	"github.com/toeirei/masterkey/internal/model"
)

// crcParams are the CRC-32 constants of the v0 scheme.
type crcParams struct {
	poly   uint32
	xorOut uint32
	addOut uint32
}

// v0Params lists the platforms shipping the v0 scheme. They currently share
// one set of constants.
var v0Params = map[model.Platform]crcParams{
	model.Wii:     {poly: 0xEDB88320, xorOut: 0xAAAA, addOut: 0x14C1},
	model.DSi:     {poly: 0xEDB88320, xorOut: 0xAAAA, addOut: 0x14C1},
	model.ThreeDS: {poly: 0xEDB88320, xorOut: 0xAAAA, addOut: 0x14C1},
	model.WiiU:    {poly: 0xEDB88320, xorOut: 0xAAAA, addOut: 0x14C1},
}

func (e *Engine) v0(req model.Request) (MasterKey, error) {
	params, ok := v0Params[req.Platform]
	if !ok {
		return "", fmt.Errorf("%w: v0 on %v", ErrUnsupportedPlatform, req.Platform)
	}
	if req.Date == nil {
		return "", fmt.Errorf("%w: date", ErrMissingInput)
	}

	// Only the last four inquiry digits enter the checksum.
	input := fmt.Sprintf("%02d%02d%04d", req.Date.Month, req.Date.Day, req.Inquiry%10000)
	sum := crc32(params, []byte(input))

	return MasterKey(fmt.Sprintf("%05d", sum%100000)), nil
}

// crc32 is a reflected CRC-32 with the final XOR replaced by xorOut and a
// wrapping addition of addOut.
func crc32(p crcParams, data []byte) uint32 {
	crc := uint32(0xFFFFFFFF)
	for _, b := range data {
		crc ^= uint32(b)
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ p.poly
			} else {
				crc >>= 1
			}
		}
	}
	crc ^= p.xorOut
	return crc + p.addOut
}
