// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "fmt"

// MonthDay is the calendar date shown by the console's inquiry screen.
type MonthDay struct {
	Month int
	Day   int
}

func (d MonthDay) String() string {
	return fmt.Sprintf("%02d/%02d", d.Month, d.Day)
}

// Request is a fully resolved computation request. Date and DeviceID are
// set only when the variant's requirement needs them.
type Request struct {
	Variant  AlgorithmVariant
	Platform Platform
	Inquiry  uint64
	Date     *MonthDay
	DeviceID *uint64
}
