// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package form

// State is the coordinator's position in the selection flow.
type State int

const (
	// StateIdle means no platform is chosen.
	StateIdle State = iota
	// StatePlatformChosen means a platform is chosen but its version
	// interval is still pending.
	StatePlatformChosen
	// StateVariantResolved means the variant is known but required fields
	// are missing or invalid.
	StateVariantResolved
	// StateSubmittable means a submission would be dispatched.
	StateSubmittable
)

var stateNames = map[State]string{
	StateIdle:            "idle",
	StatePlatformChosen:  "platform-chosen",
	StateVariantResolved: "variant-resolved",
	StateSubmittable:     "submittable",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}
