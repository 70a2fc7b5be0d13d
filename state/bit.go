// SPDX-License-Identifier: MIT

package state

// Bit is a classical measurement outcome.
type Bit uint8

const (
	Off Bit = iota // qubit observed in |0⟩
	On             // qubit observed in |1⟩
)

// String returns "Off" or "On".
func (b Bit) String() string {
	if b == On {
		return "On"
	}

	return "Off"
}

// Int returns 0 for Off and 1 for On.
func (b Bit) Int() int { return int(b) }

// bitOf returns bit k of index i as a Bit.
func bitOf(i, k int) Bit { return Bit((i >> k) & 1) }
