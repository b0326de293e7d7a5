// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package registers

import "strings"

// Status is the processor status register, P. The unused bit (5) is never
// modelled as a field; Value() always sets it, Load() always ignores it,
// matching real silicon.
type Status struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatus returns P in its post-reset state: only the interrupt-disable
// flag set.
func NewStatus() Status {
	var sr Status
	sr.Load(0x04)
	sr.Break = false
	return sr
}

func (sr Status) Label() string { return "P" }

func (sr Status) String() string {
	s := strings.Builder{}
	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}
	flag(sr.Sign, 'S')
	flag(sr.Overflow, 'V')
	s.WriteRune('-')
	flag(sr.Break, 'B')
	flag(sr.DecimalMode, 'D')
	flag(sr.InterruptDisable, 'I')
	flag(sr.Zero, 'Z')
	flag(sr.Carry, 'C')
	return s.String()
}

// Value packs the flags into the byte form pushed by PHP/BRK, with the
// unused bit 5 always set.
func (sr Status) Value() uint8 {
	var v uint8
	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Break {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}
	v |= 0x20
	return v
}

// Load unpacks a byte (from PLP/RTI, or a stack pull) into the flags. Break
// is always set on load: the bit only ever means something at the instant
// it's pushed, distinguishing a BRK push from an IRQ/NMI push.
func (sr *Status) Load(v uint8) {
	sr.Sign = v&0x80 != 0
	sr.Overflow = v&0x40 != 0
	sr.DecimalMode = v&0x08 != 0
	sr.InterruptDisable = v&0x04 != 0
	sr.Zero = v&0x02 != 0
	sr.Carry = v&0x01 != 0
	sr.Break = true
}

// SetNZ sets the Sign and Zero flags from the given result byte, the way
// almost every load/transfer/arithmetic instruction concludes.
func (sr *Status) SetNZ(v uint8) {
	sr.Sign = v&0x80 != 0
	sr.Zero = v == 0
}
