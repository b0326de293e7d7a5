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

import "github.com/jsi-vcs/vcs2600/hardware/address"

// ProgramCounter is the 6507's 16 bit instruction pointer.
type ProgramCounter struct {
	value address.LoHi
}

// NewProgramCounter builds PC at the given address.
func NewProgramCounter(addr address.LoHi) ProgramCounter {
	return ProgramCounter{value: addr}
}

func (pc ProgramCounter) Label() string       { return "PC" }
func (pc ProgramCounter) Address() address.LoHi { return pc.value }

// Load sets PC outright, as a jump or a vector fetch does.
func (pc *ProgramCounter) Load(addr address.LoHi) {
	pc.value = addr
}

// Increment advances PC by one, wrapping within the 16 bit address space.
func (pc *ProgramCounter) Increment() {
	pc.value = pc.value.Add(1)
}

// Branch adds a signed displacement to PC, the way a relative branch does.
func (pc *ProgramCounter) Branch(offset int8) {
	pc.value = pc.value.AddSigned(offset)
}

func (pc ProgramCounter) String() string {
	return pc.value.String()
}
