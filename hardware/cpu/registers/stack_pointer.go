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

// StackPointer is the 6507's S register: an 8 bit offset hardwired to page
// one. PHA/PHP/JSR/BRK decrement it after pushing; PLA/PLP/RTS/RTI increment
// it before pulling.
type StackPointer struct {
	Register
}

// NewStackPointer builds S at the given reset value (conventionally 0xFF,
// though real hardware leaves it undefined until software sets it).
func NewStackPointer(val uint8) StackPointer {
	r := NewRegister("S")
	r.Load(val)
	return StackPointer{Register: r}
}

// Address is the page-one byte address the current stack pointer value
// refers to.
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.Value())
}

// Push moves S down by one, wrapping within page one (the 6507 stack never
// grows past the page boundary; it wraps instead of overflowing into page
// zero).
func (sp *StackPointer) Push() {
	sp.Load(sp.Value() - 1)
}

// Pull moves S up by one.
func (sp *StackPointer) Pull() {
	sp.Load(sp.Value() + 1)
}
