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

package errors

// error messages. Every case in this core is fatal and carries no retry
// logic; the host is expected to catch at a coarse boundary (per-test,
// per-session). None is silently swallowed.
const (
	// cpu
	UnimplementedOpcode     = "cpu error: unimplemented opcode %#02x (%s) at %s\n%s"
	UnimplementedMicroStep  = "cpu error: unimplemented micro-step %d for opcode %#02x (%s)"
	DecimalModeUnsupported  = "cpu error: decimal-mode arithmetic requested (PC %#04x, P=%#02x); not implemented"
	InvalidDuringExecution = "cpu error: invalid operation mid-instruction (%v)"

	// memory
	UnsupportedRegisterBits = "memory error: %s write %#08b exceeds supported mask %#08b"
	LoadSizeOverflow        = "memory error: load of %d bytes at %#04x overflows %d-byte address space"
	UnknownChipRegister     = "memory error: %s has no register at %s"

	// console
	BreakpointError = "console error: %v"
)
