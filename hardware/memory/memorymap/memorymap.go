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

// Package memorymap implements the pure address-mapping functions that
// collapse a CPU-visible LoHi address down to an offset into the bus's
// storage. The 6507 (the cost-reduced 6502 used in the VCS) brings out only
// 13 of its 16 address pins, so addresses above 0x1FFF fold back onto the
// 8 KiB below it, and the 4 KiB below the cartridge ROM window folds
// further, down to a single 1 KiB region shared by the TIA, RAM and RIOT
// mirrors.
package memorymap

import "github.com/jsi-vcs/vcs2600/hardware/address"

// ROMOrigin is the first address, in 6507 (13-bit) space, occupied by
// cartridge ROM.
const ROMOrigin = 0x1000

const (
	mask13bit = 0x1fff
	mask10bit = 0x03ff
)

// Map6502 is the identity mapping: a plain 6502 brings out all 16 address
// pins, so every address is distinct.
func Map6502(addr address.LoHi) uint16 {
	return addr.Address()
}

// Map6507 applies the 6507's address-pin mirroring: A13-A15 are not wired,
// so the effective address is first masked to 13 bits; if that still lands
// below the cartridge ROM window, it is folded again into the 1 KiB region
// where the TIA, RAM and RIOT mirrors all live.
func Map6507(addr address.LoHi) uint16 {
	a := addr.Address() & mask13bit
	if a < ROMOrigin {
		a &= mask10bit
	}
	return a
}

// MapFunc is the shape both Map6502 and Map6507 share; the bus is
// constructed with one of these, parameterizing it over console model.
type MapFunc func(address.LoHi) uint16
