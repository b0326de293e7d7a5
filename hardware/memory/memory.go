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

// Package memory implements the VCS's memory map: a single flat array
// standing in for RAM and cartridge ROM alike, fronted by the 6507's address
// mirroring and a dispatch to the TIA and RIOT for the address ranges they
// own. No component other than this package ever touches the RAM array
// directly; every CPU-observable read or write passes through here.
package memory

import (
	"github.com/jsi-vcs/vcs2600/errors"
	"github.com/jsi-vcs/vcs2600/hardware/address"
	"github.com/jsi-vcs/vcs2600/hardware/memory/bus"
	"github.com/jsi-vcs/vcs2600/hardware/memory/memorymap"
)

// totalSize is the size of the flat storage array. The 6507 only ever
// addresses a 13-bit window of it, but keeping the backing array at the
// full 64 KiB means Map6502 (used by conformance tests that bypass the VCS
// address mirroring entirely) can address it directly too.
const totalSize = 0x10000

// tiaTop and riotRange bound the two chip-owned regions within the 6507's
// collapsed 1 KiB mirror window (addresses below memorymap.ROMOrigin).
const (
	tiaTop         = 0x3f
	riotRangeStart = 0x280
	riotRangeEnd   = 0x29f
)

// VCSMemory is the flat byte array plus the routing logic spec.md calls the
// BUS. It implements bus.CPUBus and bus.DebuggerBus; TIA and RIOT are
// optional collaborators so the type is equally usable as a bare 64 KiB RAM
// for CPU-only conformance tests.
type VCSMemory struct {
	ram [totalSize]uint8

	mapFn memorymap.MapFunc
	tia   bus.ChipBus
	riot  bus.ChipBus

	lastReadRegister string
}

// NewVCSMemory builds a memory with the 6507 address mirroring, ready to
// have TIA and RIOT attached with AttachTIA/AttachRIOT.
func NewVCSMemory() *VCSMemory {
	return &VCSMemory{mapFn: memorymap.Map6507}
}

// New6502Memory builds a memory with the identity (plain 6502) address map
// and no attached chips, for CPU conformance tests (AllSuiteA, the Klaus
// functional test) that exercise only the CPU against flat RAM.
func New6502Memory() *VCSMemory {
	return &VCSMemory{mapFn: memorymap.Map6502}
}

// AttachTIA connects the TIA chip to its register range (0x00-0x3F in the
// mapped address space).
func (m *VCSMemory) AttachTIA(tia bus.ChipBus) {
	m.tia = tia
}

// AttachRIOT connects the RIOT chip to its register range (0x280-0x29F in
// the mapped address space).
func (m *VCSMemory) AttachRIOT(riot bus.ChipBus) {
	m.riot = riot
}

// dispatch resolves a mapped offset to the collaborator that owns it.
func (m *VCSMemory) dispatch(effective uint16) (tia, riot bool) {
	if effective <= tiaTop && m.tia != nil {
		return true, false
	}
	if effective >= riotRangeStart && effective <= riotRangeEnd && m.riot != nil {
		return false, true
	}
	return false, false
}

// Read implements bus.CPUBus.
func (m *VCSMemory) Read(addr address.LoHi) (uint8, error) {
	effective := m.mapFn(addr)
	tia, riot := m.dispatch(effective)
	switch {
	case tia:
		m.lastReadRegister = "TIA"
		return m.tia.Read(address.New(effective))
	case riot:
		m.lastReadRegister = "RIOT"
		return m.riot.Read(address.New(effective))
	default:
		m.lastReadRegister = ""
		return m.ram[effective], nil
	}
}

// Write implements bus.CPUBus.
func (m *VCSMemory) Write(addr address.LoHi, data uint8) error {
	effective := m.mapFn(addr)
	tia, riot := m.dispatch(effective)
	switch {
	case tia:
		return m.tia.Write(address.New(effective), data)
	case riot:
		return m.riot.Write(address.New(effective), data)
	default:
		m.ram[effective] = data
		return nil
	}
}

// Peek implements bus.DebuggerBus: a read with no chip side effects,
// bypassing TIA/RIOT dispatch entirely and reading the raw backing array.
func (m *VCSMemory) Peek(addr address.LoHi) (uint8, error) {
	effective := m.mapFn(addr)
	return m.ram[effective], nil
}

// Poke implements bus.DebuggerBus: a write with no register-write policing,
// bypassing TIA/RIOT dispatch and writing the raw backing array directly.
func (m *VCSMemory) Poke(addr address.LoHi, value uint8) error {
	effective := m.mapFn(addr)
	m.ram[effective] = value
	return nil
}

// LastReadRegister returns the canonical chip name of the collaborator the
// most recent Read was dispatched to, or the empty string for plain RAM.
func (m *VCSMemory) LastReadRegister() string {
	return m.lastReadRegister
}

// Load copies bytes into the backing array starting at the mapped address
// of start: a cartridge image addressed at its ROM origin must land where
// the CPU will actually fetch it, and for the 6507 that origin folds down
// through the same mirror every other address passes through. It is an
// error for the load to run past the end of addressable memory.
func (m *VCSMemory) Load(data []uint8, start address.LoHi) error {
	origin := int(m.mapFn(start))
	if origin+len(data) > totalSize {
		return errors.Errorf(errors.LoadSizeOverflow, len(data), origin, totalSize)
	}
	copy(m.ram[origin:], data)
	return nil
}

// ResetVector reads the 16-bit reset vector at 0xFFFC/0xFFFD (or its 6507
// mirrored equivalent) and returns it as a LoHi ready to seed the CPU's
// program counter.
func (m *VCSMemory) ResetVector() address.LoHi {
	lo, _ := m.Read(address.New(0xfffc))
	hi, _ := m.Read(address.New(0xfffd))
	return address.NewFromBytes(lo, hi)
}
