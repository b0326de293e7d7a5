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

// Package console is the composition root: it wires the CPU, TIA and RIOT
// to a shared memory bus and a shared RDY line, and drives them with the
// three-chip master clock loop real hardware runs.
package console

import (
	"time"

	"github.com/jsi-vcs/vcs2600/errors"
	"github.com/jsi-vcs/vcs2600/hardware/address"
	"github.com/jsi-vcs/vcs2600/hardware/clocks"
	"github.com/jsi-vcs/vcs2600/hardware/cpu"
	"github.com/jsi-vcs/vcs2600/hardware/memory"
	"github.com/jsi-vcs/vcs2600/hardware/riot"
	"github.com/jsi-vcs/vcs2600/hardware/television"
	"github.com/jsi-vcs/vcs2600/hardware/tia"
)

// VCS is the assembled console: a CPU, a TIA, a RIOT and the memory map
// that routes CPU bus traffic between them.
type VCS struct {
	CPU *cpu.CPU
	TIA *tia.TIA
	RIOT *riot.RIOT
	Mem *memory.VCSMemory
	TV   *television.Television

	rdy tia.Line

	breakpoints map[uint16]bool

	duration time.Duration
}

// New assembles a console for the given television sink. A nil tv is valid
// for tests that only care about CPU/RIOT state.
func New(tv *television.Television) *VCS {
	rdy := tia.NewLine()

	mem := memory.NewVCSMemory()
	t := tia.New(tv, rdy)
	r := riot.New()
	mem.AttachTIA(t)
	mem.AttachRIOT(r)

	return &VCS{
		CPU:         cpu.New(rdy),
		TIA:         t,
		RIOT:        r,
		Mem:         mem,
		TV:          tv,
		rdy:         rdy,
		breakpoints: make(map[uint16]bool),
	}
}

// LoadROM copies a cartridge image into memory at the given origin and
// resets the CPU from the vector it ends up pointing at.
func (vcs *VCS) LoadROM(data []uint8, origin address.LoHi) error {
	if err := vcs.Mem.Load(data, origin); err != nil {
		return err
	}
	return vcs.CPU.Reset(vcs.Mem)
}

// Tick advances the console by the given number of colour clocks: the TIA
// ticks once per colour clock, the RIOT and CPU once per three (the master
// clock's own ratio, clocks.ColorClocksPerMachineCycle).
func (vcs *VCS) Tick(colorClocks int) error {
	defer vcs.clockDuration(time.Now())
	for i := 0; i < colorClocks; i++ {
		if i%clocks.ColorClocksPerMachineCycle == 0 {
			vcs.RIOT.Tick()
			if _, err := vcs.CPU.Tick(vcs.Mem); err != nil {
				return err
			}
		}
		vcs.TIA.Tick()
	}
	return nil
}

// RunFor executes instructionCount CPU opcodes (not colour clocks). The CPU
// itself may take more than one Tick call to retire an opcode (see the cpu
// package's micro-step path), so each Tick call's own reported cycle count
// drives the RIOT and TIA alongside it at the fixed 3:1 ratio, the same
// cadence Tick uses -- the RIOT's interval timer decays once per machine
// cycle the CPU actually spends, not once per instruction regardless of its
// cost. A breakpoint hit stops execution early and returns a console error
// naming it.
func (vcs *VCS) RunFor(instructionCount int) error {
	defer vcs.clockDuration(time.Now())
	for i := 0; i < instructionCount; i++ {
		pc := vcs.CPU.PC.Address().Address()
		if vcs.breakpoints[pc] {
			return errors.Errorf(errors.BreakpointError, pc)
		}

		before := vcs.CPU.InstructionCount()
		for vcs.CPU.InstructionCount() == before {
			n, err := vcs.CPU.Tick(vcs.Mem)
			if err != nil {
				return err
			}
			if n == 0 {
				// RDY is held low: the CPU is stalled, but the clock keeps
				// running so the TIA can release it.
				n = 1
			}
			for c := 0; c < n; c++ {
				vcs.RIOT.Tick()
				for j := 0; j < clocks.ColorClocksPerMachineCycle; j++ {
					vcs.TIA.Tick()
				}
			}
		}
	}
	return nil
}

// SetBreakpoint arms a breakpoint at a CPU address; RunFor stops just
// before executing an opcode there.
func (vcs *VCS) SetBreakpoint(addr uint16) {
	vcs.breakpoints[addr] = true
}

// ClearBreakpoints removes every armed breakpoint.
func (vcs *VCS) ClearBreakpoints() {
	vcs.breakpoints = make(map[uint16]bool)
}

// PeekAt is a debugger read: no chip side effects, no register policing.
func (vcs *VCS) PeekAt(addr address.LoHi) (uint8, error) {
	return vcs.Mem.Peek(addr)
}

// Registers renders the CPU's register file for a debugger or log line.
func (vcs *VCS) Registers() string {
	return vcs.CPU.Snapshot()
}

// Duration is the wall-clock time spent inside Tick/RunFor since the
// console was built, for a host to report alongside emulated frame count.
func (vcs *VCS) Duration() time.Duration {
	return vcs.duration
}

// clockDuration instruments a run, recording wall-clock time spent. Tick and
// RunFor each defer it with their own start time.
func (vcs *VCS) clockDuration(start time.Time) {
	vcs.duration += time.Since(start)
}
