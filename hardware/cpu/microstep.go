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

package cpu

import (
	"github.com/jsi-vcs/vcs2600/hardware/address"
	"github.com/jsi-vcs/vcs2600/hardware/cpu/instructions"
	"github.com/jsi-vcs/vcs2600/hardware/memory/bus"
)

// maxOpcodeSteps bounds a micro-step program's length: the longest opcode
// this core steps (an absolute,X read-modify-write) takes 7 machine cycles,
// one of which is the generic opcode fetch Tick handles itself, leaving up
// to 6 per-opcode steps plus the unused index-0 slot.
const maxOpcodeSteps = 8

// microStepState is the scratch file a micro-step program reads and writes
// between Tick calls: the opcode being stepped, which step is next, whether
// the instruction has retired, and a handful of scratch bytes/words for
// intermediate addresses and operands. It is small and value-typed so it
// can be copied, zeroed and compared cheaply.
type microStepState struct {
	opc  uint8
	step int
	done bool
	u8   [4]uint8
	u16  [2]uint16
}

// microStepFunc advances one machine cycle of an in-progress instruction.
// It reports whether that cycle retires the instruction.
type microStepFunc func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error)

// microStepProgram is the per-opcode table of cycle functions, indexed by
// step number. Index 0 is never invoked: Tick's own opcode-fetch cycle
// plays that role for every opcode, the same way it does on real silicon.
type microStepProgram [maxOpcodeSteps]microStepFunc

// mustMicroStep marks the opcodes this core steps one machine cycle at a
// time rather than executing atomically: conditional branches (whose extra
// cycles depend on whether the branch is taken and whether it crosses a
// page) and the indexed/indirect-indexed addressing modes whose effective
// address can take an extra cycle to resolve. Every other documented
// opcode still runs through the atomic fast path in cpu.go.
var mustMicroStep [256]bool

// microStepPrograms holds the step table for every opcode marked in
// mustMicroStep.
var microStepPrograms = map[uint8]microStepProgram{}

// microStepDisabled lets a white-box test force every instruction through
// the atomic fast path, for comparison against the micro-step path's own
// result on the same program.
var microStepDisabled bool

type indexSelector func(c *CPU) uint8

func indexX(c *CPU) uint8 { return c.X.Value() }
func indexY(c *CPU) uint8 { return c.Y.Value() }

func init() {
	for opcode, def := range instructions.Definitions {
		switch def.Mode {
		case instructions.Relative:
			mustMicroStep[opcode] = true
			microStepPrograms[opcode] = buildRelativeProgram(def.Mnemonic)

		case instructions.AbsoluteX, instructions.AbsoluteY:
			index := indexX
			if def.Mode == instructions.AbsoluteY {
				index = indexY
			}
			mustMicroStep[opcode] = true
			switch def.Category {
			case instructions.Read:
				microStepPrograms[opcode] = buildIndexedAbsoluteReadProgram(def.Mnemonic, index)
			case instructions.Write:
				microStepPrograms[opcode] = buildIndexedAbsoluteWriteProgram(def.Mnemonic, index)
			case instructions.ReadModifyWrite:
				microStepPrograms[opcode] = buildIndexedAbsoluteRMWProgram(def.Mnemonic, index)
			}

		case instructions.IndirectY:
			mustMicroStep[opcode] = true
			switch def.Category {
			case instructions.Read:
				microStepPrograms[opcode] = buildIndirectYReadProgram(def.Mnemonic)
			case instructions.Write:
				microStepPrograms[opcode] = buildIndirectYWriteProgram(def.Mnemonic)
			}
		}
	}
}

// buildRelativeProgram steps a conditional branch: fetch the offset, decide
// whether it is taken, apply it to PCL immediately and PCH only if the
// branch crosses a page, mirroring the fast path's own cycle accounting
// (2 cycles not taken, 3 taken same page, 4 taken across a page).
func buildRelativeProgram(mnemonic string) microStepProgram {
	var prog microStepProgram

	prog[1] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		operand, err := mem.Read(c.PC.Address())
		if err != nil {
			return false, err
		}
		c.PC.Increment()
		s.u8[0] = operand
		return !c.branchTaken(mnemonic), nil
	}

	prog[2] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		base := c.PC.Address()
		target := base.AddSigned(int8(s.u8[0]))
		c.PC.Load(address.NewFromBytes(target.Lo, base.Hi))
		s.u16[1] = uint16(target.Hi)
		return base.Hi == target.Hi, nil
	}

	prog[3] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		c.PC.Load(address.NewFromBytes(c.PC.Address().Lo, uint8(s.u16[1])))
		return true, nil
	}

	return prog
}

func fetchAbsoluteLow(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
	lo, err := mem.Read(c.PC.Address())
	if err != nil {
		return false, err
	}
	c.PC.Increment()
	s.u8[0] = lo
	return false, nil
}

func fetchAbsoluteHighAndIndex(index indexSelector) microStepFunc {
	return func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		hi, err := mem.Read(c.PC.Address())
		if err != nil {
			return false, err
		}
		c.PC.Increment()
		s.u16[1] = uint16(hi)
		s.u16[0] = uint16(s.u8[0]) + uint16(index(c))
		return false, nil
	}
}

func provisionalEffective(s *microStepState) address.LoHi {
	return address.NewFromBytes(uint8(s.u16[0]), uint8(s.u16[1]))
}

// buildIndexedAbsoluteReadProgram steps LDA/LDX/LDY/AND/ORA/EOR/ADC/SBC/CMP
// in absolute,X or absolute,Y: the effective address's low byte is always
// right, but its high byte is only fixed up -- costing an extra cycle --
// when adding the index carried into it.
func buildIndexedAbsoluteReadProgram(mnemonic string, index indexSelector) microStepProgram {
	var prog microStepProgram
	prog[1] = fetchAbsoluteLow
	prog[2] = fetchAbsoluteHighAndIndex(index)
	prog[3] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		v, err := mem.Read(provisionalEffective(s))
		if err != nil {
			return false, err
		}
		if s.u16[0] > 0xff {
			s.u16[1]++
			return false, nil
		}
		return true, c.executeRead(mnemonic, v)
	}
	prog[4] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		v, err := mem.Read(provisionalEffective(s))
		if err != nil {
			return false, err
		}
		return true, c.executeRead(mnemonic, v)
	}
	return prog
}

// buildIndexedAbsoluteWriteProgram steps STA/STX/STY in absolute,X or
// absolute,Y. A store can never skip the high-byte fix-up cycle: the
// processor always performs (and discards) a dummy read from the
// provisional address, because it cannot undo a write to the wrong one.
func buildIndexedAbsoluteWriteProgram(mnemonic string, index indexSelector) microStepProgram {
	var prog microStepProgram
	prog[1] = fetchAbsoluteLow
	prog[2] = fetchAbsoluteHighAndIndex(index)
	prog[3] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		if _, err := mem.Read(provisionalEffective(s)); err != nil {
			return false, err
		}
		if s.u16[0] > 0xff {
			s.u16[1]++
		}
		return false, nil
	}
	prog[4] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		return true, c.executeWrite(mem, mnemonic, provisionalEffective(s))
	}
	return prog
}

// buildIndexedAbsoluteRMWProgram steps ASL/LSR/ROL/ROR/INC/DEC in
// absolute,X: like a store, the high-byte fix-up always costs a cycle, and
// the value is read, written back unmodified, then written again with the
// operation applied -- the 6502's characteristic read-modify-write shape.
func buildIndexedAbsoluteRMWProgram(mnemonic string, index indexSelector) microStepProgram {
	var prog microStepProgram
	prog[1] = fetchAbsoluteLow
	prog[2] = fetchAbsoluteHighAndIndex(index)
	prog[3] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		if _, err := mem.Read(provisionalEffective(s)); err != nil {
			return false, err
		}
		if s.u16[0] > 0xff {
			s.u16[1]++
		}
		return false, nil
	}
	prog[4] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		v, err := mem.Read(provisionalEffective(s))
		if err != nil {
			return false, err
		}
		s.u8[1] = v
		return false, nil
	}
	prog[5] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		if err := mem.Write(provisionalEffective(s), s.u8[1]); err != nil {
			return false, err
		}
		s.u8[1] = c.shiftOrRotate(mnemonic, s.u8[1])
		return false, nil
	}
	prog[6] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		return true, mem.Write(provisionalEffective(s), s.u8[1])
	}
	return prog
}

// buildIndirectYReadProgram steps LDA/AND/ORA/EOR/ADC/SBC/CMP in
// (zp),Y: the pointer is always read from the zero page (no page-crossing
// there), but adding Y to the pointer's low byte can still carry into the
// effective address's high byte, costing the same extra cycle as the
// indexed-absolute modes.
func buildIndirectYReadProgram(mnemonic string) microStepProgram {
	var prog microStepProgram
	prog[1] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		zp, err := mem.Read(c.PC.Address())
		if err != nil {
			return false, err
		}
		c.PC.Increment()
		s.u8[0] = zp
		return false, nil
	}
	prog[2] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		lo, err := mem.Read(address.NewFromBytes(s.u8[0], 0))
		if err != nil {
			return false, err
		}
		s.u8[1] = lo
		return false, nil
	}
	prog[3] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		hi, err := mem.Read(address.NewFromBytes(s.u8[0]+1, 0))
		if err != nil {
			return false, err
		}
		s.u16[1] = uint16(hi)
		s.u16[0] = uint16(s.u8[1]) + uint16(c.Y.Value())
		return false, nil
	}
	prog[4] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		v, err := mem.Read(provisionalEffective(s))
		if err != nil {
			return false, err
		}
		if s.u16[0] > 0xff {
			s.u16[1]++
			return false, nil
		}
		return true, c.executeRead(mnemonic, v)
	}
	prog[5] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		v, err := mem.Read(provisionalEffective(s))
		if err != nil {
			return false, err
		}
		return true, c.executeRead(mnemonic, v)
	}
	return prog
}

// buildIndirectYWriteProgram steps STA in (zp),Y. As with the indexed
// stores, the high-byte fix-up cycle always happens.
func buildIndirectYWriteProgram(mnemonic string) microStepProgram {
	var prog microStepProgram
	prog[1] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		zp, err := mem.Read(c.PC.Address())
		if err != nil {
			return false, err
		}
		c.PC.Increment()
		s.u8[0] = zp
		return false, nil
	}
	prog[2] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		lo, err := mem.Read(address.NewFromBytes(s.u8[0], 0))
		if err != nil {
			return false, err
		}
		s.u8[1] = lo
		return false, nil
	}
	prog[3] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		hi, err := mem.Read(address.NewFromBytes(s.u8[0]+1, 0))
		if err != nil {
			return false, err
		}
		s.u16[1] = uint16(hi)
		s.u16[0] = uint16(s.u8[1]) + uint16(c.Y.Value())
		return false, nil
	}
	prog[4] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		if _, err := mem.Read(provisionalEffective(s)); err != nil {
			return false, err
		}
		if s.u16[0] > 0xff {
			s.u16[1]++
		}
		return false, nil
	}
	prog[5] = func(s *microStepState, c *CPU, mem bus.CPUBus) (bool, error) {
		return true, c.executeWrite(mem, mnemonic, provisionalEffective(s))
	}
	return prog
}
