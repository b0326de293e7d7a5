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

// Package cpu implements the 6507: the 6502 core as wired into the VCS,
// address pins A13-A15 unconnected. The CPU only ever sees the bus it is
// given; address mirroring is the memory map's job, not this package's.
//
// Most opcodes run to completion in a single Tick call (the fast path,
// execute). Opcodes whose mid-instruction cycle count depends on runtime
// state -- conditional branches, and the indexed/indirect-indexed
// addressing modes that can cross a page -- instead advance one machine
// cycle per Tick call, tracked in a small scratch file (microStepState) and
// driven by a per-opcode step table (microstep.go). That is the only way a
// chip watching WSYNC/RDY mid-instruction sees the right cycle-by-cycle bus
// traffic; see DESIGN.md for which opcodes take which path and why.
package cpu

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/jsi-vcs/vcs2600/errors"
	"github.com/jsi-vcs/vcs2600/hardware/address"
	"github.com/jsi-vcs/vcs2600/hardware/cpu/instructions"
	"github.com/jsi-vcs/vcs2600/hardware/cpu/registers"
	"github.com/jsi-vcs/vcs2600/hardware/memory/addresses"
	"github.com/jsi-vcs/vcs2600/hardware/memory/bus"
	"github.com/jsi-vcs/vcs2600/logger"
)

// RdyLine is the CPU's side of the shared RDY wire: low (false) means a chip
// is holding the bus and the CPU may not tick.
type RdyLine interface {
	Set(bool)
	Get() bool
}

// CPU is the 6507's programmer-visible state plus the bus it executes
// against.
type CPU struct {
	A, X, Y registers.Register
	P       registers.Status
	SP      registers.StackPointer
	PC      registers.ProgramCounter

	rdy RdyLine

	instructionCount uint64

	// ustep is the in-progress micro-step instruction's scratch state.
	// ustep.done is true whenever the CPU is between instructions, whether
	// the previous one ran the fast path or the micro-step path.
	ustep microStepState
}

// New builds a CPU. rdy may be nil, in which case the CPU never stalls --
// useful for opcode-level conformance tests that don't wire up a TIA.
func New(rdy RdyLine) *CPU {
	return &CPU{
		A:     registers.NewRegister("A"),
		X:     registers.NewRegister("X"),
		Y:     registers.NewRegister("Y"),
		P:     registers.NewStatus(),
		SP:    registers.NewStackPointer(0xfd),
		rdy:   rdy,
		ustep: microStepState{done: true},
	}
}

// Reset loads PC from the reset vector, as a real 6507 does on power-up.
func (c *CPU) Reset(mem bus.CPUBus) error {
	lo, err := mem.Read(address.New(addresses.Reset))
	if err != nil {
		return err
	}
	hi, err := mem.Read(address.New(addresses.Reset + 1))
	if err != nil {
		return err
	}
	c.PC = registers.NewProgramCounter(address.NewFromBytes(lo, hi))
	c.P = registers.NewStatus()
	c.ustep = microStepState{done: true}
	return nil
}

// InstructionCount is how many opcodes Tick has executed to completion.
func (c *CPU) InstructionCount() uint64 {
	return c.instructionCount
}

// Snapshot renders the CPU's register file for diagnostics.
func (c *CPU) Snapshot() string {
	return spew.Sdump(c)
}

// RegisterSnapshot is a plain-value copy of the register file, suitable for
// deep comparison between two points in an instruction stream.
type RegisterSnapshot struct {
	A, X, Y, SP uint8
	PC          uint16
	P           registers.Status
}

// RegisterSnapshot copies the current register file.
func (c *CPU) RegisterSnapshot() RegisterSnapshot {
	return RegisterSnapshot{
		A:  c.A.Value(),
		X:  c.X.Value(),
		Y:  c.Y.Value(),
		SP: c.SP.Value(),
		PC: c.PC.Address().Address(),
		P:  c.P,
	}
}

// Tick advances the CPU by one machine cycle's worth of work. For most
// opcodes that means running the whole instruction to completion in one
// call, the fast path. For the opcodes in mustMicroStep it advances exactly
// one cycle of an in-progress instruction instead, returning 1 each time
// until the instruction's own step table reports it done. If RDY is held
// low it does nothing and returns zero: the chip asserting RDY is still
// holding the bus.
func (c *CPU) Tick(mem bus.CPUBus) (int, error) {
	if c.rdy != nil && !c.rdy.Get() {
		return 0, nil
	}

	if !c.ustep.done {
		return c.tickMicroStep(mem)
	}

	opcodeAddr := c.PC.Address()
	opcode, err := mem.Read(opcodeAddr)
	if err != nil {
		return 0, err
	}

	if !microStepDisabled && mustMicroStep[opcode] {
		c.PC.Increment()
		c.ustep = microStepState{opc: opcode, step: 0, done: false}
		return 1, nil
	}

	n, err := c.execute(opcode, opcodeAddr, mem)
	if err != nil {
		return 0, err
	}
	c.instructionCount++
	return n, nil
}

// tickMicroStep advances the in-progress micro-step instruction by one
// cycle, via its step table, and marks it retired once that table reports
// done. Step 0 is never replayed here: it is the generic opcode-fetch cycle
// Tick itself already accounted for when it seeded ustep.
func (c *CPU) tickMicroStep(mem bus.CPUBus) (int, error) {
	prog, ok := microStepPrograms[c.ustep.opc]
	if !ok {
		return 0, errors.Errorf(errors.UnimplementedOpcode, c.ustep.opc, "undocumented", c.PC.Address(), c.Snapshot())
	}

	c.ustep.step++
	if c.ustep.step >= maxOpcodeSteps || prog[c.ustep.step] == nil {
		mnemonic := instructions.Definitions[c.ustep.opc].Mnemonic
		return 0, errors.Errorf(errors.UnimplementedMicroStep, c.ustep.step, c.ustep.opc, mnemonic)
	}

	done, err := prog[c.ustep.step](&c.ustep, c, mem)
	if err != nil {
		return 0, err
	}
	if done {
		c.ustep.done = true
		c.instructionCount++
	}
	return 1, nil
}

func (c *CPU) execute(opcode uint8, opcodeAddr address.LoHi, mem bus.CPUBus) (int, error) {
	def, ok := instructions.Definitions[opcode]
	if !ok {
		return 0, errors.Errorf(errors.UnimplementedOpcode, opcode, "undocumented", opcodeAddr, c.Snapshot())
	}

	nextPC := opcodeAddr.Add(uint8(def.Bytes()))

	cycles := def.Cycles

	switch def.Category {
	case instructions.Flow:
		extra, err := c.executeFlow(mem, def, opcodeAddr, nextPC)
		if err != nil {
			return 0, err
		}
		cycles += extra

	case instructions.Implied:
		if err := c.executeImplied(mem, def); err != nil {
			return 0, err
		}
		c.PC.Load(nextPC)

	case instructions.Read:
		v, crossed, err := c.fetchReadValue(def.Mode, mem)
		if err != nil {
			return 0, err
		}
		if err := c.executeRead(def.Mnemonic, v); err != nil {
			return 0, err
		}
		if crossed && def.Mode.PageSensitive() {
			cycles++
		}
		c.PC.Load(nextPC)

	case instructions.Write:
		eff, _, err := c.resolveAddress(def.Mode, mem)
		if err != nil {
			return 0, err
		}
		if err := c.executeWrite(mem, def.Mnemonic, eff); err != nil {
			return 0, err
		}
		c.PC.Load(nextPC)

	case instructions.ReadModifyWrite:
		if def.Mode == instructions.Accumulator {
			c.A.Load(c.shiftOrRotate(def.Mnemonic, c.A.Value()))
		} else {
			eff, _, err := c.resolveAddress(def.Mode, mem)
			if err != nil {
				return 0, err
			}
			v, err := mem.Read(eff)
			if err != nil {
				return 0, err
			}
			v = c.shiftOrRotate(def.Mnemonic, v)
			if err := mem.Write(eff, v); err != nil {
				return 0, err
			}
		}
		c.PC.Load(nextPC)
	}

	return cycles, nil
}

// resolveAddress decodes an addressing mode's operand bytes into an
// effective address, reporting whether indexing crossed a page boundary.
func (c *CPU) resolveAddress(mode instructions.AddressingMode, mem bus.CPUBus) (address.LoHi, bool, error) {
	operand := c.PC.Address().Add(1)

	switch mode {
	case instructions.ZeroPage:
		lo, err := mem.Read(operand)
		return address.NewFromBytes(lo, 0), false, err

	case instructions.ZeroPageX:
		lo, err := mem.Read(operand)
		if err != nil {
			return address.LoHi{}, false, err
		}
		return address.NewFromBytes(lo+c.X.Value(), 0), false, nil

	case instructions.ZeroPageY:
		lo, err := mem.Read(operand)
		if err != nil {
			return address.LoHi{}, false, err
		}
		return address.NewFromBytes(lo+c.Y.Value(), 0), false, nil

	case instructions.Absolute:
		lo, err := mem.Read(operand)
		if err != nil {
			return address.LoHi{}, false, err
		}
		hi, err := mem.Read(operand.Add(1))
		if err != nil {
			return address.LoHi{}, false, err
		}
		return address.NewFromBytes(lo, hi), false, nil

	case instructions.AbsoluteX:
		base, _, err := c.resolveAddress(instructions.Absolute, mem)
		if err != nil {
			return address.LoHi{}, false, err
		}
		eff := base.Add(c.X.Value())
		return eff, !base.SamePage(eff), nil

	case instructions.AbsoluteY:
		base, _, err := c.resolveAddress(instructions.Absolute, mem)
		if err != nil {
			return address.LoHi{}, false, err
		}
		eff := base.Add(c.Y.Value())
		return eff, !base.SamePage(eff), nil

	case instructions.Indirect:
		ptr, _, err := c.resolveAddress(instructions.Absolute, mem)
		if err != nil {
			return address.LoHi{}, false, err
		}
		lo, err := mem.Read(ptr)
		if err != nil {
			return address.LoHi{}, false, err
		}
		// the 6502's infamous page-wrap bug: the high byte is fetched from
		// (ptr.Lo+1, ptr.Hi), not from the next sequential address.
		hi, err := mem.Read(address.NewFromBytes(ptr.Lo+1, ptr.Hi))
		if err != nil {
			return address.LoHi{}, false, err
		}
		return address.NewFromBytes(lo, hi), false, nil

	case instructions.IndirectX:
		zp, err := mem.Read(operand)
		if err != nil {
			return address.LoHi{}, false, err
		}
		ptr := zp + c.X.Value()
		lo, err := mem.Read(address.NewFromBytes(ptr, 0))
		if err != nil {
			return address.LoHi{}, false, err
		}
		hi, err := mem.Read(address.NewFromBytes(ptr+1, 0))
		if err != nil {
			return address.LoHi{}, false, err
		}
		return address.NewFromBytes(lo, hi), false, nil

	case instructions.IndirectY:
		zp, err := mem.Read(operand)
		if err != nil {
			return address.LoHi{}, false, err
		}
		lo, err := mem.Read(address.NewFromBytes(zp, 0))
		if err != nil {
			return address.LoHi{}, false, err
		}
		hi, err := mem.Read(address.NewFromBytes(zp+1, 0))
		if err != nil {
			return address.LoHi{}, false, err
		}
		base := address.NewFromBytes(lo, hi)
		eff := base.Add(c.Y.Value())
		return eff, !base.SamePage(eff), nil

	default:
		return address.LoHi{}, false, errors.Errorf(errors.InvalidDuringExecution, mode)
	}
}

func (c *CPU) fetchReadValue(mode instructions.AddressingMode, mem bus.CPUBus) (uint8, bool, error) {
	if mode == instructions.Immediate {
		v, err := mem.Read(c.PC.Address().Add(1))
		return v, false, err
	}
	eff, crossed, err := c.resolveAddress(mode, mem)
	if err != nil {
		return 0, false, err
	}
	v, err := mem.Read(eff)
	return v, crossed, err
}

func (c *CPU) push(mem bus.CPUBus, v uint8) error {
	if err := mem.Write(address.New(c.SP.Address()), v); err != nil {
		return err
	}
	c.SP.Push()
	return nil
}

func (c *CPU) pull(mem bus.CPUBus) (uint8, error) {
	c.SP.Pull()
	return mem.Read(address.New(c.SP.Address()))
}

func (c *CPU) executeFlow(mem bus.CPUBus, def instructions.Definition, opcodeAddr, nextPC address.LoHi) (int, error) {
	switch def.Mnemonic {
	case "JMP":
		eff, _, err := c.resolveAddress(def.Mode, mem)
		if err != nil {
			return 0, err
		}
		c.PC.Load(eff)
		return 0, nil

	case "JSR":
		eff, _, err := c.resolveAddress(def.Mode, mem)
		if err != nil {
			return 0, err
		}
		ret := address.New(nextPC.Address() - 1)
		if err := c.push(mem, ret.Hi); err != nil {
			return 0, err
		}
		if err := c.push(mem, ret.Lo); err != nil {
			return 0, err
		}
		c.PC.Load(eff)
		return 0, nil

	case "RTS":
		lo, err := c.pull(mem)
		if err != nil {
			return 0, err
		}
		hi, err := c.pull(mem)
		if err != nil {
			return 0, err
		}
		c.PC.Load(address.NewFromBytes(lo, hi).Add(1))
		return 0, nil

	case "RTI":
		p, err := c.pull(mem)
		if err != nil {
			return 0, err
		}
		c.P.Load(p)
		lo, err := c.pull(mem)
		if err != nil {
			return 0, err
		}
		hi, err := c.pull(mem)
		if err != nil {
			return 0, err
		}
		c.PC.Load(address.NewFromBytes(lo, hi))
		return 0, nil

	case "BRK":
		ret := address.New(opcodeAddr.Address() + 2)
		if err := c.push(mem, ret.Hi); err != nil {
			return 0, err
		}
		if err := c.push(mem, ret.Lo); err != nil {
			return 0, err
		}
		c.P.Break = true
		if err := c.push(mem, c.P.Value()); err != nil {
			return 0, err
		}
		c.P.InterruptDisable = true
		lo, err := mem.Read(address.New(addresses.IRQ))
		if err != nil {
			return 0, err
		}
		hi, err := mem.Read(address.New(addresses.IRQ + 1))
		if err != nil {
			return 0, err
		}
		c.PC.Load(address.NewFromBytes(lo, hi))
		return 0, nil

	default: // branches
		operand, err := mem.Read(opcodeAddr.Add(1))
		if err != nil {
			return 0, err
		}
		taken := c.branchTaken(def.Mnemonic)
		c.PC.Load(nextPC)
		if !taken {
			return 0, nil
		}
		target := nextPC.AddSigned(int8(operand))
		crossed := !nextPC.SamePage(target)
		c.PC.Load(target)
		if crossed {
			return 2, nil
		}
		return 1, nil
	}
}

func (c *CPU) branchTaken(mnemonic string) bool {
	switch mnemonic {
	case "BCC":
		return !c.P.Carry
	case "BCS":
		return c.P.Carry
	case "BEQ":
		return c.P.Zero
	case "BNE":
		return !c.P.Zero
	case "BPL":
		return !c.P.Sign
	case "BMI":
		return c.P.Sign
	case "BVC":
		return !c.P.Overflow
	case "BVS":
		return c.P.Overflow
	}
	return false
}

func (c *CPU) executeImplied(mem bus.CPUBus, def instructions.Definition) error {
	switch def.Mnemonic {
	case "ASL", "LSR", "ROL", "ROR":
		c.A.Load(c.shiftOrRotate(def.Mnemonic, c.A.Value()))
	case "CLC":
		c.P.Carry = false
	case "CLD":
		c.P.DecimalMode = false
	case "CLI":
		c.P.InterruptDisable = false
	case "CLV":
		c.P.Overflow = false
	case "SEC":
		c.P.Carry = true
	case "SED":
		c.P.DecimalMode = true
	case "SEI":
		c.P.InterruptDisable = true
	case "DEX":
		c.X.Load(c.X.Value() - 1)
		c.P.SetNZ(c.X.Value())
	case "DEY":
		c.Y.Load(c.Y.Value() - 1)
		c.P.SetNZ(c.Y.Value())
	case "INX":
		c.X.Load(c.X.Value() + 1)
		c.P.SetNZ(c.X.Value())
	case "INY":
		c.Y.Load(c.Y.Value() + 1)
		c.P.SetNZ(c.Y.Value())
	case "TAX":
		c.X.Load(c.A.Value())
		c.P.SetNZ(c.X.Value())
	case "TAY":
		c.Y.Load(c.A.Value())
		c.P.SetNZ(c.Y.Value())
	case "TXA":
		c.A.Load(c.X.Value())
		c.P.SetNZ(c.A.Value())
	case "TYA":
		c.A.Load(c.Y.Value())
		c.P.SetNZ(c.A.Value())
	case "TSX":
		c.X.Load(c.SP.Value())
		c.P.SetNZ(c.X.Value())
	case "TXS":
		c.SP.Load(c.X.Value())
	case "PHA":
		return c.push(mem, c.A.Value())
	case "PHP":
		c.P.Break = true
		return c.push(mem, c.P.Value())
	case "PLA":
		v, err := c.pull(mem)
		if err != nil {
			return err
		}
		c.A.Load(v)
		c.P.SetNZ(v)
	case "PLP":
		v, err := c.pull(mem)
		if err != nil {
			return err
		}
		c.P.Load(v)
	case "NOP":
		// nothing
	default:
		return errors.Errorf(errors.UnimplementedOpcode, 0, def.Mnemonic, c.PC.Address(), c.Snapshot())
	}
	return nil
}

func (c *CPU) executeRead(mnemonic string, v uint8) error {
	switch mnemonic {
	case "LDA":
		c.A.Load(v)
		c.P.SetNZ(v)
	case "LDX":
		c.X.Load(v)
		c.P.SetNZ(v)
	case "LDY":
		c.Y.Load(v)
		c.P.SetNZ(v)
	case "AND":
		c.A.Load(c.A.Value() & v)
		c.P.SetNZ(c.A.Value())
	case "ORA":
		c.A.Load(c.A.Value() | v)
		c.P.SetNZ(c.A.Value())
	case "EOR":
		c.A.Load(c.A.Value() ^ v)
		c.P.SetNZ(c.A.Value())
	case "BIT":
		result := c.A.Value() & v
		c.P.Zero = result == 0
		c.P.Sign = v&0x80 != 0
		c.P.Overflow = v&0x40 != 0
	case "CMP":
		c.compare(c.A.Value(), v)
	case "CPX":
		c.compare(c.X.Value(), v)
	case "CPY":
		c.compare(c.Y.Value(), v)
	case "ADC":
		return c.adc(v)
	case "SBC":
		return c.adc(^v)
	default:
		return errors.Errorf(errors.UnimplementedOpcode, 0, mnemonic, c.PC.Address(), c.Snapshot())
	}
	return nil
}

func (c *CPU) executeWrite(mem bus.CPUBus, mnemonic string, eff address.LoHi) error {
	switch mnemonic {
	case "STA":
		return mem.Write(eff, c.A.Value())
	case "STX":
		return mem.Write(eff, c.X.Value())
	case "STY":
		return mem.Write(eff, c.Y.Value())
	}
	return errors.Errorf(errors.UnimplementedOpcode, 0, mnemonic, c.PC.Address(), c.Snapshot())
}

func (c *CPU) compare(reg, v uint8) {
	result := reg - v
	c.P.Carry = reg >= v
	c.P.SetNZ(result)
}

// adc is ADC's own binary-mode addition; SBC reuses it on the one's
// complement of its operand, the standard 6502 identity.
func (c *CPU) adc(v uint8) error {
	if c.P.DecimalMode {
		return errors.Errorf(errors.DecimalModeUnsupported, c.PC.Address().Address(), c.P.Value())
	}
	a := c.A.Value()
	var carryIn uint8
	if c.P.Carry {
		carryIn = 1
	}
	sum := int(a) + int(v) + int(carryIn)
	result := uint8(sum)
	c.P.Carry = sum > 0xff
	c.P.Overflow = (a^v)&0x80 == 0 && (a^result)&0x80 != 0
	c.A.Load(result)
	c.P.SetNZ(result)
	logger.Logf("cpu", "A=%#02x P=%s", result, c.P)
	return nil
}

func (c *CPU) shiftOrRotate(mnemonic string, v uint8) uint8 {
	switch mnemonic {
	case "ASL":
		c.P.Carry = v&0x80 != 0
		v <<= 1
	case "LSR":
		c.P.Carry = v&0x01 != 0
		v >>= 1
	case "ROL":
		carryIn := c.P.Carry
		c.P.Carry = v&0x80 != 0
		v <<= 1
		if carryIn {
			v |= 0x01
		}
	case "ROR":
		carryIn := c.P.Carry
		c.P.Carry = v&0x01 != 0
		v >>= 1
		if carryIn {
			v |= 0x80
		}
	case "INC":
		v++
	case "DEC":
		v--
	}
	c.P.SetNZ(v)
	return v
}
