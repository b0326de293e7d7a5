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

package instructions

// Definitions indexes every documented 6502 opcode (decimal mode is a
// runtime check rather than a table omission). Undocumented opcodes are
// simply absent: a lookup miss is the CPU core's signal to raise an
// unimplemented-opcode error.
var Definitions = map[uint8]Definition{
	0x69: {"ADC", Immediate, 2, Read},
	0x65: {"ADC", ZeroPage, 3, Read},
	0x75: {"ADC", ZeroPageX, 4, Read},
	0x6D: {"ADC", Absolute, 4, Read},
	0x7D: {"ADC", AbsoluteX, 4, Read},
	0x79: {"ADC", AbsoluteY, 4, Read},
	0x61: {"ADC", IndirectX, 6, Read},
	0x71: {"ADC", IndirectY, 5, Read},

	0x29: {"AND", Immediate, 2, Read},
	0x25: {"AND", ZeroPage, 3, Read},
	0x35: {"AND", ZeroPageX, 4, Read},
	0x2D: {"AND", Absolute, 4, Read},
	0x3D: {"AND", AbsoluteX, 4, Read},
	0x39: {"AND", AbsoluteY, 4, Read},
	0x21: {"AND", IndirectX, 6, Read},
	0x31: {"AND", IndirectY, 5, Read},

	0x0A: {"ASL", Accumulator, 2, Implied},
	0x06: {"ASL", ZeroPage, 5, ReadModifyWrite},
	0x16: {"ASL", ZeroPageX, 6, ReadModifyWrite},
	0x0E: {"ASL", Absolute, 6, ReadModifyWrite},
	0x1E: {"ASL", AbsoluteX, 7, ReadModifyWrite},

	0x90: {"BCC", Relative, 2, Flow},
	0xB0: {"BCS", Relative, 2, Flow},
	0xF0: {"BEQ", Relative, 2, Flow},
	0x30: {"BMI", Relative, 2, Flow},
	0xD0: {"BNE", Relative, 2, Flow},
	0x10: {"BPL", Relative, 2, Flow},
	0x50: {"BVC", Relative, 2, Flow},
	0x70: {"BVS", Relative, 2, Flow},

	0x24: {"BIT", ZeroPage, 3, Read},
	0x2C: {"BIT", Absolute, 4, Read},

	0x00: {"BRK", Implied, 7, Flow},

	0x18: {"CLC", Implied, 2, Implied},
	0xD8: {"CLD", Implied, 2, Implied},
	0x58: {"CLI", Implied, 2, Implied},
	0xB8: {"CLV", Implied, 2, Implied},

	0xC9: {"CMP", Immediate, 2, Read},
	0xC5: {"CMP", ZeroPage, 3, Read},
	0xD5: {"CMP", ZeroPageX, 4, Read},
	0xCD: {"CMP", Absolute, 4, Read},
	0xDD: {"CMP", AbsoluteX, 4, Read},
	0xD9: {"CMP", AbsoluteY, 4, Read},
	0xC1: {"CMP", IndirectX, 6, Read},
	0xD1: {"CMP", IndirectY, 5, Read},

	0xE0: {"CPX", Immediate, 2, Read},
	0xE4: {"CPX", ZeroPage, 3, Read},
	0xEC: {"CPX", Absolute, 4, Read},

	0xC0: {"CPY", Immediate, 2, Read},
	0xC4: {"CPY", ZeroPage, 3, Read},
	0xCC: {"CPY", Absolute, 4, Read},

	0xC6: {"DEC", ZeroPage, 5, ReadModifyWrite},
	0xD6: {"DEC", ZeroPageX, 6, ReadModifyWrite},
	0xCE: {"DEC", Absolute, 6, ReadModifyWrite},
	0xDE: {"DEC", AbsoluteX, 7, ReadModifyWrite},

	0xCA: {"DEX", Implied, 2, Implied},
	0x88: {"DEY", Implied, 2, Implied},

	0x49: {"EOR", Immediate, 2, Read},
	0x45: {"EOR", ZeroPage, 3, Read},
	0x55: {"EOR", ZeroPageX, 4, Read},
	0x4D: {"EOR", Absolute, 4, Read},
	0x5D: {"EOR", AbsoluteX, 4, Read},
	0x59: {"EOR", AbsoluteY, 4, Read},
	0x41: {"EOR", IndirectX, 6, Read},
	0x51: {"EOR", IndirectY, 5, Read},

	0xE6: {"INC", ZeroPage, 5, ReadModifyWrite},
	0xF6: {"INC", ZeroPageX, 6, ReadModifyWrite},
	0xEE: {"INC", Absolute, 6, ReadModifyWrite},
	0xFE: {"INC", AbsoluteX, 7, ReadModifyWrite},

	0xE8: {"INX", Implied, 2, Implied},
	0xC8: {"INY", Implied, 2, Implied},

	0x4C: {"JMP", Absolute, 3, Flow},
	0x6C: {"JMP", Indirect, 5, Flow},
	0x20: {"JSR", Absolute, 6, Flow},

	0xA9: {"LDA", Immediate, 2, Read},
	0xA5: {"LDA", ZeroPage, 3, Read},
	0xB5: {"LDA", ZeroPageX, 4, Read},
	0xAD: {"LDA", Absolute, 4, Read},
	0xBD: {"LDA", AbsoluteX, 4, Read},
	0xB9: {"LDA", AbsoluteY, 4, Read},
	0xA1: {"LDA", IndirectX, 6, Read},
	0xB1: {"LDA", IndirectY, 5, Read},

	0xA2: {"LDX", Immediate, 2, Read},
	0xA6: {"LDX", ZeroPage, 3, Read},
	0xB6: {"LDX", ZeroPageY, 4, Read},
	0xAE: {"LDX", Absolute, 4, Read},
	0xBE: {"LDX", AbsoluteY, 4, Read},

	0xA0: {"LDY", Immediate, 2, Read},
	0xA4: {"LDY", ZeroPage, 3, Read},
	0xB4: {"LDY", ZeroPageX, 4, Read},
	0xAC: {"LDY", Absolute, 4, Read},
	0xBC: {"LDY", AbsoluteX, 4, Read},

	0x4A: {"LSR", Accumulator, 2, Implied},
	0x46: {"LSR", ZeroPage, 5, ReadModifyWrite},
	0x56: {"LSR", ZeroPageX, 6, ReadModifyWrite},
	0x4E: {"LSR", Absolute, 6, ReadModifyWrite},
	0x5E: {"LSR", AbsoluteX, 7, ReadModifyWrite},

	0xEA: {"NOP", Implied, 2, Implied},

	0x09: {"ORA", Immediate, 2, Read},
	0x05: {"ORA", ZeroPage, 3, Read},
	0x15: {"ORA", ZeroPageX, 4, Read},
	0x0D: {"ORA", Absolute, 4, Read},
	0x1D: {"ORA", AbsoluteX, 4, Read},
	0x19: {"ORA", AbsoluteY, 4, Read},
	0x01: {"ORA", IndirectX, 6, Read},
	0x11: {"ORA", IndirectY, 5, Read},

	0x48: {"PHA", Implied, 3, Implied},
	0x08: {"PHP", Implied, 3, Implied},
	0x68: {"PLA", Implied, 4, Implied},
	0x28: {"PLP", Implied, 4, Implied},

	0x2A: {"ROL", Accumulator, 2, Implied},
	0x26: {"ROL", ZeroPage, 5, ReadModifyWrite},
	0x36: {"ROL", ZeroPageX, 6, ReadModifyWrite},
	0x2E: {"ROL", Absolute, 6, ReadModifyWrite},
	0x3E: {"ROL", AbsoluteX, 7, ReadModifyWrite},

	0x6A: {"ROR", Accumulator, 2, Implied},
	0x66: {"ROR", ZeroPage, 5, ReadModifyWrite},
	0x76: {"ROR", ZeroPageX, 6, ReadModifyWrite},
	0x6E: {"ROR", Absolute, 6, ReadModifyWrite},
	0x7E: {"ROR", AbsoluteX, 7, ReadModifyWrite},

	0x40: {"RTI", Implied, 6, Flow},
	0x60: {"RTS", Implied, 6, Flow},

	0xE9: {"SBC", Immediate, 2, Read},
	0xE5: {"SBC", ZeroPage, 3, Read},
	0xF5: {"SBC", ZeroPageX, 4, Read},
	0xED: {"SBC", Absolute, 4, Read},
	0xFD: {"SBC", AbsoluteX, 4, Read},
	0xF9: {"SBC", AbsoluteY, 4, Read},
	0xE1: {"SBC", IndirectX, 6, Read},
	0xF1: {"SBC", IndirectY, 5, Read},

	0x38: {"SEC", Implied, 2, Implied},
	0xF8: {"SED", Implied, 2, Implied},
	0x78: {"SEI", Implied, 2, Implied},

	0x85: {"STA", ZeroPage, 3, Write},
	0x95: {"STA", ZeroPageX, 4, Write},
	0x8D: {"STA", Absolute, 4, Write},
	0x9D: {"STA", AbsoluteX, 5, Write},
	0x99: {"STA", AbsoluteY, 5, Write},
	0x81: {"STA", IndirectX, 6, Write},
	0x91: {"STA", IndirectY, 6, Write},

	0x86: {"STX", ZeroPage, 3, Write},
	0x96: {"STX", ZeroPageY, 4, Write},
	0x8E: {"STX", Absolute, 4, Write},

	0x84: {"STY", ZeroPage, 3, Write},
	0x94: {"STY", ZeroPageX, 4, Write},
	0x8C: {"STY", Absolute, 4, Write},

	0xAA: {"TAX", Implied, 2, Implied},
	0xA8: {"TAY", Implied, 2, Implied},
	0xBA: {"TSX", Implied, 2, Implied},
	0x8A: {"TXA", Implied, 2, Implied},
	0x9A: {"TXS", Implied, 2, Implied},
	0x98: {"TYA", Implied, 2, Implied},
}
