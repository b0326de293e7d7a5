package instructions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsi-vcs/vcs2600/hardware/cpu/instructions"
)

func TestLookupKnownOpcodes(t *testing.T) {
	d, ok := instructions.Definitions[0xA9]
	assert.True(t, ok)
	assert.Equal(t, "LDA", d.Mnemonic)
	assert.Equal(t, instructions.Immediate, d.Mode)
	assert.Equal(t, 2, d.Bytes())

	d, ok = instructions.Definitions[0x00]
	assert.True(t, ok)
	assert.Equal(t, "BRK", d.Mnemonic)
	assert.Equal(t, instructions.Flow, d.Category)
}

func TestUnimplementedOpcodeIsAbsent(t *testing.T) {
	_, ok := instructions.Definitions[0x02] // undocumented KIL/JAM
	assert.False(t, ok)
}

func TestAddressingModeOperandBytes(t *testing.T) {
	assert.Equal(t, 0, instructions.Implied.OperandBytes())
	assert.Equal(t, 1, instructions.Immediate.OperandBytes())
	assert.Equal(t, 2, instructions.Absolute.OperandBytes())
}

func TestPageSensitiveModes(t *testing.T) {
	assert.True(t, instructions.AbsoluteX.PageSensitive())
	assert.True(t, instructions.AbsoluteY.PageSensitive())
	assert.True(t, instructions.IndirectY.PageSensitive())
	assert.False(t, instructions.ZeroPageX.PageSensitive())
	assert.False(t, instructions.Absolute.PageSensitive())
}

func TestEveryDefinitionHasAMnemonic(t *testing.T) {
	for op, d := range instructions.Definitions {
		assert.NotEmpty(t, d.Mnemonic, "opcode %#02x", op)
		assert.Greater(t, d.Cycles, 0, "opcode %#02x", op)
	}
}
