package memorymap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsi-vcs/vcs2600/hardware/address"
	"github.com/jsi-vcs/vcs2600/hardware/memory/memorymap"
)

func TestMap6502IsIdentity(t *testing.T) {
	for _, v := range []uint16{0x0000, 0x0280, 0x1fff, 0xffff} {
		assert.Equal(t, v, memorymap.Map6502(address.New(v)))
	}
}

// Vectors reproduced from the reference implementation's own mm_6507 test
// table (no mirroring, higher-half mirroring, TIA-RAM-RIOT mirroring).
func TestMap6507(t *testing.T) {
	cases := []struct {
		name string
		addr address.LoHi
		want uint16
	}{
		{"no mirroring - 1", address.NewFromBytes(0x00, 0x00), 0x0000},
		{"no mirroring - 2", address.NewFromBytes(0xff, 0x1f), 0x1fff},
		{"higher half of address space - 1", address.NewFromBytes(0x00, 0x20), 0x0000},
		{"higher half of address space - 2 (reset vector)", address.New(0xfffc), 0x1ffc},
		{"TIA-RAM-RIOT mirror - 1", address.NewFromBytes(0xfe, 0x07), 0x03fe},
		{"TIA-RAM-RIOT mirror - 2", address.NewFromBytes(0x01, 0x08), 0x0001},
		{"TIA-RAM-RIOT mirror - 3", address.NewFromBytes(0x80, 0x0d), 0x0180},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, memorymap.Map6507(c.addr))
		})
	}
}

// Full mirror table: the 1 KiB region holding the TIA, RAM and RIOT repeats
// four times across the 4 KiB window below ROMOrigin, so the TIA and RIOT
// registers land at the same offsets in every 1 KiB mirror.
func TestMap6507MirrorTable(t *testing.T) {
	for page := uint16(0); page < memorymap.ROMOrigin; page += 0x400 {
		tia := memorymap.Map6507(address.New(page))
		assert.Less(t, tia, uint16(0x80), "TIA mirror at %#04x should collapse below 0x80", page)

		riot := memorymap.Map6507(address.New(page + 0x280))
		assert.GreaterOrEqual(t, riot, uint16(0x280))
		assert.Less(t, riot, uint16(0x300))
	}
}

func TestMap6507CartridgeWindowUnmirrored(t *testing.T) {
	for _, v := range []uint16{0x1000, 0x1800, 0x1fff} {
		assert.Equal(t, v, memorymap.Map6507(address.New(v)))
	}
}
