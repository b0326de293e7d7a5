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

// Package tia implements the portion of the Television Interface Adaptor
// that this core models: a colour-clock counter that turns CPU-visible
// register writes into painted pixels, and the WSYNC/RDY handshake that
// lets the TIA hold the CPU off until the next scanline boundary.
//
// The rest of the TIA's silicon -- players, missiles, the ball, playfield
// shift registers, collision detection, audio -- is not reproduced; only
// the background colour and the frame/line timing that drives it.
package tia

import (
	"github.com/jsi-vcs/vcs2600/errors"
	"github.com/jsi-vcs/vcs2600/hardware/address"
	"github.com/jsi-vcs/vcs2600/hardware/memory/addresses"
	"github.com/jsi-vcs/vcs2600/hardware/television"
	"github.com/jsi-vcs/vcs2600/logger"
)

// Scanline geometry, in colour clocks. Every real NTSC/PAL TIA shares this
// shape: 68 clocks of horizontal blank the beam spends off-screen, followed
// by 160 clocks of drawable area.
const (
	ColorClocksPerScanline = television.NTSCColorClocksPerRow
	HBlankWidth            = 68
	DrawableWidth          = ColorClocksPerScanline - HBlankWidth

	// VerticalSyncScanlines is how many scanlines at the top of the frame
	// are never painted regardless of VBLANK, matching the reference
	// core's ROW_VERTICAL_SYNC_END.
	VerticalSyncScanlines = 3
)

// register offsets within the TIA's own normalised address range (0x00-0x3F).
const (
	regVSYNC  = 0x00
	regVBLANK = 0x01
	regWSYNC  = 0x02
	regCOLUBK = 0x09
)

const vsyncBit = 0b0000_0010
const vblankBit = 0b0000_0010

// Line is the shared RDY wire between the TIA and the CPU: the CPU reads it
// before ticking, the TIA writes it when WSYNC demands a stall.
type Line interface {
	Set(bool)
	Get() bool
}

// rdyLine is the default Line implementation; console wires a shared one
// into both the TIA and the CPU.
type rdyLine struct{ ready bool }

func NewLine() Line                { return &rdyLine{ready: true} }
func (l *rdyLine) Set(ready bool)   { l.ready = ready }
func (l *rdyLine) Get() bool        { return l.ready }

// PolicingEnabled gates register-write bit policing; on by default.
var PolicingEnabled = true

// TIA is the colour-clock-driven core of the chip.
type TIA struct {
	tv  *television.Television
	rdy Line

	frameCycleCounter int
	wsyncPending      bool

	vsync  uint8
	vblank uint8
	colubk uint8
}

// New builds a TIA painting into tv and asserting rdy when WSYNC demands a
// stall. rdy may be nil for tests that only care about the pixel buffer.
func New(tv *television.Television, rdy Line) *TIA {
	return &TIA{tv: tv, rdy: rdy}
}

// Tick advances the TIA by one colour clock. This is the reference core's
// own algorithm: compute this clock's position within the current
// scanline, release a pending WSYNC stall exactly at the scanline's first
// clock, skip painting during HBLANK and the fixed vertical-sync region,
// and otherwise paint the background colour for every remaining clock
// (VBLANK suppresses the paint but not the clock).
func (t *TIA) Tick() {
	t.frameCycleCounter++

	offset := (t.frameCycleCounter - 1) % ColorClocksPerScanline
	scanline := (t.frameCycleCounter - 1) / ColorClocksPerScanline

	if t.wsyncPending && offset == 0 {
		t.wsyncPending = false
		if t.rdy != nil {
			t.rdy.Set(true)
		}
	}

	if offset < HBlankWidth {
		return
	}

	if scanline < VerticalSyncScanlines {
		return
	}

	if t.vblank&vblankBit != 0 {
		return
	}

	if t.tv != nil {
		t.tv.Paint(scanline, offset, t.colubk)
	}
}

// Read implements bus.ChipBus for the TIA's register range. Every
// collision/input register this core doesn't model reads back as zero:
// real hardware would return the last value on the data bus, but nothing
// in this core's addressing-mode instruction set depends on that nuance.
func (t *TIA) Read(addr address.LoHi) (uint8, error) {
	return 0, nil
}

// Write implements bus.ChipBus for the TIA's register range.
func (t *TIA) Write(addr address.LoHi, data uint8) error {
	a := addr.Address()

	if PolicingEnabled {
		if err := t.policeWrite(a, data); err != nil {
			return err
		}
	}

	switch a {
	case regVSYNC:
		rising := t.vsync&vsyncBit == 0 && data&vsyncBit != 0
		t.vsync = data & addresses.TIAWriteMasks[regVSYNC].SupportedMask
		if t.tv != nil {
			t.tv.SetVSYNC(t.vsync&vsyncBit != 0)
		}
		if rising {
			t.frameCycleCounter = 0
			if t.tv != nil {
				t.tv.NewFrame()
			}
			logger.Log("tia", "VSYNC")
		}
	case regVBLANK:
		t.vblank = data & addresses.TIAWriteMasks[regVBLANK].SupportedMask
	case regWSYNC:
		t.wsyncPending = true
		if t.rdy != nil {
			t.rdy.Set(false)
		}
	case regCOLUBK:
		t.colubk = data
	default:
		// other registers in spec scope (COLUP0/1, COLUPF, CTRLPF, PF0-2,
		// GRP0, HMP0) are accepted and policed but have no rendering effect
		// in this core's background-only painter.
	}

	return nil
}

func (t *TIA) policeWrite(a uint16, data uint8) error {
	mask, ok := addresses.TIAWriteMasks[a]
	if !ok {
		return nil
	}
	if data&^mask.SupportedMask != 0 {
		return errors.Errorf(errors.UnsupportedRegisterBits, mask.Name, data, mask.SupportedMask)
	}
	return nil
}

// WSYNCPending reports whether the TIA is currently holding RDY low waiting
// for the next scanline boundary. Exposed for debugger/test inspection.
func (t *TIA) WSYNCPending() bool {
	return t.wsyncPending
}

// FrameCycle is the current colour-clock count since the last VSYNC rising
// edge, for debugger inspection.
func (t *TIA) FrameCycle() int {
	return t.frameCycleCounter
}
