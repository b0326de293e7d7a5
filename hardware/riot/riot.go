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

// Package riot implements the timer and switch-port portion of the 6532
// PIA/RIOT chip: a programmable interval timer with a four-way prescaler,
// and the fixed-pattern console switch reads. The chip's 128 bytes of RAM
// are not modelled here -- they live in the bus's own RAM array, at
// addresses 0x80-0xFF, the same as spec.md describes.
package riot

import (
	"github.com/jsi-vcs/vcs2600/errors"
	"github.com/jsi-vcs/vcs2600/hardware/address"
	"github.com/jsi-vcs/vcs2600/hardware/memory/addresses"
	"github.com/jsi-vcs/vcs2600/logger"
)

// Register offsets within the RIOT's own normalised address range
// (0x280-0x29F).
const (
	regSWCHA  = 0x280
	regSWACNT = 0x281
	regSWCHB  = 0x282
	regSWBCNT = 0x283
	regINTIM  = 0x284
	regTIMINT = 0x285
	regTIM1T  = 0x294
	regTIM8T  = 0x295
	regTIM64T = 0x296
	regTIM1024T = 0x297
)

// swchbColorSwitchSet is the fixed bit pattern SWCHB reads as: bit 3 set,
// meaning "color" (as opposed to black-and-white), and the difficulty
// switches left at their default ("amateur") position. spec.md only
// requires bit 3; the rest of the byte is zero.
const swchbColorSwitchSet = 0b0000_1000

// PolicingEnabled gates the debug-build-only register-write trap. Tests
// that exercise deliberately-illegal writes can disable it; it defaults on.
var PolicingEnabled = true

// RIOT is the timer/switch portion of the 6532.
type RIOT struct {
	// remaining is the countdown in raw ticks (count * prescaler factor);
	// factor is the currently selected prescaler; count is the visible
	// INTIM register.
	remaining int
	factor    int
	count     uint8
}

// New builds a RIOT with its timer idle (INTIM reads zero until a timer
// register is written).
func New() *RIOT {
	return &RIOT{factor: 1}
}

// Tick advances the timer by one machine cycle. Matches the reference
// implementation's one_tick: the countdown decrements once per tick and
// INTIM is recomputed as ceil(remaining/factor), so INTIM only reaches zero
// on the same tick the countdown itself reaches zero.
func (r *RIOT) Tick() {
	if r.remaining == 0 {
		return
	}
	r.remaining--
	r.count = uint8(ceilDiv(r.remaining, r.factor))
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Read implements bus.ChipBus for the RIOT's register range.
func (r *RIOT) Read(addr address.LoHi) (uint8, error) {
	switch addr.Address() {
	case regINTIM:
		return r.count, nil
	case regSWCHB:
		return swchbColorSwitchSet, nil
	case regSWCHA, regTIMINT:
		// Documented but not modelled by this core; reads return a defined,
		// inert zero rather than an address error.
		return 0, nil
	default:
		return 0, nil
	}
}

// Write implements bus.ChipBus for the RIOT's register range.
func (r *RIOT) Write(addr address.LoHi, data uint8) error {
	a := addr.Address()

	if PolicingEnabled {
		if err := r.policeWrite(a, data); err != nil {
			return err
		}
	}

	var factor int
	switch a {
	case regTIM1T:
		factor = 1
	case regTIM8T:
		factor = 8
	case regTIM64T:
		factor = 64
	case regTIM1024T:
		factor = 1024
	default:
		return nil
	}

	r.count = data
	r.factor = factor
	r.remaining = int(data) * factor
	logger.Logf("riot", "timer set to %d (factor %d)", data, factor)
	return nil
}

func (r *RIOT) policeWrite(a uint16, data uint8) error {
	mask, ok := addresses.RIOTWriteMasks[a]
	if !ok {
		return nil
	}
	if data&^mask.SupportedMask != 0 {
		return errors.Errorf(errors.UnsupportedRegisterBits, mask.Name, data, mask.SupportedMask)
	}
	return nil
}
