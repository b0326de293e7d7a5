// Package addresses countains all information about VCS addresses, including
// canonical symbols for read and write addresses.
//
// In addition to the canonical maps, there are two sparse arrays Read and
// Write, created from the canonical maps at run time. These arrays are used by
// the emulator for speed purposes - accessing a map although very convnient,
// is noticeably slower than accessing a sparse array. There is probably no
// need to use this arrays outside of the emulation code.
//
// "TIA Registers" and "RIOT Registers" are so named because to those areas,
// those addresses look like registers. They probably don't need referring to
// outside the emulation code.
//
// WriteMask pairs each writable register with the bits a write may legally
// set; the TIA and RIOT packages use it to police register writes the same
// way the reference hardware's own documentation does.
package addresses
