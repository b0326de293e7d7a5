// Package bus defines the memory bus concept. For an explanation see the
// memory package documentation.
//
// Addresses crossing any interface in this package are address.LoHi values,
// never raw uint16s, so that every collaborator shares the same wrapping
// arithmetic the 6507's own address latches perform.
package bus

import "github.com/jsi-vcs/vcs2600/hardware/address"

// CPUBus defines the operations for the memory system when accessed from the
// CPU. All memory areas implement this interface because they are all
// accessible from the CPU (compare to ChipBus). The VCS memory type also
// implements this interface and maps the read/write address to the correct
// memory area -- meaning that CPU access need not care which part of memory
// it is writing to.
type CPUBus interface {
	Read(addr address.LoHi) (uint8, error)
	Write(addr address.LoHi, data uint8) error
}

// ChipBus defines the operations the bus dispatches to directly, at the
// moment of a CPU read or write, for the chips that live in the low
// addresses: the TIA and the RIOT. Dispatch is synchronous rather than
// poll-based (a chip discovering a pending write on its own next step) --
// a chip's register file is
// updated the instant the CPU's write retires, which is what lets WSYNC's
// RDY assertion take effect before the CPU's own next tick.
type ChipBus interface {
	Read(addr address.LoHi) (uint8, error)
	Write(addr address.LoHi, data uint8) error
}

// DebuggerBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine: a peek never triggers chip side effects, a poke
// bypasses register-write policing.
type DebuggerBus interface {
	Peek(addr address.LoHi) (uint8, error)
	Poke(addr address.LoHi, value uint8) error
}
