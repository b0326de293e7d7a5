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

// Command vcsrun loads a cartridge image and runs it for a fixed number of
// instructions, then dumps the final CPU state and the television's frame
// count. It exists to give
// this core a runnable host without pulling in any GUI dependency.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jsi-vcs/vcs2600/hardware/address"
	"github.com/jsi-vcs/vcs2600/hardware/console"
	"github.com/jsi-vcs/vcs2600/hardware/television"
	"github.com/jsi-vcs/vcs2600/logger"
)

func main() {
	rom := flag.String("rom", "", "path to a cartridge image")
	instructions := flag.Int("instructions", 1000, "number of CPU instructions to execute")
	origin := flag.Uint("origin", 0xf000, "address the cartridge image is loaded at")
	flag.Parse()

	if *rom == "" {
		fmt.Fprintln(os.Stderr, "vcsrun: -rom is required")
		os.Exit(1)
	}

	data, err := os.ReadFile(*rom)
	if err != nil {
		fmt.Fprintln(os.Stderr, "vcsrun:", err)
		os.Exit(1)
	}

	tv := television.NewNTSC()
	vcs := console.New(tv)

	if err := vcs.LoadROM(data, address.New(uint16(*origin))); err != nil {
		fmt.Fprintln(os.Stderr, "vcsrun: load failed:", err)
		os.Exit(1)
	}

	if err := vcs.RunFor(*instructions); err != nil {
		fmt.Fprintln(os.Stderr, "vcsrun: halted:", err)
		logger.Tail(os.Stderr, 20)
		os.Exit(1)
	}

	fmt.Println(vcs.Registers())
	fmt.Printf("frame %d, %s elapsed\n", tv.FrameCount(), vcs.Duration())
}
