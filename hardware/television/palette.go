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

package television

// NTSCPalette is the 128-entry RGBA colour table for the NTSC (hue, luma)
// pairs a TIA color byte selects. Only even color bytes are meaningful
// (bit 0 is hardware-ignored), so index i here corresponds to color byte
// 2*i. Values reproduced from the reference implementation's own NTSC
// configuration table.
//
// Source: https://www.randomterrain.com/atari-2600-memories-tia-color-charts.html
var NTSCPalette = [128]uint32{
	0x000000FF, 0x1A1A1AFF, 0x393939FF, 0x5B5B5BFF,
	0x7E7E7EFF, 0xA2A2A2FF, 0xC7C7C7FF, 0xEDEDEDFF,
	0x190200FF, 0x3A1F00FF, 0x5D4100FF, 0x826400FF,
	0xA78800FF, 0xCCAD00FF, 0xF2D219FF, 0xFEFA40FF,
	0x370000FF, 0x5E0800FF, 0x832700FF, 0xA94900FF,
	0xCF6C00FF, 0xF58F17FF, 0xFEB438FF, 0xFEDF6FFF,
	0x470000FF, 0x730000FF, 0x981300FF, 0xBE3216FF,
	0xE45335FF, 0xFE7657FF, 0xFE9C81FF, 0xFEC6BBFF,
	0x440008FF, 0x6F001FFF, 0x960640FF, 0xBB2462FF,
	0xE14585FF, 0xFE67AAFF, 0xFE8CD6FF, 0xFEB7F6FF,
	0x2D004AFF, 0x570067FF, 0x7D058CFF, 0xA122B1FF,
	0xC743D7FF, 0xED65FEFF, 0xFE8AF6FF, 0xFEB5F7FF,
	0x0D0082FF, 0x3300A2FF, 0x550FC9FF, 0x782DF0FF,
	0x9C4EFEFF, 0xC372FEFF, 0xEB98FEFF, 0xFEC0F9FF,
	0x000091FF, 0x0A05BDFF, 0x2822E4FF, 0x4842FEFF,
	0x6B64FEFF, 0x908AFEFF, 0xB7B0FEFF, 0xDFD8FEFF,
	0x000072FF, 0x001CABFF, 0x033CD6FF, 0x205EFDFF,
	0x4081FEFF, 0x64A6FEFF, 0x89CEFEFF, 0xB0F6FEFF,
	0x00103AFF, 0x00316EFF, 0x0055A2FF, 0x0579C8FF,
	0x239DEEFF, 0x44C2FEFF, 0x68E9FEFF, 0x8FFEFEFF,
	0x001F02FF, 0x004326FF, 0x006957FF, 0x008D7AFF,
	0x1BB19EFF, 0x3BD7C3FF, 0x5DFEE9FF, 0x86FEFEFF,
	0x002403FF, 0x004A05FF, 0x00700CFF, 0x09952BFF,
	0x28BA4CFF, 0x49E06EFF, 0x6CFE92FF, 0x97FEB5FF,
	0x002102FF, 0x004604FF, 0x086B00FF, 0x289000FF,
	0x49B509FF, 0x6BDB28FF, 0x8FFE49FF, 0xBBFE69FF,
	0x001501FF, 0x103600FF, 0x305900FF, 0x537E00FF,
	0x76A300FF, 0x9AC800FF, 0xBFEE1EFF, 0xE8FE3EFF,
	0x1A0200FF, 0x3B1F00FF, 0x5E4100FF, 0x836400FF,
	0xA88800FF, 0xCEAD00FF, 0xF4D218FF, 0xFEFA40FF,
	0x380000FF, 0x5F0800FF, 0x842700FF, 0xAA4900FF,
	0xD06B00FF, 0xF68F18FF, 0xFEB439FF, 0xFEDF70FF,
}
