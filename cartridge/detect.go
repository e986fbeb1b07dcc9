// This file is part of Gamepak.
//
// Gamepak is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gamepak is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gamepak.  If not, see <https://www.gnu.org/licenses/>.

package cartridge

import (
	"bytes"

	"github.com/jetsetilly/gamepak/gamepak"
)

// signatures embedded in a ROM by the save memory libraries. the order is
// important because some signatures are prefixes of others
var saveSignatures = []struct {
	sig      []byte
	saveType gamepak.SaveType
}{
	{sig: []byte("EEPROM_V"), saveType: gamepak.SaveEEPROM},
	{sig: []byte("FLASH1M_V"), saveType: gamepak.SaveFlash1M},
	{sig: []byte("FLASH512_V"), saveType: gamepak.SaveFlash512},
	{sig: []byte("FLASH_V"), saveType: gamepak.SaveFlash512},
	{sig: []byte("SRAM_F_V"), saveType: gamepak.SaveSRAM},
	{sig: []byte("SRAM_V"), saveType: gamepak.SaveSRAM},
}

// signature of the real-time clock library
var rtcSignature = []byte("SIIRTC_V")

// DetectSaveType scans the data for a save library signature. If none is found
// then SaveNone is returned. DetectSaveType never returns SaveAutoDetect.
func DetectSaveType(data []byte) gamepak.SaveType {
	for _, s := range saveSignatures {
		if bytes.Contains(data, s.sig) {
			return s.saveType
		}
	}
	return gamepak.SaveNone
}

// DetectHardware scans the data for hardware that can be found from the
// program alone. Only the real-time clock can be detected this way.
func DetectHardware(data []byte) gamepak.HardwareSet {
	if bytes.Contains(data, rtcSignature) {
		return gamepak.NewHardwareSet(gamepak.RealTimeClock)
	}
	return gamepak.HardwareNone
}

// Cartridge is the result of examining cartridge data.
type Cartridge struct {
	Header   Header
	SaveType gamepak.SaveType
	Hardware gamepak.HardwareSet
}

// Examine parses the header and detects the save type and hardware of the
// cartridge data.
func Examine(data []byte) (Cartridge, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return Cartridge{}, err
	}

	return Cartridge{
		Header:   h,
		SaveType: DetectSaveType(data),
		Hardware: DetectHardware(data),
	}, nil
}
