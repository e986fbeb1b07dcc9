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

package gamepak

import (
	"strings"

	"github.com/jetsetilly/gamepak/curated"
)

// SaveType is the type of memory used by a cartridge to store save data.
type SaveType int

// List of valid SaveType values. The ordinal value of each SaveType is the
// same as its index in the list of choices presented to the user, with
// SaveAutoDetect at index zero.
const (
	SaveAutoDetect SaveType = iota
	SaveNone
	SaveSRAM
	SaveFlash512
	SaveFlash1M
	SaveEEPROM
	NumSaveTypes
)

// SaveTypeFromIndex converts an index in the list of choices presented to the
// user into a SaveType. Out of range values are treated as SaveAutoDetect.
func SaveTypeFromIndex(idx int) SaveType {
	if idx < 0 || idx >= int(NumSaveTypes) {
		return SaveAutoDetect
	}
	return SaveType(idx)
}

// Index returns the position of the SaveType in the list of choices presented
// to the user.
func (st SaveType) Index() int {
	return int(st)
}

func (st SaveType) String() string {
	switch st {
	case SaveAutoDetect:
		return "Autodetect"
	case SaveNone:
		return "None"
	case SaveSRAM:
		return "SRAM"
	case SaveFlash512:
		return "Flash 512kb"
	case SaveFlash1M:
		return "Flash 1Mb"
	case SaveEEPROM:
		return "EEPROM"
	}
	return "unknown save type"
}

// Key returns the name used in configuration files and on the command line.
func (st SaveType) Key() string {
	switch st {
	case SaveAutoDetect:
		return "AUTO"
	case SaveNone:
		return "NONE"
	case SaveSRAM:
		return "SRAM"
	case SaveFlash512:
		return "FLASH512"
	case SaveFlash1M:
		return "FLASH1M"
	case SaveEEPROM:
		return "EEPROM"
	}
	return ""
}

// Size returns the number of bytes of save data for the type. Zero for
// SaveAutoDetect and SaveNone. EEPROM size is the larger of the two possible
// sizes.
func (st SaveType) Size() int {
	switch st {
	case SaveSRAM:
		return 0x8000
	case SaveFlash512:
		return 0x10000
	case SaveFlash1M:
		return 0x20000
	case SaveEEPROM:
		return 0x2000
	}
	return 0
}

// ParseSaveType accepts either the Key() or the String() of a SaveType. Case
// insensitive.
func ParseSaveType(s string) (SaveType, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for st := SaveType(0); st < NumSaveTypes; st++ {
		if s == st.Key() || s == strings.ToUpper(st.String()) {
			return st, nil
		}
	}
	return SaveAutoDetect, curated.Errorf("save type: unrecognised save type (%s)", s)
}

// SaveTypeNames returns the String() of every SaveType, in index order. Useful
// for presenting the list of choices.
func SaveTypeNames() []string {
	n := make([]string, NumSaveTypes)
	for st := SaveType(0); st < NumSaveTypes; st++ {
		n[st] = st.String()
	}
	return n
}
