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

package overrides

import (
	"fmt"
	"strconv"

	"github.com/jetsetilly/gamepak/curated"
	"github.com/jetsetilly/gamepak/gamepak"
)

// HardwareDoNotOverride is the value of the encoded hardware when it is not
// overridden.
const HardwareDoNotOverride = 0x8000

// EncodeHardware returns the stored representation of the hardware override.
func EncodeHardware(hw gamepak.HardwareOverride) uint16 {
	set, ok := hw.Set()
	if !ok {
		return HardwareDoNotOverride
	}
	return set.Bits()
}

// DecodeHardware is the inverse of EncodeHardware.
func DecodeHardware(v uint16) (gamepak.HardwareOverride, error) {
	if v == HardwareDoNotOverride {
		return gamepak.DoNotOverride, nil
	}
	set, err := gamepak.HardwareSetFromBits(v)
	if err != nil {
		return gamepak.DoNotOverride, curated.Errorf("overrides: %v", err)
	}
	return gamepak.Override(set), nil
}

// the hardware field is written as a hex string in the flat file database
func formatHardware(hw gamepak.HardwareOverride) string {
	return fmt.Sprintf("%#04x", EncodeHardware(hw))
}

func parseHardware(s string) (gamepak.HardwareOverride, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return gamepak.DoNotOverride, curated.Errorf("overrides: invalid hardware field (%s)", s)
	}
	return DecodeHardware(uint16(v))
}

// EncodeSaveType returns the stored representation of the save type.
func EncodeSaveType(st gamepak.SaveType) string {
	return st.Key()
}

// DecodeSaveType is the inverse of EncodeSaveType.
func DecodeSaveType(s string) (gamepak.SaveType, error) {
	st, err := gamepak.ParseSaveType(s)
	if err != nil {
		return gamepak.SaveAutoDetect, curated.Errorf("overrides: %v", err)
	}
	return st, nil
}
