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

// HardwareKind is a piece of hardware that might be present on a cartridge
// board.
type HardwareKind int

// List of valid HardwareKind values. The order is the order in which they are
// presented to the user.
const (
	RealTimeClock HardwareKind = iota
	Gyroscope
	LightSensor
	TiltSensor
	Rumble
	NumHardwareKinds
)

func (k HardwareKind) String() string {
	switch k {
	case RealTimeClock:
		return "RTC"
	case Gyroscope:
		return "Gyro"
	case LightSensor:
		return "Light Sensor"
	case TiltSensor:
		return "Tilt"
	case Rumble:
		return "Rumble"
	}
	return "unknown hardware"
}

// Key returns the short name used in configuration files and on the command
// line.
func (k HardwareKind) Key() string {
	switch k {
	case RealTimeClock:
		return "RTC"
	case Gyroscope:
		return "GYRO"
	case LightSensor:
		return "LIGHT"
	case TiltSensor:
		return "TILT"
	case Rumble:
		return "RUMBLE"
	}
	return ""
}

// ParseHardwareKind is the inverse of HardwareKind.Key(). Case insensitive.
func ParseHardwareKind(s string) (HardwareKind, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for k := HardwareKind(0); k < NumHardwareKinds; k++ {
		if s == k.Key() {
			return k, nil
		}
	}
	return 0, curated.Errorf("hardware: unrecognised hardware kind (%s)", s)
}

// the bit values are the same as the GPIO device bits used by the cartridge
// port. it means that a HardwareSet can be written to and read from
// configuration files without any translation
func (k HardwareKind) mask() HardwareSet {
	switch k {
	case RealTimeClock:
		return 0x01
	case Rumble:
		return 0x02
	case LightSensor:
		return 0x04
	case Gyroscope:
		return 0x08
	case TiltSensor:
		return 0x10
	}
	return 0
}

// HardwareSet is a set of HardwareKind values.
type HardwareSet uint16

// HardwareNone is the empty set. Note that overriding the hardware with the
// empty set is not the same as not overriding the hardware. See the
// HardwareOverride type.
const HardwareNone HardwareSet = 0

const allHardware HardwareSet = 0x1f

// NewHardwareSet returns a set containing the specified kinds.
func NewHardwareSet(kinds ...HardwareKind) HardwareSet {
	var s HardwareSet
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// HardwareSetFromBits converts the GPIO bit representation of a set. Unknown
// bits are an error.
func HardwareSetFromBits(bits uint16) (HardwareSet, error) {
	s := HardwareSet(bits)
	if s&^allHardware != 0 {
		return HardwareNone, curated.Errorf("hardware: unrecognised hardware bits (%#04x)", bits)
	}
	return s, nil
}

// Bits returns the GPIO bit representation of the set.
func (s HardwareSet) Bits() uint16 {
	return uint16(s)
}

// Has returns true if the set contains the kind.
func (s HardwareSet) Has(k HardwareKind) bool {
	m := k.mask()
	return m != 0 && s&m == m
}

// With returns a copy of the set with the kind added.
func (s HardwareSet) With(k HardwareKind) HardwareSet {
	return s | k.mask()
}

// Without returns a copy of the set with the kind removed.
func (s HardwareSet) Without(k HardwareKind) HardwareSet {
	return s &^ k.mask()
}

// Kinds returns the members of the set in presentation order.
func (s HardwareSet) Kinds() []HardwareKind {
	var kinds []HardwareKind
	for k := HardwareKind(0); k < NumHardwareKinds; k++ {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (s HardwareSet) String() string {
	kinds := s.Kinds()
	if len(kinds) == 0 {
		return "none"
	}
	n := make([]string, len(kinds))
	for i, k := range kinds {
		n[i] = k.String()
	}
	return strings.Join(n, "+")
}

// HardwareOverride says whether hardware detection should be overridden and,
// if it should, with which set of hardware. The zero value is DoNotOverride.
type HardwareOverride struct {
	set      HardwareSet
	override bool
}

// DoNotOverride indicates that hardware should be detected automatically.
var DoNotOverride = HardwareOverride{}

// Override indicates that the hardware should be exactly the specified set,
// which may be empty.
func Override(set HardwareSet) HardwareOverride {
	return HardwareOverride{
		set:      set,
		override: true,
	}
}

// IsOverride returns false if the value is DoNotOverride.
func (h HardwareOverride) IsOverride() bool {
	return h.override
}

// Set returns the hardware set and true if the value is an override. If the
// value is DoNotOverride then the empty set and false are returned.
func (h HardwareOverride) Set() (HardwareSet, bool) {
	return h.set, h.override
}

func (h HardwareOverride) String() string {
	if !h.override {
		return "autodetect"
	}
	return h.set.String()
}
