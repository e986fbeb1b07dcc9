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

import "fmt"

// Record is the override state for a single cartridge. The zero value is an
// inactive record with no identity.
type Record struct {
	// the identity of the cartridge. in practice this is the game code from
	// the cartridge header but it is otherwise opaque
	Identity string

	// SaveAutoDetect means that the save type should not be overridden
	SaveType SaveType

	Hardware HardwareOverride
}

// Active returns true if the record overrides anything.
func (r Record) Active() bool {
	return r.SaveType != SaveAutoDetect || r.Hardware.IsOverride()
}

func (r Record) String() string {
	id := r.Identity
	if id == "" {
		id = "<no identity>"
	}
	return fmt.Sprintf("%s: save=%s, hardware=%s", id, r.SaveType, r.Hardware)
}

// Derive creates a new Record from the user's selection. The identity of the
// record is not part of the selection and must be supplied.
func Derive(identity string, sel Selection) Record {
	rec := Record{
		Identity: identity,
		SaveType: SaveTypeFromIndex(sel.SaveType),
		Hardware: DoNotOverride,
	}

	if !sel.Autodetect {
		set := HardwareNone
		for k := HardwareKind(0); k < NumHardwareKinds; k++ {
			if sel.Hardware[k] {
				set = set.With(k)
			}
		}
		rec.Hardware = Override(set)
	}

	return rec
}
