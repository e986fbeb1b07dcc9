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
	"github.com/jetsetilly/gamepak/curated"
	"github.com/jetsetilly/gamepak/gamepak"
	"github.com/jetsetilly/gamepak/logger"
)

// Layered looks for an override in a series of Lookups. Records are merged
// field by field, with earlier Lookups taking precedence over later ones.
type Layered struct {
	layers []Lookup
}

// NewLayered is the preferred method of initialisation for the Layered type.
// The stored argument is laid over the built-in table. It can be nil,
// in which case only the built-in table is used.
func NewLayered(stored Lookup) *Layered {
	l := &Layered{}
	if stored != nil {
		l.layers = append(l.layers, stored)
	}
	l.layers = append(l.layers, builtinLookup{})
	return l
}

// LoadOverride implements the Lookup interface. The last layer is applied
// first and each earlier layer is laid over it. A layer only replaces the
// save type if it names one and only replaces the hardware if it overrides
// it. Errors other than NotFound from a layer are logged and the layer is
// skipped.
func (l *Layered) LoadOverride(identity string) (gamepak.Record, error) {
	merged := gamepak.Record{Identity: identity}
	found := false

	for i := len(l.layers) - 1; i >= 0; i-- {
		rec, err := l.layers[i].LoadOverride(identity)
		if err != nil {
			if !curated.Is(err, NotFound) {
				logger.Logf(logger.Allow, "overrides", "lookup %s: %v", identity, err)
			}
			continue
		}
		found = true

		if rec.SaveType != gamepak.SaveAutoDetect {
			merged.SaveType = rec.SaveType
		}
		if rec.Hardware.IsOverride() {
			merged.Hardware = rec.Hardware
		}
	}

	if !found {
		return gamepak.Record{}, curated.Errorf(NotFound, identity)
	}
	return merged, nil
}
