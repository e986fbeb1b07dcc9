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
	"io"
	"strings"

	"github.com/jetsetilly/gamepak/curated"
	"github.com/jetsetilly/gamepak/gamepak"
)

// Sentinal error patterns.
const (
	NotFound        = "overrides: no override for %s"
	InvalidIdentity = "overrides: invalid identity (%q)"
)

// Lookup is implemented by types that can find an override for a cartridge
// identity. If there is no override a NotFound error is returned.
type Lookup interface {
	LoadOverride(identity string) (gamepak.Record, error)
}

// Store is implemented by types that can persist override records.
type Store interface {
	Lookup

	// SaveOverride replaces any existing record for the same identity
	SaveOverride(rec gamepak.Record) error

	// DeleteOverride returns a NotFound error if there is no record for the
	// identity
	DeleteOverride(identity string) error

	// List writes a human readable list of all records
	List(output io.Writer) error

	// Records returns all stored records ordered by identity
	Records() ([]gamepak.Record, error)

	Close() error
}

// ValidIdentity returns an error if the identity can not be stored. An
// identity must not be empty and must not contain commas or control
// characters.
func ValidIdentity(identity string) error {
	if identity == "" {
		return curated.Errorf(InvalidIdentity, identity)
	}
	if strings.ContainsAny(identity, ",") {
		return curated.Errorf(InvalidIdentity, identity)
	}
	for _, r := range identity {
		if r < 0x20 || r == 0x7f {
			return curated.Errorf(InvalidIdentity, identity)
		}
	}
	return nil
}
