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

// Package overrides stores and finds override records for cartridges.
//
// The FileStore type keeps overrides in a flat file database (see the database
// package). The sqlite sub-package provides a store with the same contract on
// an SQLite database. Both satisfy the Store interface.
//
// The package also contains a table of built-in overrides for cartridges that
// are known to have hardware that can not be detected automatically. The
// Layered type combines a Store with the built-in table. A stored override
// always takes priority over a built-in override.
//
// In persistent storage the save type is recorded by name (see
// gamepak.SaveType.Key()) and the hardware as a bit mask of the GPIO device
// bits. The special value 0x8000 in the hardware field means that the hardware
// is not overridden.
package overrides
