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

// Package session is the emulation session as far as cartridge configuration
// is concerned. A Session loads a cartridge, decides which save type and
// hardware the cartridge has and tells its subscribers when it starts and
// stops.
//
// The save type and hardware are decided in layers. Each layer only changes
// the values it overrides:
//
//  1. detection from the cartridge data (see the cartridge package)
//  2. the override found by the Lookup for the cartridge's identity
//  3. the pending override given with SetOverride()
//
// The pending override is kept until it is cleared with ClearOverride() and
// is applied whenever a cartridge is started. It is not tied to a particular
// cartridge.
package session
