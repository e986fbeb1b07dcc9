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

// Package cartridge reads the information in a cartridge ROM that is needed
// to configure a session: the cartridge header, the type of save memory and
// any additional hardware on the cartridge board.
//
// Save memory and the real-time clock are detected by scanning the ROM for the
// identification strings that the standard libraries for those devices embed
// in the program. Other hardware cannot be detected this way and is found with
// the help of a table of known cartridges (see the overrides package).
package cartridge
