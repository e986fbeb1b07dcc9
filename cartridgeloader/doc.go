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

// Package cartridgeloader is used to specify the ROM data that is to be
// inserted into the emulated cartridge port.
//
// When the cartridge is ready to be loaded, the Load() function should be
// used. Data can be loaded from local files or over HTTP(S).
//
// It is preferred that the NewLoader() function is used to create a Loader.
// NewLoader() checks the filename extension and notes whether the file is a
// multiboot image.
//
//	cl, err := cartridgeloader.NewLoader("roms/game.gba")
//	if err != nil {
//		return err
//	}
//	err = cl.Load()
package cartridgeloader
