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

// Package config collates the preferences of the gamepak application.
//
// Values come from three places. In order of increasing priority:
//
//  1. the preferences file on disk
//  2. environment variables prefixed with GAMEPAK_
//  3. the command line prefs stack (the -prefs flag)
//
// The environment variables are:
//
//	GAMEPAK_STORE           the override store: file, sqlite or none
//	GAMEPAK_DB              path to the override database
//	GAMEPAK_CLEAR_IDENTITY  forget the cartridge identity when a session stops
//	GAMEPAK_ECHO_LOG        echo log entries to the terminal
//
// Values from the environment are never written back to disk unless Save() is
// called explicitly.
package config
