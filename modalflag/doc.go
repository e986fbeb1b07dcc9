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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of defining flags globally, flags are added to
// a Modes instance:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	store := md.AddString("store", "", "override store")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
// Modes are added with AddSubModes(). The first mode in the list is the
// default mode and is selected if the first non-flag argument does not match
// any of the modes. For example, the gamepak program uses:
//
//	md.AddSubModes("GUI", "TERM", "LIST", "DELETE", "INFO")
//
// After a successful Parse() the selected mode is returned by Mode(). A new
// set of flags for the selected mode can then be prepared with NewMode()
// followed by another call to Parse(). The sequence of modes selected is
// available with Path().
//
// Mode names are case insensitive and are always returned in upper case.
package modalflag
