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

// Package prefs facilitates the storage of preferential values in the
// gamepak system. It is intended to be used by any other package that needs
// values to persist between invocations of the program.
//
// Values are represented by the Bool, String and Int types. Each type can be
// given a hook function which is called just before and just after the value
// changes.
//
// A preferences Disk is used to save and load values to and from a file. Many
// Disk instances can share the same file. Entries belonging to other Disks
// are preserved when the file is saved. The file is a simple text file with
// one entry per line:
//
//	key :: value
//
// Keys are conventionally namespaced with a dot. For example:
//
//	gamepak.store :: sqlite
//
// The command line stack allows preferences to be specified on the command
// line. Values in the top group of the stack take priority over values on
// disk when a Disk is loaded. See PushCommandLineStack().
package prefs
