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

// Package logger is the central logging package for the application. There
// is only one central log and it is accessed with the package level functions
// Log() and Logf(). Every entry is made up of a tag and a detail string:
//
//	logger.Logf(logger.Allow, "session", "detected save type %s", st)
//
// Consecutive identical entries are collapsed into one entry with a repeat
// count. The log is capped in size and the oldest entries are dropped first.
//
// Entries can be echoed to an io.Writer as they are made with SetEcho(). The
// Colorizer type can be used to wrap the writer so that tags are highlighted
// in terminals that support colour.
//
// Calls to Log() and Logf() require a Permission argument. The Allow value is
// the usual choice but it is sometimes useful for a type to decide whether it
// is in a state where logging is appropriate.
package logger
