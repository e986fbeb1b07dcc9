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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages that want callers
// to be able to react to a specific condition export the pattern as a
// constant:
//
//	const NotFound = "overrides: no entry for %s"
//
//	if curated.Is(err, overrides.NotFound) {
//		// carry on with autodetection
//	}
//
// The Has() function is similar to Is() but checks the entire chain of
// curated errors, not just the outermost one.
//
// The Error() implementation normalises the message so that adjacent
// duplicate parts of the chain are removed. Chains are thought of as parts
// separated by the sub-string ": ". So a database error wrapped twice:
//
//	curated.Errorf("database: %v", curated.Errorf("database: file locked"))
//
// prints as "database: file locked" and not "database: database: file locked".
//
// Curated errors implement Unwrap() so that standard library errors (eg.
// os.ErrNotExist) in the values list can still be found with errors.Is().
package curated
