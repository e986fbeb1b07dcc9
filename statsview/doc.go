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

// Package statsview offers runtime statistics for the running program over
// HTTP. The server is only available when the program is built with the
// statsview build tag. Without the tag, Available() returns false and
// Launch() returns the NotAvailable error.
//
// Underlying functionality is provided by "github.com/go-echarts/statsview".
// After launch, graphical statistics will be viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12600/debug/pprof/
package statsview

// DefaultAddress is the address used by Launch() when no address is given.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"

// NotAvailable is returned by Launch() when statsview has not been built
// into the program.
const NotAvailable = "statsview: not available in this build"
