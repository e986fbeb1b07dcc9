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

package notifications

// Notice describes events that change the state of an emulation session.
type Notice string

// List of defined notifications.
const (
	// a cartridge has been loaded and the session is running. the
	// recipient should query the session for the cartridge's identity,
	// save type and hardware
	NotifySessionStarted Notice = "NotifySessionStarted"

	// the session has ended. there is no longer a cartridge loaded
	NotifySessionStopped Notice = "NotifySessionStopped"

	// an override, either from the user, the override store or the
	// built-in table, was used when starting the session
	NotifyOverrideApplied Notice = "NotifyOverrideApplied"
)

// Notify is implemented by anything that wants to be told about session
// events. Notify() is called synchronously on the thread that caused the
// event and should not block.
type Notify interface {
	Notify(notice Notice) error
}
