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

// Package gamepak reconciles the hardware and save-type overrides for a
// cartridge. A cartridge can have hardware on the cartridge board (a real-time
// clock, a gyroscope, etc.) and a particular type of save memory. An emulation
// session will try to detect these automatically but detection can be wrong,
// so the user can override it.
//
// The Record type is the unit of override state. A Record is "active" if it
// overrides anything at all, either the save type or the hardware. An inactive
// record means that the session should use autodetection.
//
// The Coordinator type owns the current Record and keeps it in step with three
// kinds of event:
//
//	session started: the record is pulled from the session, which is the
//	authority while a cartridge is running. editing controls are locked.
//
//	session stopped: controls are reset to their defaults and unlocked.
//
//	selection changed: the record is derived from the user's selection and
//	pushed to the session (or the override cleared if the record is inactive).
//
// The Coordinator keeps the state of the editing controls in a Controls value.
// A GUI or terminal front end draws the Controls and reports edits back to the
// Coordinator with SelectSaveType(), SetAutodetect() and SetHardware(). None of
// the Coordinator's functions are safe to call concurrently. They are intended
// to be called from the thread that services the front end's event loop.
package gamepak
