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

package gamepak

// Selection is the user's current choice of override, as read from the
// editing controls.
type Selection struct {
	// index into the list of save types. zero is SaveAutoDetect
	SaveType int

	// if Autodetect is true then the Hardware field is ignored
	Autodetect bool
	Hardware   [NumHardwareKinds]bool
}

// Toggle is the state of a single checkbox style control.
type Toggle struct {
	Checked bool
	Enabled bool
}

// Controls is the presentation state of the editing controls. Front ends draw
// the controls as described and should not allow disabled controls to be
// changed.
type Controls struct {
	SaveType        int
	SaveTypeEnabled bool

	Autodetect Toggle
	Hardware   [NumHardwareKinds]Toggle

	// whether the save action is available
	SaveEnabled bool
}

// defaultControls is the state of the controls when there is no session. The
// autodetect toggle starts checked.
func defaultControls() Controls {
	c := Controls{
		SaveType:        SaveAutoDetect.Index(),
		SaveTypeEnabled: true,
		Autodetect:      Toggle{Checked: true, Enabled: true},
	}
	c.gateHardware()
	return c
}

// Selection returns the user's selection as indicated by the controls.
func (c Controls) Selection() Selection {
	sel := Selection{
		SaveType:   c.SaveType,
		Autodetect: c.Autodetect.Checked,
	}
	for k := range c.Hardware {
		sel.Hardware[k] = c.Hardware[k].Checked
	}
	return sel
}

// hardware toggles are only enabled when the autodetect toggle is unchecked
func (c *Controls) gateHardware() {
	for k := range c.Hardware {
		c.Hardware[k].Enabled = !c.Autodetect.Checked
	}
}
