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

import (
	"github.com/jetsetilly/gamepak/logger"
	"github.com/jetsetilly/gamepak/notifications"
)

// Session is the part of an emulation session that the Coordinator needs.
// While IsLoaded() returns false the other query functions are meaningless.
type Session interface {
	IsLoaded() bool
	Identity() string
	SaveType() SaveType
	HardwareEnabled() HardwareSet

	// SetOverride and ClearOverride do not return errors. any problem applying
	// the override is the session's to report
	SetOverride(Record)
	ClearOverride()
}

// Store persists a Record, keyed by the record's identity.
type Store interface {
	SaveOverride(Record) error
}

// Option is used to configure a Coordinator when it is created.
type Option func(*Coordinator)

// ClearIdentityOnStop sets whether the identity of the record is forgotten
// when the session stops. The default is to keep the identity until the next
// session starts.
func ClearIdentityOnStop(clear bool) Option {
	return func(c *Coordinator) {
		c.clearIdentityOnStop = clear
	}
}

// Coordinator owns the current override Record and the state of the editing
// controls.
//
// The session and the store are borrowed. The Coordinator never outlives
// either of them and never closes them. Either can be nil. Without a store the
// save action is a no-op. Without a session, edits are derived but go nowhere.
type Coordinator struct {
	session Session
	store   Store

	record   Record
	controls Controls

	// true between OnSessionStarted() and OnSessionStopped(). while true the
	// session is the authority for the record
	running bool

	clearIdentityOnStop bool
}

// NewCoordinator is the preferred method of initialisation for the Coordinator
// type. If the session already has a cartridge loaded then the Coordinator
// starts in the running state.
func NewCoordinator(session Session, store Store, opts ...Option) *Coordinator {
	c := &Coordinator{
		session:  session,
		store:    store,
		controls: defaultControls(),
	}

	for _, o := range opts {
		o(c)
	}

	if session != nil && session.IsLoaded() {
		c.OnSessionStarted(session)
	}

	return c
}

// Record returns a copy of the current override record.
func (c *Coordinator) Record() Record {
	return c.record
}

// Controls returns a copy of the current state of the editing controls.
func (c *Coordinator) Controls() Controls {
	return c.controls
}

// Running returns true if a session is active.
func (c *Coordinator) Running() bool {
	return c.running
}

// Notify implements the notifications.Notify interface. It allows the
// Coordinator to be registered directly with a session that sends
// notifications.
func (c *Coordinator) Notify(notice notifications.Notice) error {
	switch notice {
	case notifications.NotifySessionStarted:
		c.OnSessionStarted(c.session)
	case notifications.NotifySessionStopped:
		c.OnSessionStopped()
	}
	return nil
}

// OnSessionStarted pulls the override record from the session and locks the
// editing controls. If the session has no cartridge loaded then it is treated
// the same as the session stopping.
func (c *Coordinator) OnSessionStarted(session Session) {
	if session == nil || !session.IsLoaded() {
		c.OnSessionStopped()
		return
	}

	c.session = session
	c.running = true

	hw := session.HardwareEnabled()
	c.record = Record{
		Identity: session.Identity(),
		SaveType: session.SaveType(),
		Hardware: Override(hw),
	}

	c.controls.SaveType = c.record.SaveType.Index()
	c.controls.SaveTypeEnabled = false
	c.controls.Autodetect.Enabled = false
	for k := HardwareKind(0); k < NumHardwareKinds; k++ {
		c.controls.Hardware[k] = Toggle{Checked: hw.Has(k), Enabled: false}
	}
	c.controls.SaveEnabled = c.store != nil

	logger.Logf(logger.Allow, "gamepak", "session started: %s", c.record)
}

// OnSessionStopped resets the editing controls to their defaults and unlocks
// them. The record is derived again from the reset controls but it is not
// pushed to the session. If the autodetect control was unchecked the derived
// record overrides the hardware with an empty set and so is active.
func (c *Coordinator) OnSessionStopped() {
	c.running = false

	c.controls.SaveType = SaveAutoDetect.Index()
	c.controls.SaveTypeEnabled = true
	c.controls.Autodetect.Enabled = true
	for k := range c.controls.Hardware {
		c.controls.Hardware[k].Checked = false
	}
	c.controls.gateHardware()
	c.controls.SaveEnabled = false

	id := c.record.Identity
	if c.clearIdentityOnStop {
		id = ""
	}
	c.record = Derive(id, c.controls.Selection())
}

// OnSelectionChanged derives a new record from the selection and pushes it to
// the session. If the new record is inactive the session's override is
// cleared instead.
func (c *Coordinator) OnSelectionChanged(sel Selection) {
	c.record = Derive(c.record.Identity, sel)

	if c.session == nil {
		return
	}

	if c.record.Active() {
		c.session.SetOverride(c.record)
	} else {
		c.session.ClearOverride()
	}
}

// SaveOverride persists the current record. Does nothing if there is no
// store. Errors from the store are logged and not returned.
func (c *Coordinator) SaveOverride() {
	if c.store == nil {
		return
	}
	if err := c.store.SaveOverride(c.record); err != nil {
		logger.Logf(logger.Allow, "gamepak", "save override: %v", err)
		return
	}
	logger.Logf(logger.Allow, "gamepak", "saved override: %s", c.record)
}

// SelectSaveType is called by a front end when the user chooses a save type.
// Returns false if the control is disabled.
func (c *Coordinator) SelectSaveType(idx int) bool {
	if !c.controls.SaveTypeEnabled {
		return false
	}
	c.controls.SaveType = SaveTypeFromIndex(idx).Index()
	c.OnSelectionChanged(c.controls.Selection())
	return true
}

// SetAutodetect is called by a front end when the user toggles hardware
// autodetection. Returns false if the control is disabled.
func (c *Coordinator) SetAutodetect(on bool) bool {
	if !c.controls.Autodetect.Enabled {
		return false
	}
	c.controls.Autodetect.Checked = on
	c.controls.gateHardware()
	c.OnSelectionChanged(c.controls.Selection())
	return true
}

// SetHardware is called by a front end when the user toggles one of the
// hardware controls. Returns false if the control is disabled.
func (c *Coordinator) SetHardware(k HardwareKind, on bool) bool {
	if k < 0 || k >= NumHardwareKinds || !c.controls.Hardware[k].Enabled {
		return false
	}
	c.controls.Hardware[k].Checked = on
	c.OnSelectionChanged(c.controls.Selection())
	return true
}
