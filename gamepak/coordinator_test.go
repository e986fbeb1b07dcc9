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

package gamepak_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gamepak/gamepak"
	"github.com/jetsetilly/gamepak/logger"
	"github.com/jetsetilly/gamepak/notifications"
	"github.com/jetsetilly/gamepak/test"
)

type call int

const (
	callNone call = iota
	callSet
	callClear
)

// mockSession records the most recent override call made on it
type mockSession struct {
	loaded   bool
	identity string
	saveType gamepak.SaveType
	hardware gamepak.HardwareSet

	last     call
	override gamepak.Record
	calls    int
}

func (s *mockSession) IsLoaded() bool                       { return s.loaded }
func (s *mockSession) Identity() string                     { return s.identity }
func (s *mockSession) SaveType() gamepak.SaveType           { return s.saveType }
func (s *mockSession) HardwareEnabled() gamepak.HardwareSet { return s.hardware }

func (s *mockSession) SetOverride(r gamepak.Record) {
	s.last = callSet
	s.override = r
	s.calls++
}

func (s *mockSession) ClearOverride() {
	s.last = callClear
	s.override = gamepak.Record{}
	s.calls++
}

type mockStore struct {
	saved []gamepak.Record
	err   error
}

func (s *mockStore) SaveOverride(r gamepak.Record) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, r)
	return nil
}

func selectionFor(st gamepak.SaveType, set gamepak.HardwareSet) gamepak.Selection {
	sel := gamepak.Selection{SaveType: st.Index()}
	for k := gamepak.HardwareKind(0); k < gamepak.NumHardwareKinds; k++ {
		sel.Hardware[k] = set.Has(k)
	}
	return sel
}

func TestInitialState(t *testing.T) {
	c := gamepak.NewCoordinator(&mockSession{}, &mockStore{})
	test.ExpectFailure(t, c.Running())
	test.ExpectEquality(t, c.Record(), gamepak.Record{})
	test.ExpectFailure(t, c.Record().Active())

	ctl := c.Controls()
	test.ExpectEquality(t, ctl.SaveType, 0)
	test.ExpectSuccess(t, ctl.SaveTypeEnabled)
	test.ExpectEquality(t, ctl.Autodetect, gamepak.Toggle{Checked: true, Enabled: true})
	for k := range ctl.Hardware {
		test.ExpectEquality(t, ctl.Hardware[k], gamepak.Toggle{})
	}
	test.ExpectFailure(t, ctl.SaveEnabled)
}

func TestConstructWithLoadedSession(t *testing.T) {
	s := &mockSession{
		loaded:   true,
		identity: "AXVE",
		saveType: gamepak.SaveFlash1M,
		hardware: gamepak.NewHardwareSet(gamepak.RealTimeClock),
	}
	c := gamepak.NewCoordinator(s, nil)
	test.ExpectSuccess(t, c.Running())
	test.ExpectEquality(t, c.Record(), gamepak.Record{
		Identity: "AXVE",
		SaveType: gamepak.SaveFlash1M,
		Hardware: gamepak.Override(gamepak.NewHardwareSet(gamepak.RealTimeClock)),
	})

	// no store means no save action
	test.ExpectFailure(t, c.Controls().SaveEnabled)

	// pulling from the session is not a push to the session
	test.ExpectEquality(t, s.calls, 0)
}

func TestSubsetDerivation(t *testing.T) {
	for bits := uint16(0); bits <= 0x1f; bits++ {
		set, err := gamepak.HardwareSetFromBits(bits)
		test.DemandSuccess(t, err)

		s := &mockSession{}
		c := gamepak.NewCoordinator(s, nil)
		c.OnSelectionChanged(selectionFor(gamepak.SaveAutoDetect, set))

		h, ok := c.Record().Hardware.Set()
		test.ExpectSuccess(t, ok, set)
		test.ExpectEquality(t, h, set)

		// autodetect is off so even the empty set is an active override
		test.ExpectSuccess(t, c.Record().Active(), set)
		test.ExpectEquality(t, s.last, callSet, set)
	}
}

func TestSessionStartedPull(t *testing.T) {
	for st := gamepak.SaveNone; st < gamepak.NumSaveTypes; st++ {
		for bits := uint16(0); bits <= 0x1f; bits++ {
			set, _ := gamepak.HardwareSetFromBits(bits)
			s := &mockSession{
				loaded:   true,
				identity: "BPEE",
				saveType: st,
				hardware: set,
			}

			c := gamepak.NewCoordinator(s, &mockStore{})
			c.OnSessionStarted(s)
			test.ExpectEquality(t, c.Record(), gamepak.Record{
				Identity: "BPEE",
				SaveType: st,
				Hardware: gamepak.Override(set),
			})

			ctl := c.Controls()
			test.ExpectEquality(t, ctl.SaveType, st.Index())
			test.ExpectFailure(t, ctl.SaveTypeEnabled)
			test.ExpectFailure(t, ctl.Autodetect.Enabled)
			for k := gamepak.HardwareKind(0); k < gamepak.NumHardwareKinds; k++ {
				test.ExpectEquality(t, ctl.Hardware[k], gamepak.Toggle{Checked: set.Has(k)})
			}
			test.ExpectSuccess(t, ctl.SaveEnabled)
		}
	}
}

func TestIdempotence(t *testing.T) {
	s := &mockSession{}
	c := gamepak.NewCoordinator(s, nil)

	sel := selectionFor(gamepak.SaveEEPROM, gamepak.NewHardwareSet(gamepak.Gyroscope, gamepak.Rumble))
	c.OnSelectionChanged(sel)
	first := c.Record()
	c.OnSelectionChanged(sel)
	test.ExpectEquality(t, c.Record(), first)
	test.ExpectEquality(t, s.override, first)
}

func TestActivityLaw(t *testing.T) {
	for st := gamepak.SaveType(0); st < gamepak.NumSaveTypes; st++ {
		for _, auto := range []bool{true, false} {
			s := &mockSession{}
			c := gamepak.NewCoordinator(s, nil)

			sel := gamepak.Selection{SaveType: st.Index(), Autodetect: auto}
			c.OnSelectionChanged(sel)

			inactive := st == gamepak.SaveAutoDetect && auto
			test.ExpectEquality(t, c.Record().Active(), !inactive)
			if inactive {
				test.ExpectEquality(t, s.last, callClear)
			} else {
				test.ExpectEquality(t, s.last, callSet)
				test.ExpectEquality(t, s.override, c.Record())
			}
		}
	}
}

func TestStartedRoundTrip(t *testing.T) {
	s := &mockSession{
		loaded:   true,
		identity: "RZWE",
		saveType: gamepak.SaveSRAM,
		hardware: gamepak.NewHardwareSet(gamepak.Gyroscope, gamepak.Rumble),
	}
	c := gamepak.NewCoordinator(s, nil)
	started := c.Record()

	c.OnSelectionChanged(selectionFor(s.saveType, s.hardware))
	test.ExpectEquality(t, c.Record(), started)

	// the selection reported by the locked controls is the same selection
	c.OnSelectionChanged(c.Controls().Selection())
	test.ExpectEquality(t, c.Record(), started)
}

func TestEmptySessionStart(t *testing.T) {
	s := &mockSession{loaded: false, identity: "AXVE"}
	c := gamepak.NewCoordinator(s, &mockStore{})

	c.OnSessionStarted(s)
	test.ExpectFailure(t, c.Running())
	test.ExpectSuccess(t, c.Controls().SaveTypeEnabled)
	test.ExpectFailure(t, c.Controls().SaveEnabled)
	test.ExpectEquality(t, c.Record().Identity, "")

	c.OnSessionStarted(nil)
	test.ExpectFailure(t, c.Running())
}

// no session, user sets save type, autodetect on
func TestSaveTypeOnlySelection(t *testing.T) {
	s := &mockSession{}
	c := gamepak.NewCoordinator(s, nil)

	test.ExpectSuccess(t, c.SelectSaveType(gamepak.SaveFlash1M.Index()))
	test.ExpectEquality(t, c.Record(), gamepak.Record{
		Identity: "",
		SaveType: gamepak.SaveFlash1M,
		Hardware: gamepak.DoNotOverride,
	})
	test.ExpectEquality(t, s.last, callSet)
	test.ExpectEquality(t, s.override, c.Record())
}

// user turns autodetect off and checks RTC and Rumble only
func TestHardwareSelection(t *testing.T) {
	s := &mockSession{}
	c := gamepak.NewCoordinator(s, nil)

	// hardware controls are disabled while autodetect is on
	test.ExpectFailure(t, c.SetHardware(gamepak.RealTimeClock, true))

	test.ExpectSuccess(t, c.SetAutodetect(false))
	for k := range c.Controls().Hardware {
		test.ExpectSuccess(t, c.Controls().Hardware[k].Enabled)
	}
	test.ExpectEquality(t, c.Record().Hardware, gamepak.Override(gamepak.HardwareNone))

	test.ExpectSuccess(t, c.SetHardware(gamepak.RealTimeClock, true))
	test.ExpectSuccess(t, c.SetHardware(gamepak.Rumble, true))
	test.ExpectEquality(t, c.Record().Hardware,
		gamepak.Override(gamepak.NewHardwareSet(gamepak.RealTimeClock, gamepak.Rumble)))
	test.ExpectEquality(t, s.last, callSet)

	// turning autodetect back on disables the hardware controls and the
	// record no longer overrides the hardware
	test.ExpectSuccess(t, c.SetAutodetect(true))
	for k := range c.Controls().Hardware {
		test.ExpectFailure(t, c.Controls().Hardware[k].Enabled)
	}
	test.ExpectEquality(t, c.Record().Hardware, gamepak.DoNotOverride)
	test.ExpectEquality(t, s.last, callClear)
}

// session starts with a gyroscope and EEPROM
func TestStartLocksControls(t *testing.T) {
	s := &mockSession{}
	c := gamepak.NewCoordinator(s, &mockStore{})

	s.loaded = true
	s.identity = "KYGE"
	s.saveType = gamepak.SaveEEPROM
	s.hardware = gamepak.NewHardwareSet(gamepak.Gyroscope)
	test.ExpectSuccess(t, c.Notify(notifications.NotifySessionStarted))

	test.ExpectEquality(t, c.Record(), gamepak.Record{
		Identity: "KYGE",
		SaveType: gamepak.SaveEEPROM,
		Hardware: gamepak.Override(gamepak.NewHardwareSet(gamepak.Gyroscope)),
	})

	ctl := c.Controls()
	test.ExpectEquality(t, ctl.SaveType, gamepak.SaveEEPROM.Index())
	test.ExpectFailure(t, ctl.SaveTypeEnabled)
	test.ExpectSuccess(t, ctl.Hardware[gamepak.Gyroscope].Checked)
	test.ExpectFailure(t, ctl.Hardware[gamepak.RealTimeClock].Checked)
	test.ExpectFailure(t, ctl.Hardware[gamepak.LightSensor].Checked)
	test.ExpectFailure(t, ctl.Hardware[gamepak.TiltSensor].Checked)
	test.ExpectFailure(t, ctl.Hardware[gamepak.Rumble].Checked)

	// controls are locked while the session is running
	test.ExpectFailure(t, c.SelectSaveType(gamepak.SaveSRAM.Index()))
	test.ExpectFailure(t, c.SetAutodetect(false))
	test.ExpectFailure(t, c.SetHardware(gamepak.Gyroscope, false))
	test.ExpectEquality(t, s.calls, 0)
}

// session stops
func TestStopResetsControls(t *testing.T) {
	s := &mockSession{
		loaded:   true,
		identity: "KYGE",
		saveType: gamepak.SaveEEPROM,
		hardware: gamepak.NewHardwareSet(gamepak.Gyroscope),
	}
	c := gamepak.NewCoordinator(s, &mockStore{})
	test.ExpectSuccess(t, c.Controls().SaveEnabled)

	s.loaded = false
	test.ExpectSuccess(t, c.Notify(notifications.NotifySessionStopped))
	test.ExpectFailure(t, c.Running())

	ctl := c.Controls()
	test.ExpectEquality(t, ctl.SaveType, 0)
	test.ExpectSuccess(t, ctl.SaveTypeEnabled)
	test.ExpectSuccess(t, ctl.Autodetect.Enabled)
	for k := range ctl.Hardware {
		test.ExpectFailure(t, ctl.Hardware[k].Checked)

		// autodetect was left checked so the hardware controls stay disabled
		test.ExpectFailure(t, ctl.Hardware[k].Enabled)
	}
	test.ExpectFailure(t, ctl.SaveEnabled)

	// identity survives the stop by default
	test.ExpectEquality(t, c.Record(), gamepak.Record{Identity: "KYGE"})
	test.ExpectEquality(t, s.calls, 0)
}

func TestStopWithAutodetectOff(t *testing.T) {
	s := &mockSession{}
	c := gamepak.NewCoordinator(s, nil)
	c.SetAutodetect(false)

	s.loaded = true
	s.identity = "V49E"
	s.hardware = gamepak.NewHardwareSet(gamepak.Rumble)
	c.OnSessionStarted(s)

	s.loaded = false
	c.OnSessionStopped()

	for k := range c.Controls().Hardware {
		test.ExpectSuccess(t, c.Controls().Hardware[k].Enabled)
		test.ExpectFailure(t, c.Controls().Hardware[k].Checked)
	}
	test.ExpectEquality(t, c.Record().Hardware, gamepak.Override(gamepak.HardwareNone))
}

func TestClearIdentityOnStop(t *testing.T) {
	s := &mockSession{loaded: true, identity: "AXPE"}
	c := gamepak.NewCoordinator(s, nil, gamepak.ClearIdentityOnStop(true))
	test.ExpectEquality(t, c.Record().Identity, "AXPE")

	c.OnSessionStopped()
	test.ExpectEquality(t, c.Record().Identity, "")
}

// default record and the user presses save
func TestSaveInactiveRecord(t *testing.T) {
	s := &mockSession{}
	st := &mockStore{}
	c := gamepak.NewCoordinator(s, st)

	c.OnSelectionChanged(c.Controls().Selection())
	test.ExpectEquality(t, s.last, callClear)

	c.SaveOverride()
	test.ExpectEquality(t, s.last, callClear)
	test.DemandEquality(t, len(st.saved), 1)
	test.ExpectEquality(t, st.saved[0], gamepak.Record{})
	test.ExpectFailure(t, st.saved[0].Active())
}

func TestSaveWithoutStore(t *testing.T) {
	s := &mockSession{loaded: true, identity: "AXVE"}
	c := gamepak.NewCoordinator(s, nil)

	// must not panic
	c.SaveOverride()
}

func TestSaveStoreError(t *testing.T) {
	s := &mockSession{loaded: true, identity: "AXVE", saveType: gamepak.SaveFlash1M}
	st := &mockStore{err: errors.New("disk full")}
	c := gamepak.NewCoordinator(s, st)

	logger.Clear()

	// store errors are not surfaced and the record is untouched
	c.SaveOverride()
	test.ExpectEquality(t, c.Record().SaveType, gamepak.SaveFlash1M)

	// but the error is logged
	w := &test.Writer{}
	logger.Tail(w, 1)
	test.ExpectSuccess(t, w.Compare("gamepak: save override: disk full\n"))
}

func TestNilSession(t *testing.T) {
	c := gamepak.NewCoordinator(nil, nil)
	test.ExpectSuccess(t, c.SelectSaveType(gamepak.SaveSRAM.Index()))
	test.ExpectEquality(t, c.Record().SaveType, gamepak.SaveSRAM)
	test.ExpectSuccess(t, c.Notify(notifications.NotifySessionStarted))
	test.ExpectFailure(t, c.Running())
}
