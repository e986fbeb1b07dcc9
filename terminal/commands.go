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

package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gamepak/cartridgeloader"
	"github.com/jetsetilly/gamepak/gamepak"
	"github.com/jetsetilly/gamepak/logger"
)

var errQuit = errors.New("quit")

type commandHelp struct {
	cmd  string
	args string
	help string
}

var help = []commandHelp{
	{cmd: "LOAD", args: "<file>", help: "start a session with the cartridge"},
	{cmd: "STOP", help: "stop the session"},
	{cmd: "SAVETYPE", args: "[type]", help: "choose the save type or list the choices"},
	{cmd: "AUTODETECT", args: "[ON|OFF]", help: "autodetect the cartridge hardware"},
	{cmd: "HW", args: "<kind> [ON|OFF]", help: "choose hardware (RTC, GYRO, LIGHT, TILT, RUMBLE)"},
	{cmd: "SAVE", help: "store the current override"},
	{cmd: "SHOW", help: "show the current override"},
	{cmd: "LIST", help: "list stored overrides"},
	{cmd: "DELETE", args: "<identity>", help: "delete a stored override"},
	{cmd: "LOG", args: "[n]", help: "show the most recent log entries"},
	{cmd: "HELP", help: "this list"},
	{cmd: "QUIT", help: "leave the program"},
}

// parse ON/OFF arguments. toggle is returned if there is no argument
func parseOnOff(args []string, toggle bool) (bool, error) {
	if len(args) == 0 {
		return toggle, nil
	}
	switch strings.ToUpper(args[0]) {
	case "ON", "TRUE", "1":
		return true, nil
	case "OFF", "FALSE", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected ON or OFF, not %s", args[0])
}

func (t *Terminal) command(cmd []string) error {
	switch strings.ToUpper(cmd[0]) {
	case "LOAD":
		if len(cmd) < 2 {
			return fmt.Errorf("LOAD requires a filename")
		}
		cl, err := cartridgeloader.NewLoader(strings.Join(cmd[1:], " "))
		if err != nil {
			return err
		}
		if err := t.session.Start(cl); err != nil {
			return err
		}
		t.show()

	case "STOP":
		if !t.session.IsLoaded() {
			return fmt.Errorf("no cartridge is loaded")
		}
		t.session.Stop()

	case "SAVETYPE":
		if len(cmd) < 2 {
			ctl := t.coords.Controls()
			for i, n := range gamepak.SaveTypeNames() {
				s := fmt.Sprintf("  %d %s", i, n)
				if i == ctl.SaveType {
					s = t.styles.value.Render(s + " *")
				}
				t.println(s)
			}
			return nil
		}

		st, err := gamepak.ParseSaveType(strings.Join(cmd[1:], " "))
		if err != nil {
			idx, nerr := strconv.Atoi(cmd[1])
			if nerr != nil || idx < 0 || idx >= int(gamepak.NumSaveTypes) {
				return err
			}
			st = gamepak.SaveTypeFromIndex(idx)
		}
		if !t.coords.SelectSaveType(st.Index()) {
			return fmt.Errorf("save type can not be changed while a cartridge is running")
		}

	case "AUTODETECT":
		on, err := parseOnOff(cmd[1:], !t.coords.Controls().Autodetect.Checked)
		if err != nil {
			return err
		}
		if !t.coords.SetAutodetect(on) {
			return fmt.Errorf("autodetect can not be changed while a cartridge is running")
		}

	case "HW":
		if len(cmd) < 2 {
			return fmt.Errorf("HW requires a hardware kind")
		}
		k, err := gamepak.ParseHardwareKind(cmd[1])
		if err != nil {
			return err
		}
		on, err := parseOnOff(cmd[2:], !t.coords.Controls().Hardware[k].Checked)
		if err != nil {
			return err
		}
		if !t.coords.SetHardware(k, on) {
			if t.coords.Running() {
				return fmt.Errorf("hardware can not be changed while a cartridge is running")
			}
			return fmt.Errorf("hardware can not be changed while autodetect is on")
		}

	case "SAVE":
		if !t.coords.Controls().SaveEnabled {
			return fmt.Errorf("saving requires a running cartridge and an override store")
		}
		t.coords.SaveOverride()
		logger.WriteRecent(t.output)

	case "SHOW":
		t.show()

	case "LIST":
		if t.store == nil {
			return fmt.Errorf("there is no override store")
		}
		return t.store.List(t.output)

	case "DELETE":
		if t.store == nil {
			return fmt.Errorf("there is no override store")
		}
		if len(cmd) < 2 {
			return fmt.Errorf("DELETE requires an identity")
		}
		if err := t.store.DeleteOverride(cmd[1]); err != nil {
			return err
		}
		t.println(fmt.Sprintf("deleted %s", cmd[1]))

	case "LOG":
		n := 10
		if len(cmd) > 1 {
			var err error
			n, err = strconv.Atoi(cmd[1])
			if err != nil {
				return fmt.Errorf("LOG requires a number")
			}
		}
		logger.Tail(t.output, n)

	case "HELP":
		for _, h := range help {
			t.println(fmt.Sprintf("%s %s", t.styles.heading.Render(fmt.Sprintf("%-10s %-16s", h.cmd, h.args)),
				t.styles.help.Render(h.help)))
		}

	case "QUIT", "EXIT":
		return errQuit

	default:
		return fmt.Errorf("unrecognised command (%s)", cmd[0])
	}

	return nil
}

// show the current record and the state of the controls
func (t *Terminal) show() {
	rec := t.coords.Record()
	ctl := t.coords.Controls()

	if t.session.IsLoaded() {
		cart := t.session.Cartridge()
		t.println(fmt.Sprintf("%s %s (%s)", t.styles.heading.Render("cartridge:"), cart.Header, t.session.Source()))
	} else {
		t.println(fmt.Sprintf("%s none", t.styles.heading.Render("cartridge:")))
	}

	t.println(fmt.Sprintf("%s %s", t.styles.heading.Render("override: "), rec))
	if rec.Active() {
		t.println(t.styles.value.Render("  override is active"))
	} else {
		t.println(t.styles.disabled.Render("  override is not active"))
	}

	render := func(enabled bool, s string) string {
		if enabled {
			return t.styles.value.Render(s)
		}
		return t.styles.disabled.Render(s)
	}

	check := func(tg gamepak.Toggle) string {
		if tg.Checked {
			return "[x]"
		}
		return "[ ]"
	}

	t.println(fmt.Sprintf("  save type: %s", render(ctl.SaveTypeEnabled, gamepak.SaveTypeFromIndex(ctl.SaveType).String())))
	t.println(fmt.Sprintf("  %s %s", render(ctl.Autodetect.Enabled, check(ctl.Autodetect)), "autodetect hardware"))
	for k := gamepak.HardwareKind(0); k < gamepak.NumHardwareKinds; k++ {
		t.println(fmt.Sprintf("    %s %s", render(ctl.Hardware[k].Enabled, check(ctl.Hardware[k])), k))
	}
}
