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

package terminal_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gamepak/cartridge"
	"github.com/jetsetilly/gamepak/gamepak"
	"github.com/jetsetilly/gamepak/overrides"
	"github.com/jetsetilly/gamepak/session"
	"github.com/jetsetilly/gamepak/terminal"
	"github.com/jetsetilly/gamepak/test"
)

func writeROM(t *testing.T, code string, body string) string {
	t.Helper()

	data := make([]byte, cartridge.HeaderSize)
	copy(data[0xa0:0xac], "TERMINAL")
	copy(data[0xac:0xb0], code)
	data[0xb2] = 0x96
	data[0xbd] = cartridge.Checksum(data)
	data = append(data, body...)

	fn := filepath.Join(t.TempDir(), "test.gba")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0600))
	return fn
}

type harness struct {
	sess   *session.Session
	coords *gamepak.Coordinator
	store  overrides.Store
	out    *test.Writer
}

func newHarness(t *testing.T, script string) harness {
	t.Helper()

	h := harness{out: &test.Writer{}}
	h.store = overrides.NewFileStore(filepath.Join(t.TempDir(), "overrides"))
	h.sess = session.NewSession(overrides.NewLayered(h.store))
	h.coords = gamepak.NewCoordinator(h.sess, h.store)
	h.sess.Subscribe(h.coords)

	term := terminal.NewTerminal(strings.NewReader(script), h.out, h.sess, h.coords, h.store)
	test.DemandSuccess(t, term.Run())

	return h
}

func TestEditWithoutSession(t *testing.T) {
	h := newHarness(t, "SAVETYPE EEPROM\nAUTODETECT OFF\nHW RTC ON\nHW rumble\nSHOW\n")

	test.ExpectEquality(t, h.coords.Record(), gamepak.Record{
		SaveType: gamepak.SaveEEPROM,
		Hardware: gamepak.Override(gamepak.NewHardwareSet(gamepak.RealTimeClock, gamepak.Rumble)),
	})

	pending, ok := h.sess.PendingOverride()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pending, h.coords.Record())

	test.ExpectSuccess(t, strings.Contains(h.out.String(), "override is active"))
	test.ExpectSuccess(t, strings.Contains(h.out.String(), "cartridge: none"))
}

func TestHardwareGated(t *testing.T) {
	h := newHarness(t, "HW GYRO ON\n")
	test.ExpectSuccess(t, strings.Contains(h.out.String(), "autodetect is on"))
	test.ExpectEquality(t, h.coords.Record().Hardware, gamepak.DoNotOverride)
}

func TestLoadAndSave(t *testing.T) {
	fn := writeROM(t, "ABCE", "FLASH1M_V103")
	h := newHarness(t, "LOAD "+fn+"\nSAVETYPE SRAM\nSAVE\nLIST\nQUIT\nSHOW\n")

	test.ExpectSuccess(t, h.coords.Running())
	test.ExpectEquality(t, h.sess.SaveType(), gamepak.SaveFlash1M)

	// save type is locked while the session is running
	test.ExpectSuccess(t, strings.Contains(h.out.String(), "can not be changed while a cartridge is running"))

	rec, err := h.store.LoadOverride("ABCE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec, gamepak.Record{
		Identity: "ABCE",
		SaveType: gamepak.SaveFlash1M,
		Hardware: gamepak.Override(gamepak.HardwareNone),
	})

	test.ExpectSuccess(t, strings.Contains(h.out.String(), "Total: 1"))

	// commands after QUIT are not executed. SHOW would print the
	// "override is active" line a second time
	test.ExpectEquality(t, strings.Count(h.out.String(), "override is active"), 1)
}

func TestStopAndDelete(t *testing.T) {
	fn := writeROM(t, "ABCE", "")
	h := newHarness(t, "LOAD "+fn+"\nSAVE\nSTOP\nSTOP\nDELETE ABCE\nLIST\n")

	test.ExpectFailure(t, h.coords.Running())
	test.ExpectEquality(t, h.coords.Record().Identity, "ABCE")
	test.ExpectSuccess(t, strings.Contains(h.out.String(), "no cartridge is loaded"))
	test.ExpectSuccess(t, strings.Contains(h.out.String(), "deleted ABCE"))
	test.ExpectSuccess(t, strings.Contains(h.out.String(), "no overrides"))
}

func TestSaveWithoutSession(t *testing.T) {
	h := newHarness(t, "SAVE\n")
	test.ExpectSuccess(t, strings.Contains(h.out.String(), "requires a running cartridge"))
}

func TestHelpAndErrors(t *testing.T) {
	h := newHarness(t, "HELP\n# comment\n\nFOO\nSAVETYPE\nSAVETYPE 9\nSAVETYPE 3\nAUTODETECT MAYBE\nLOAD\n")

	out := h.out.String()
	test.ExpectSuccess(t, strings.Contains(out, "AUTODETECT"))
	test.ExpectSuccess(t, strings.Contains(out, "unrecognised command (FOO)"))
	test.ExpectSuccess(t, strings.Contains(out, "Flash 512kb"))
	test.ExpectSuccess(t, strings.Contains(out, "unrecognised save type"))
	test.ExpectSuccess(t, strings.Contains(out, "expected ON or OFF"))
	test.ExpectSuccess(t, strings.Contains(out, "LOAD requires a filename"))
	test.ExpectEquality(t, h.coords.Record().SaveType, gamepak.SaveFlash512)
}
