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

package sdlimgui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/gamepak/cartridge"
	"github.com/jetsetilly/gamepak/gamepak"
	"github.com/jetsetilly/gamepak/overrides"
	"github.com/jetsetilly/gamepak/session"
	"github.com/jetsetilly/gamepak/test"
)

// headless creates an imgui context suitable for drawing without a platform
// or renderer. the returned function destroys the context
func headless(t *testing.T) func() {
	t.Helper()

	ctx := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")
	io.SetDisplaySize(imgui.Vec2{X: windowWidth, Y: windowHeight})

	// building the font atlas is normally the job of the renderer
	_ = io.Fonts().TextureDataRGBA32()

	return ctx.Destroy
}

func frame(win *winGamepak) {
	imgui.NewFrame()
	win.draw()
	imgui.Render()
}

func writeROM(t *testing.T, code string, body string) string {
	t.Helper()

	data := make([]byte, cartridge.HeaderSize)
	copy(data[0xa0:0xac], "GUITEST")
	copy(data[0xac:0xb0], code)
	data[0xb2] = 0x96
	data[0xbd] = cartridge.Checksum(data)
	data = append(data, body...)

	fn := filepath.Join(t.TempDir(), "test.gba")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0600))
	return fn
}

func TestDrawWithoutSession(t *testing.T) {
	defer headless(t)()

	sess := session.NewSession(overrides.NewLayered(nil))
	coords := gamepak.NewCoordinator(sess, nil)
	sess.Subscribe(coords)
	win := newWinGamepak(sess, coords)

	before := coords.Controls()
	frame(win)
	frame(win)

	// drawing without input must not change anything
	test.ExpectEquality(t, coords.Controls(), before)
	test.ExpectEquality(t, coords.Record(), gamepak.Record{})
	test.ExpectEquality(t, win.lastError, "")
}

func TestDrawLoadAndStop(t *testing.T) {
	defer headless(t)()

	sess := session.NewSession(overrides.NewLayered(nil))
	coords := gamepak.NewCoordinator(sess, nil)
	sess.Subscribe(coords)
	win := newWinGamepak(sess, coords)

	win.filename = writeROM(t, "ABCE", "FLASH1M_V102")
	win.load()
	test.ExpectEquality(t, win.lastError, "")
	test.DemandSuccess(t, sess.IsLoaded())

	frame(win)

	ctl := coords.Controls()
	test.ExpectEquality(t, ctl.SaveType, gamepak.SaveFlash1M.Index())
	test.ExpectFailure(t, ctl.SaveTypeEnabled)
	test.ExpectFailure(t, ctl.Autodetect.Enabled)

	// there is no store so saving is never possible
	test.ExpectFailure(t, ctl.SaveEnabled)

	sess.Stop()
	frame(win)
	test.ExpectSuccess(t, coords.Controls().SaveTypeEnabled)
	test.ExpectEquality(t, coords.Record().Identity, "ABCE")
}

func TestLoadError(t *testing.T) {
	defer headless(t)()

	sess := session.NewSession(nil)
	coords := gamepak.NewCoordinator(sess, nil)
	sess.Subscribe(coords)
	win := newWinGamepak(sess, coords)

	win.filename = filepath.Join(t.TempDir(), "missing.gba")
	win.load()
	test.ExpectInequality(t, win.lastError, "")
	test.ExpectFailure(t, sess.IsLoaded())

	// the error is drawn without disturbing the controls
	frame(win)
	test.ExpectSuccess(t, coords.Controls().SaveTypeEnabled)

	// unsupported extension
	win.filename = "cartridge.txt"
	win.load()
	test.ExpectInequality(t, win.lastError, "")
}
