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
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/gamepak/cartridgeloader"
	"github.com/jetsetilly/gamepak/gamepak"
	"github.com/jetsetilly/gamepak/logger"
	"github.com/jetsetilly/gamepak/session"
)

// alpha value used to draw disabled widgets
const disabledAlpha = 0.3

type winGamepak struct {
	sess   *session.Session
	coords *gamepak.Coordinator

	// the filename in the load widget
	filename string

	// the most recent error from a load or stop request. cleared on the next
	// successful request
	lastError string
}

func newWinGamepak(sess *session.Session, coords *gamepak.Coordinator) *winGamepak {
	return &winGamepak{
		sess:   sess,
		coords: coords,
	}
}

func (win *winGamepak) draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 10}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	if imgui.BeginV(windowTitle, nil, imgui.WindowFlagsAlwaysAutoResize) {
		win.drawSession()
		imguiSeparator()
		win.drawOverride()
	}
	imgui.End()
}

func (win *winGamepak) drawSession() {
	imguiLabel("Cartridge")
	imgui.PushItemWidth(250)
	load := imgui.InputTextV("##filename", &win.filename, imgui.InputTextFlagsEnterReturnsTrue, nil)
	imgui.PopItemWidth()
	imgui.SameLine()
	if imgui.Button("Load") || load {
		win.load()
	}

	imguiDisabled(!win.sess.IsLoaded(), func() {
		imgui.SameLine()
		if imgui.Button("Stop") {
			win.sess.Stop()
			win.lastError = ""
		}
	})

	if win.lastError != "" {
		imgui.PushStyleColor(imgui.StyleColorText, imgui.Vec4{X: 0.9, Y: 0.3, Z: 0.3, W: 1.0})
		imgui.Text(win.lastError)
		imgui.PopStyleColor()
	}

	if !win.sess.IsLoaded() {
		imgui.Text("no cartridge loaded")
		return
	}

	hdr := win.sess.Cartridge().Header
	imgui.Text(fmt.Sprintf("%s [%s]", hdr.Title, hdr.GameCode))
	if !hdr.ChecksumValid {
		imgui.SameLine()
		imgui.Text("(bad checksum)")
	}
	imgui.Text(fmt.Sprintf("save type: %s", win.sess.SaveType()))
	imgui.Text(fmt.Sprintf("hardware: %s", win.sess.HardwareEnabled()))
	imgui.Text(fmt.Sprintf("source: %s", win.sess.Source()))
}

func (win *winGamepak) load() {
	cl, err := cartridgeloader.NewLoader(win.filename)
	if err == nil {
		err = win.sess.Start(cl)
	}
	if err != nil {
		win.lastError = err.Error()
		logger.Log(logger.Allow, "sdlimgui", err)
		return
	}
	win.lastError = ""
}

// drawOverride draws the override controls exactly as described by the
// coordinator. changes to the controls are forwarded to the coordinator.
func (win *winGamepak) drawOverride() {
	ctl := win.coords.Controls()

	imguiDisabled(!ctl.SaveTypeEnabled, func() {
		imguiLabel("Save Type")
		imgui.PushItemWidth(150)
		if imgui.BeginComboV("##savetype", gamepak.SaveTypeFromIndex(ctl.SaveType).String(), imgui.ComboFlagsNone) {
			for i := 0; i < int(gamepak.NumSaveTypes); i++ {
				if imgui.SelectableV(gamepak.SaveType(i).String(), i == ctl.SaveType, imgui.SelectableFlagsNone, imgui.Vec2{}) {
					win.coords.SelectSaveType(i)
				}
			}
			imgui.EndCombo()
		}
		imgui.PopItemWidth()
	})

	imgui.Spacing()

	autodetect := ctl.Autodetect.Checked
	imguiDisabled(!ctl.Autodetect.Enabled, func() {
		if imgui.Checkbox("Autodetect Hardware", &autodetect) {
			win.coords.SetAutodetect(autodetect)
		}
	})

	imgui.Indent()
	for k := gamepak.HardwareKind(0); k < gamepak.NumHardwareKinds; k++ {
		on := ctl.Hardware[k].Checked
		imguiDisabled(!ctl.Hardware[k].Enabled, func() {
			if imgui.Checkbox(k.String(), &on) {
				win.coords.SetHardware(k, on)
			}
		})
	}
	imgui.Unindent()

	imguiSeparator()

	imguiDisabled(!ctl.SaveEnabled, func() {
		if imgui.Button("Save Override") {
			win.coords.SaveOverride()
		}
	})

	if rec := win.coords.Record(); rec.Active() {
		imgui.SameLine()
		imgui.Text(rec.String())
	}
}
