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
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/gamepak/gamepak"
	"github.com/jetsetilly/gamepak/logger"
	"github.com/jetsetilly/gamepak/paths"
	"github.com/jetsetilly/gamepak/session"
)

// imguiIniFile is where imgui will store the coordinates of the imgui windows
const imguiIniFile = "imgui.ini"

// SdlImgui is an sdl based visualiser using imgui.
type SdlImgui struct {
	context *imgui.Context
	io      imgui.IO
	plt     *platform
	rnd     *gl21

	win *winGamepak

	// the window has been closed
	quit chan bool
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui.
//
// MUST ONLY be called from the #mainthread
func NewSdlImgui(sess *session.Session, coords *gamepak.Coordinator) (*SdlImgui, error) {
	img := &SdlImgui{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		win:     newWinGamepak(sess, coords),
		quit:    make(chan bool, 1),
	}

	iniPath, err := paths.ResourcePath("", imguiIniFile)
	if err != nil {
		logger.Logf(logger.Allow, "sdlimgui", "imgui ini: %v", err)
	} else {
		img.io.SetIniFilename(iniPath)
	}

	img.plt, err = newPlatform(img.io)
	if err != nil {
		img.context.Destroy()
		return nil, err
	}

	img.rnd, err = newRenderer(img.plt)
	if err != nil {
		img.plt.destroy()
		img.context.Destroy()
		return nil, err
	}

	return img, nil
}

// Destroy releases the resources used by the GUI.
//
// MUST ONLY be called from the #mainthread
func (img *SdlImgui) Destroy() {
	img.rnd.destroy()
	img.plt.destroy()
	img.context.Destroy()
}

// Service processes pending window events and draws a single frame. It
// should be called repeatedly by the main thread.
//
// MUST ONLY be called from the #mainthread
func (img *SdlImgui) Service() {
	img.plt.processEvents()
	if img.plt.shouldStop {
		select {
		case img.quit <- true:
		default:
		}
		return
	}
	img.renderFrame()
}

// Quit returns a channel that receives a value when the user closes the
// window.
func (img *SdlImgui) Quit() <-chan bool {
	return img.quit
}

func (img *SdlImgui) renderFrame() {
	img.plt.newFrame()
	imgui.NewFrame()
	img.win.draw()
	imgui.Render()

	img.rnd.preRender()
	img.rnd.render(imgui.RenderedDrawData())
	img.plt.postRender()
}
