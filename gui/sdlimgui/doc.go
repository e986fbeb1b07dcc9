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

// Package sdlimgui is the graphical front end for the game pak override
// controls. It uses dear imgui for the widgets, with SDL2 providing the
// window and input and OpenGL 2.1 drawing the imgui output.
//
// The GUI must be run from the main thread. NewSdlImgui() locks the calling
// goroutine to its OS thread and Service() should be called repeatedly from
// the same goroutine.
//
// Drawing of the override window is independent of the platform and renderer
// and so can be exercised with nothing more than an imgui context.
package sdlimgui
