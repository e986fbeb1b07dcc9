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
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	prompt   lipgloss.Style
	heading  lipgloss.Style
	value    lipgloss.Style
	disabled lipgloss.Style
	err      lipgloss.Style
	help     lipgloss.Style
}

// ANSI colours are used so that the output fits with the user's terminal
// theme. see the lipgloss documentation for the list of colours
func newStyles(output io.Writer) styles {
	r := lipgloss.NewRenderer(output)
	return styles{
		prompt:   r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		heading:  r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		value:    r.NewStyle().Foreground(lipgloss.ANSIColor(3)),
		disabled: r.NewStyle().Faint(true),
		err:      r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		help:     r.NewStyle().Foreground(lipgloss.ANSIColor(4)),
	}
}
