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

package logger

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is highlighted and any continuation lines are dimmed. Color is only
// applied if the underlying writer is a terminal that supports it.
type Colorizer struct {
	out    io.Writer
	tag    lipgloss.Style
	detail lipgloss.Style
	extra  lipgloss.Style
}

// NewColorizer is the preferred method of initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	r := lipgloss.NewRenderer(out)
	return Colorizer{
		out:    out,
		tag:    r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		detail: r.NewStyle(),
		extra:  r.NewStyle().Faint(true).Foreground(lipgloss.ANSIColor(1)),
	}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	l := strings.Split(strings.TrimRight(string(p), "\n"), "\n")

	s := strings.Builder{}
	for i, ln := range l {
		if i > 0 {
			s.WriteString(c.extra.Render(ln))
			s.WriteString("\n")
			continue
		}

		tag, detail, ok := strings.Cut(ln, ": ")
		if ok {
			s.WriteString(c.tag.Render(tag))
			s.WriteString(": ")
			s.WriteString(c.detail.Render(detail))
		} else {
			s.WriteString(c.detail.Render(ln))
		}
		s.WriteString("\n")
	}

	if _, err := io.WriteString(c.out, s.String()); err != nil {
		return 0, err
	}

	return len(p), nil
}
