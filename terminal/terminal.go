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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gamepak/gamepak"
	"github.com/jetsetilly/gamepak/overrides"
	"github.com/jetsetilly/gamepak/session"
	"golang.org/x/term"
)

// Terminal reads commands from the input and writes results to the output.
type Terminal struct {
	input  *bufio.Scanner
	output io.Writer
	styles styles

	// whether the input is an interactive terminal. the prompt is only
	// shown if it is
	interactive bool

	session *session.Session
	coords  *gamepak.Coordinator

	// the override store. can be nil
	store overrides.Store
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The store argument can be nil.
func NewTerminal(input io.Reader, output io.Writer, sess *session.Session, coords *gamepak.Coordinator, store overrides.Store) *Terminal {
	t := &Terminal{
		input:   bufio.NewScanner(input),
		output:  output,
		styles:  newStyles(output),
		session: sess,
		coords:  coords,
		store:   store,
	}

	if f, ok := input.(*os.File); ok {
		t.interactive = term.IsTerminal(int(f.Fd()))
	}

	return t
}

func (t *Terminal) println(s string) {
	fmt.Fprintln(t.output, s)
}

func (t *Terminal) printError(err error) {
	t.println(t.styles.err.Render(err.Error()))
}

// Run commands until the QUIT command or the end of the input.
func (t *Terminal) Run() error {
	for {
		if t.interactive {
			fmt.Fprint(t.output, t.styles.prompt.Render(t.prompt()))
		}

		if !t.input.Scan() {
			return t.input.Err()
		}

		if quit := t.Execute(t.input.Text()); quit {
			return nil
		}
	}
}

func (t *Terminal) prompt() string {
	if t.session.IsLoaded() {
		return fmt.Sprintf("[%s] > ", t.session.Identity())
	}
	return "[no cartridge] > "
}

// Execute a single command line. Returns true if the terminal should quit.
func (t *Terminal) Execute(line string) bool {
	cmd := strings.Fields(line)
	if len(cmd) == 0 || strings.HasPrefix(cmd[0], "#") {
		return false
	}

	err := t.command(cmd)
	if err != nil {
		if err == errQuit {
			return true
		}
		t.printError(err)
	}

	return false
}
