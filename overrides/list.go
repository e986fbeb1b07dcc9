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

package overrides

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gamepak/gamepak"
)

// ListRecords writes the records in the format used by the List() function
// of every store in this package.
func ListRecords(output io.Writer, recs []gamepak.Record) error {
	if len(recs) == 0 {
		_, err := io.WriteString(output, "no overrides\n")
		return err
	}

	for _, r := range recs {
		if _, err := fmt.Fprintf(output, "%-6s %-12s %s\n", r.Identity, r.SaveType, r.Hardware); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "Total: %d\n", len(recs))
	return err
}

func fileMissing(path string) bool {
	_, err := os.Stat(path)
	return os.IsNotExist(err)
}
