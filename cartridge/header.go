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

package cartridge

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gamepak/curated"
)

// offsets of header fields
const (
	titleOffset    = 0xa0
	titleLen       = 12
	codeOffset     = 0xac
	codeLen        = 4
	makerOffset    = 0xb0
	makerLen       = 2
	fixedOffset    = 0xb2
	versionOffset  = 0xbc
	checksumOffset = 0xbd

	// value that must be in the fixed byte
	fixedValue = 0x96

	// the header ends after the two reserved bytes following the checksum
	HeaderSize = 0xc0
)

// Sentinal error patterns.
const (
	ShortData = "cartridge: data is too short for a header (%d bytes)"
	BadHeader = "cartridge: fixed header value is incorrect (%#02x)"
	EmptyCode = "cartridge: header has no game code"
)

// Header is the information found in the cartridge header.
type Header struct {
	Title    string
	GameCode string
	Maker    string
	Version  uint8
	Checksum uint8

	// false if the checksum in the header doesn't match the calculated
	// checksum. real hardware refuses to boot a cartridge with a bad
	// checksum, which is only a warning here
	ChecksumValid bool
}

func (h Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s [%s] maker=%s v%d", h.Title, h.GameCode, h.Maker, h.Version))
	if !h.ChecksumValid {
		s.WriteString(" (bad checksum)")
	}
	return s.String()
}

// Identity returns the string that identifies the cartridge for the purposes
// of storing overrides. This is the game code.
func (h Header) Identity() string {
	return h.GameCode
}

// ParseHeader reads the header from cartridge data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, curated.Errorf(ShortData, len(data))
	}

	if data[fixedOffset] != fixedValue {
		return Header{}, curated.Errorf(BadHeader, data[fixedOffset])
	}

	h := Header{
		Title:    headerString(data[titleOffset : titleOffset+titleLen]),
		GameCode: headerString(data[codeOffset : codeOffset+codeLen]),
		Maker:    headerString(data[makerOffset : makerOffset+makerLen]),
		Version:  data[versionOffset],
		Checksum: data[checksumOffset],
	}

	if h.GameCode == "" {
		return Header{}, curated.Errorf(EmptyCode)
	}

	h.ChecksumValid = Checksum(data) == h.Checksum

	return h, nil
}

// Checksum calculates the header complement checksum of the data. The data
// must be at least HeaderSize bytes long.
func Checksum(data []byte) uint8 {
	var chk uint8
	for _, b := range data[titleOffset:checksumOffset] {
		chk -= b
	}
	return chk - 0x19
}

// header strings are upper case ASCII padded with zero bytes
func headerString(b []byte) string {
	s := strings.Builder{}
	for _, c := range b {
		if c == 0x00 {
			break // for loop
		}
		if c < 0x20 || c > 0x7e {
			c = '?'
		}
		s.WriteByte(c)
	}
	return strings.TrimSpace(s.String())
}
