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

package overrides_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gamepak/curated"
	"github.com/jetsetilly/gamepak/gamepak"
	"github.com/jetsetilly/gamepak/overrides"
	"github.com/jetsetilly/gamepak/test"
)

func TestEncoding(t *testing.T) {
	test.ExpectEquality(t, overrides.EncodeHardware(gamepak.DoNotOverride), uint16(0x8000))
	test.ExpectEquality(t, overrides.EncodeHardware(gamepak.Override(gamepak.HardwareNone)), uint16(0))

	for bits := uint16(0); bits <= 0x1f; bits++ {
		set, _ := gamepak.HardwareSetFromBits(bits)
		hw, err := overrides.DecodeHardware(overrides.EncodeHardware(gamepak.Override(set)))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, hw, gamepak.Override(set))
	}

	hw, err := overrides.DecodeHardware(0x8000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hw, gamepak.DoNotOverride)

	_, err = overrides.DecodeHardware(0x4000)
	test.ExpectFailure(t, err)

	st, err := overrides.DecodeSaveType(overrides.EncodeSaveType(gamepak.SaveFlash512))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st, gamepak.SaveFlash512)
}

func TestBuiltin(t *testing.T) {
	rec, err := overrides.Builtin("AXVE")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rec, gamepak.Record{
		Identity: "AXVE",
		SaveType: gamepak.SaveFlash1M,
		Hardware: gamepak.Override(gamepak.NewHardwareSet(gamepak.RealTimeClock)),
	})

	rec, err = overrides.Builtin("RZWE")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rec.SaveType, gamepak.SaveAutoDetect)
	test.ExpectEquality(t, rec.Hardware, gamepak.Override(gamepak.NewHardwareSet(gamepak.Gyroscope, gamepak.Rumble)))

	_, err = overrides.Builtin("ZZZZ")
	test.ExpectSuccess(t, curated.Is(err, overrides.NotFound))

	// every built-in override is active
	for _, id := range overrides.BuiltinIdentities() {
		rec, err := overrides.Builtin(id)
		test.ExpectSuccess(t, err)
		test.ExpectSuccess(t, rec.Active(), id)
	}
}

func TestValidIdentity(t *testing.T) {
	test.ExpectSuccess(t, overrides.ValidIdentity("AXVE"))
	test.ExpectFailure(t, overrides.ValidIdentity(""))
	test.ExpectFailure(t, overrides.ValidIdentity("A,B"))
	test.ExpectFailure(t, overrides.ValidIdentity("A\nB"))
}

func TestFileStore(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "overrides")
	fs := overrides.NewFileStore(pth)
	defer fs.Close()

	// nothing saved yet
	_, err := fs.LoadOverride("AXVE")
	test.ExpectSuccess(t, curated.Is(err, overrides.NotFound))
	recs, err := fs.Records()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(recs), 0)
	test.ExpectSuccess(t, curated.Is(fs.DeleteOverride("AXVE"), overrides.NotFound))

	a := gamepak.Record{
		Identity: "AXVE",
		SaveType: gamepak.SaveFlash1M,
		Hardware: gamepak.Override(gamepak.NewHardwareSet(gamepak.RealTimeClock)),
	}
	b := gamepak.Record{
		Identity: "KYGE",
		Hardware: gamepak.DoNotOverride,
	}
	test.ExpectSuccess(t, fs.SaveOverride(a))
	test.ExpectSuccess(t, fs.SaveOverride(b))

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "000,override,AXVE,FLASH1M,0x01\n001,override,KYGE,AUTO,0x8000\n")

	rec, err := fs.LoadOverride("KYGE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec, b)

	// saving replaces the existing record
	a.SaveType = gamepak.SaveSRAM
	test.ExpectSuccess(t, fs.SaveOverride(a))
	rec, err = fs.LoadOverride("AXVE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec, a)

	recs, err = fs.Records()
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(recs), 2)
	test.ExpectEquality(t, recs[0], a)
	test.ExpectEquality(t, recs[1], b)

	w := &test.Writer{}
	test.ExpectSuccess(t, fs.List(w))
	test.ExpectSuccess(t, strings.Contains(w.String(), "AXVE"))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "Total: 2\n"))

	test.ExpectSuccess(t, fs.DeleteOverride("AXVE"))
	_, err = fs.LoadOverride("AXVE")
	test.ExpectSuccess(t, curated.Is(err, overrides.NotFound))

	// records without an identity can not be saved
	test.ExpectFailure(t, fs.SaveOverride(gamepak.Record{}))
}

func TestFileStoreEmptyList(t *testing.T) {
	fs := overrides.NewFileStore(filepath.Join(t.TempDir(), "overrides"))
	w := &test.Writer{}
	test.ExpectSuccess(t, fs.List(w))
	test.ExpectEquality(t, w.String(), "no overrides\n")
}

func TestLayered(t *testing.T) {
	fs := overrides.NewFileStore(filepath.Join(t.TempDir(), "overrides"))
	l := overrides.NewLayered(fs)

	// from the built-in table
	rec, err := l.LoadOverride("V49E")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec.Hardware, gamepak.Override(gamepak.NewHardwareSet(gamepak.Rumble)))

	// stored save type is laid over the built-in hardware
	stored := gamepak.Record{Identity: "V49E", SaveType: gamepak.SaveEEPROM}
	test.DemandSuccess(t, fs.SaveOverride(stored))
	rec, err = l.LoadOverride("V49E")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec, gamepak.Record{
		Identity: "V49E",
		SaveType: gamepak.SaveEEPROM,
		Hardware: gamepak.Override(gamepak.NewHardwareSet(gamepak.Rumble)),
	})

	// stored hardware replaces the built-in hardware
	stored = gamepak.Record{Identity: "V49E", Hardware: gamepak.Override(gamepak.NewHardwareSet(gamepak.RealTimeClock))}
	test.DemandSuccess(t, fs.SaveOverride(stored))
	rec, err = l.LoadOverride("V49E")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec, stored)

	// stored record that overrides nothing leaves the built-in entry alone
	test.DemandSuccess(t, fs.SaveOverride(gamepak.Record{Identity: "V49E"}))
	rec, err = l.LoadOverride("V49E")
	test.ExpectSuccess(t, err)
	builtin, err := overrides.Builtin("V49E")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rec, builtin)

	// stored record for an identity not in the built-in table
	stored = gamepak.Record{Identity: "ABCE", SaveType: gamepak.SaveSRAM}
	test.DemandSuccess(t, fs.SaveOverride(stored))
	rec, err = l.LoadOverride("ABCE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec, stored)

	_, err = l.LoadOverride("ZZZZ")
	test.ExpectSuccess(t, curated.Is(err, overrides.NotFound))

	// without a store
	l = overrides.NewLayered(nil)
	rec, err = l.LoadOverride("KHPJ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec.Identity, "KHPJ")
}
