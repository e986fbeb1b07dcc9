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

package sqlite_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gamepak/curated"
	"github.com/jetsetilly/gamepak/gamepak"
	"github.com/jetsetilly/gamepak/overrides"
	"github.com/jetsetilly/gamepak/overrides/sqlite"
	"github.com/jetsetilly/gamepak/test"
	"github.com/jonboulle/clockwork"
)

// the sqlite store must be usable everywhere a store is expected
var _ overrides.Store = (*sqlite.Store)(nil)
var _ gamepak.Store = (*sqlite.Store)(nil)

func openTestStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()
	pth := filepath.Join(t.TempDir(), "overrides.db")
	s, err := sqlite.Open(pth)
	test.DemandSuccess(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s, pth
}

func TestOpen(t *testing.T) {
	_, err := sqlite.Open("  ")
	test.ExpectFailure(t, err)
}

func TestStore(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.LoadOverride("AXVE")
	test.ExpectSuccess(t, curated.Is(err, overrides.NotFound))

	a := gamepak.Record{
		Identity: "AXVE",
		SaveType: gamepak.SaveFlash1M,
		Hardware: gamepak.Override(gamepak.NewHardwareSet(gamepak.RealTimeClock)),
	}
	test.ExpectSuccess(t, s.SaveOverride(a))

	rec, err := s.LoadOverride("AXVE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec, a)

	// upsert
	a.Hardware = gamepak.DoNotOverride
	a.SaveType = gamepak.SaveAutoDetect
	test.ExpectSuccess(t, s.SaveOverride(a))
	rec, err = s.LoadOverride("AXVE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec, a)

	// empty override set is distinct from no override
	b := gamepak.Record{Identity: "BPEE", Hardware: gamepak.Override(gamepak.HardwareNone)}
	test.ExpectSuccess(t, s.SaveOverride(b))
	rec, err = s.LoadOverride("BPEE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec, b)

	recs, err := s.Records()
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(recs), 2)
	test.ExpectEquality(t, recs[0].Identity, "AXVE")
	test.ExpectEquality(t, recs[1].Identity, "BPEE")

	w := &test.Writer{}
	test.ExpectSuccess(t, s.List(w))
	test.ExpectSuccess(t, len(w.String()) > 0)

	test.ExpectSuccess(t, s.DeleteOverride("AXVE"))
	test.ExpectSuccess(t, curated.Is(s.DeleteOverride("AXVE"), overrides.NotFound))

	test.ExpectFailure(t, s.SaveOverride(gamepak.Record{}))
}

func TestPersistence(t *testing.T) {
	s, pth := openTestStore(t)

	a := gamepak.Record{Identity: "RZWE", SaveType: gamepak.SaveSRAM}
	test.DemandSuccess(t, s.SaveOverride(a))
	test.DemandSuccess(t, s.Close())

	// closed store
	test.ExpectFailure(t, s.SaveOverride(a))

	s, err := sqlite.Open(pth)
	test.DemandSuccess(t, err)
	defer s.Close()

	rec, err := s.LoadOverride("RZWE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec, a)
}

func TestLayeredWithSQLite(t *testing.T) {
	s, _ := openTestStore(t)
	l := overrides.NewLayered(s)

	rec, err := l.LoadOverride("KYGE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec.Hardware, gamepak.Override(gamepak.NewHardwareSet(gamepak.TiltSensor)))

	test.DemandSuccess(t, s.SaveOverride(gamepak.Record{Identity: "KYGE"}))
	rec, err = l.LoadOverride("KYGE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec.Hardware, gamepak.Override(gamepak.NewHardwareSet(gamepak.TiltSensor)))

	// a stored save type does not hide the built-in hardware
	test.DemandSuccess(t, s.SaveOverride(gamepak.Record{Identity: "KYGE", SaveType: gamepak.SaveFlash512}))
	rec, err = l.LoadOverride("KYGE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec, gamepak.Record{
		Identity: "KYGE",
		SaveType: gamepak.SaveFlash512,
		Hardware: gamepak.Override(gamepak.NewHardwareSet(gamepak.TiltSensor)),
	})
}

func TestUpdatedAt(t *testing.T) {
	start := time.Date(2004, time.March, 18, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start)

	s, err := sqlite.Open(filepath.Join(t.TempDir(), "overrides.db"), sqlite.WithClock(clock))
	test.DemandSuccess(t, err)
	defer s.Close()

	_, err = s.UpdatedAt("BPEE")
	test.ExpectSuccess(t, curated.Is(err, overrides.NotFound))

	rec := gamepak.Record{Identity: "BPEE", SaveType: gamepak.SaveFlash1M}
	test.DemandSuccess(t, s.SaveOverride(rec))

	at, err := s.UpdatedAt("BPEE")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, at.Equal(start))

	// saving again moves the timestamp forward
	clock.Advance(time.Hour)
	test.DemandSuccess(t, s.SaveOverride(rec))

	at, err = s.UpdatedAt("BPEE")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, at.Equal(start.Add(time.Hour)))
}
