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
	"sort"

	"github.com/jetsetilly/gamepak/curated"
	"github.com/jetsetilly/gamepak/gamepak"
)

var (
	rtc        = gamepak.NewHardwareSet(gamepak.RealTimeClock)
	rtcLight   = gamepak.NewHardwareSet(gamepak.RealTimeClock, gamepak.LightSensor)
	gyroRumble = gamepak.NewHardwareSet(gamepak.Gyroscope, gamepak.Rumble)
	tilt       = gamepak.NewHardwareSet(gamepak.TiltSensor)
	rumble     = gamepak.NewHardwareSet(gamepak.Rumble)
)

// cartridges with hardware that is not detected automatically, indexed by
// game code
var builtin = map[string]gamepak.Record{
	// Pokemon Ruby
	"AXVJ": {SaveType: gamepak.SaveFlash1M, Hardware: gamepak.Override(rtc)},
	"AXVE": {SaveType: gamepak.SaveFlash1M, Hardware: gamepak.Override(rtc)},
	"AXVP": {SaveType: gamepak.SaveFlash1M, Hardware: gamepak.Override(rtc)},

	// Pokemon Sapphire
	"AXPJ": {SaveType: gamepak.SaveFlash1M, Hardware: gamepak.Override(rtc)},
	"AXPE": {SaveType: gamepak.SaveFlash1M, Hardware: gamepak.Override(rtc)},
	"AXPP": {SaveType: gamepak.SaveFlash1M, Hardware: gamepak.Override(rtc)},

	// Pokemon Emerald
	"BPEJ": {SaveType: gamepak.SaveFlash1M, Hardware: gamepak.Override(rtc)},
	"BPEE": {SaveType: gamepak.SaveFlash1M, Hardware: gamepak.Override(rtc)},
	"BPEP": {SaveType: gamepak.SaveFlash1M, Hardware: gamepak.Override(rtc)},

	// Pokemon FireRed and LeafGreen
	"BPRJ": {SaveType: gamepak.SaveFlash1M, Hardware: gamepak.DoNotOverride},
	"BPRE": {SaveType: gamepak.SaveFlash1M, Hardware: gamepak.DoNotOverride},
	"BPGJ": {SaveType: gamepak.SaveFlash1M, Hardware: gamepak.DoNotOverride},
	"BPGE": {SaveType: gamepak.SaveFlash1M, Hardware: gamepak.DoNotOverride},

	// Boktai
	"U3IJ": {Hardware: gamepak.Override(rtcLight)},
	"U3IE": {Hardware: gamepak.Override(rtcLight)},
	"U3IP": {Hardware: gamepak.Override(rtcLight)},

	// Boktai 2
	"U32J": {Hardware: gamepak.Override(rtcLight)},
	"U32E": {Hardware: gamepak.Override(rtcLight)},
	"U32P": {Hardware: gamepak.Override(rtcLight)},

	// Boktai 3
	"U33J": {Hardware: gamepak.Override(rtcLight)},

	// WarioWare: Twisted
	"RZWJ": {Hardware: gamepak.Override(gyroRumble)},
	"RZWE": {Hardware: gamepak.Override(gyroRumble)},
	"RZWP": {Hardware: gamepak.Override(gyroRumble)},

	// Yoshi's Universal Gravitation / Topsy-Turvy
	"KYGJ": {Hardware: gamepak.Override(tilt)},
	"KYGE": {Hardware: gamepak.Override(tilt)},
	"KYGP": {Hardware: gamepak.Override(tilt)},

	// Koro Koro Puzzle: Happy Panechu!
	"KHPJ": {Hardware: gamepak.Override(tilt)},

	// Drill Dozer
	"V49J": {Hardware: gamepak.Override(rumble)},
	"V49E": {Hardware: gamepak.Override(rumble)},
}

// Builtin returns the built-in override for the identity. Returns a NotFound
// error if there is no built-in override.
func Builtin(identity string) (gamepak.Record, error) {
	rec, ok := builtin[identity]
	if !ok {
		return gamepak.Record{}, curated.Errorf(NotFound, identity)
	}
	rec.Identity = identity
	return rec, nil
}

// BuiltinIdentities returns the identities in the built-in table in sorted
// order.
func BuiltinIdentities() []string {
	ids := make([]string, 0, len(builtin))
	for id := range builtin {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// builtinLookup is the built-in table as a Lookup
type builtinLookup struct{}

func (builtinLookup) LoadOverride(identity string) (gamepak.Record, error) {
	return Builtin(identity)
}
