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

package session

import (
	"strings"

	"github.com/jetsetilly/gamepak/cartridge"
	"github.com/jetsetilly/gamepak/cartridgeloader"
	"github.com/jetsetilly/gamepak/curated"
	"github.com/jetsetilly/gamepak/gamepak"
	"github.com/jetsetilly/gamepak/logger"
	"github.com/jetsetilly/gamepak/notifications"
	"github.com/jetsetilly/gamepak/overrides"
)

// Source describes where the save type and hardware of a running session
// came from.
type Source int

// List of valid Source values. Values can be combined.
const (
	SourceDetected Source = 0
	SourceLookup   Source = 1 << iota
	SourcePending
)

func (s Source) String() string {
	if s == SourceDetected {
		return "detected"
	}
	var p []string
	if s&SourceLookup == SourceLookup {
		p = append(p, "stored")
	}
	if s&SourcePending == SourcePending {
		p = append(p, "user")
	}
	return strings.Join(p, "+")
}

// Session implements the gamepak.Session interface.
type Session struct {
	lookup overrides.Lookup

	subscribers []notifications.Notify

	loaded   bool
	loader   cartridgeloader.Loader
	cart     cartridge.Cartridge
	saveType gamepak.SaveType
	hardware gamepak.HardwareSet
	source   Source

	pending    gamepak.Record
	hasPending bool
}

// NewSession is the preferred method of initialisation for the Session type.
// The lookup argument is used to find stored overrides and can be nil.
func NewSession(lookup overrides.Lookup) *Session {
	return &Session{
		lookup: lookup,
	}
}

// Subscribe adds a recipient of session notifications.
func (s *Session) Subscribe(n notifications.Notify) {
	s.subscribers = append(s.subscribers, n)
}

func (s *Session) notify(notice notifications.Notice) {
	for _, n := range s.subscribers {
		if err := n.Notify(notice); err != nil {
			logger.Logf(logger.Allow, "session", "%s: %v", notice, err)
		}
	}
}

// Start a session with the cartridge specified by the loader. Any running
// session is stopped first.
func (s *Session) Start(cl cartridgeloader.Loader) error {
	if s.loaded {
		s.Stop()
	}

	if err := cl.Load(); err != nil {
		return curated.Errorf("session: %v", err)
	}

	cart, err := cartridge.Examine(cl.Data)
	if err != nil {
		return curated.Errorf("session: %v", err)
	}
	if !cart.Header.ChecksumValid {
		logger.Logf(logger.Allow, "session", "%s: header checksum is incorrect", cl.ShortName())
	}

	// multiboot images run from work RAM and have no save memory
	if cl.Multiboot {
		cart.SaveType = gamepak.SaveNone
	}

	s.loader = cl
	s.cart = cart
	s.saveType = cart.SaveType
	s.hardware = cart.Hardware
	s.source = SourceDetected

	logger.Logf(logger.Allow, "session", "detected %s: save=%s, hardware=%s", cart.Header, s.saveType, s.hardware)

	if s.lookup != nil {
		rec, err := s.lookup.LoadOverride(cart.Header.Identity())
		if err == nil {
			if s.apply(rec) {
				s.source |= SourceLookup
			}
		} else if !curated.Is(err, overrides.NotFound) {
			logger.Logf(logger.Allow, "session", "%v", err)
		}
	}

	if s.hasPending {
		if s.apply(s.pending) {
			s.source |= SourcePending
		}
	}

	s.loaded = true

	logger.Logf(logger.Allow, "session", "started %s: save=%s, hardware=%s (%s)",
		s.Identity(), s.saveType, s.hardware, s.source)

	s.notify(notifications.NotifySessionStarted)
	if s.source != SourceDetected {
		s.notify(notifications.NotifyOverrideApplied)
	}

	return nil
}

// apply the fields of the record that are overridden. returns true if
// anything was overridden
func (s *Session) apply(rec gamepak.Record) bool {
	if rec.SaveType != gamepak.SaveAutoDetect {
		s.saveType = rec.SaveType
	}
	if set, ok := rec.Hardware.Set(); ok {
		s.hardware = set
	}
	return rec.Active()
}

// Stop the session. Does nothing if the session is not running.
func (s *Session) Stop() {
	if !s.loaded {
		return
	}

	logger.Logf(logger.Allow, "session", "stopped %s", s.Identity())

	s.loaded = false
	s.loader = cartridgeloader.Loader{}
	s.cart = cartridge.Cartridge{}
	s.saveType = gamepak.SaveAutoDetect
	s.hardware = gamepak.HardwareNone
	s.source = SourceDetected

	s.notify(notifications.NotifySessionStopped)
}

// IsLoaded implements the gamepak.Session interface.
func (s *Session) IsLoaded() bool {
	return s.loaded
}

// Identity implements the gamepak.Session interface.
func (s *Session) Identity() string {
	return s.cart.Header.Identity()
}

// SaveType implements the gamepak.Session interface.
func (s *Session) SaveType() gamepak.SaveType {
	return s.saveType
}

// HardwareEnabled implements the gamepak.Session interface.
func (s *Session) HardwareEnabled() gamepak.HardwareSet {
	return s.hardware
}

// SetOverride implements the gamepak.Session interface. The override is used
// the next time a cartridge is started. It does not change a running session.
func (s *Session) SetOverride(rec gamepak.Record) {
	s.pending = rec
	s.hasPending = true
	logger.Logf(logger.Allow, "session", "pending override: %s", rec)
}

// ClearOverride implements the gamepak.Session interface.
func (s *Session) ClearOverride() {
	if s.hasPending {
		logger.Log(logger.Allow, "session", "pending override cleared")
	}
	s.pending = gamepak.Record{}
	s.hasPending = false
}

// PendingOverride returns the override that will be used when the next
// cartridge is started.
func (s *Session) PendingOverride() (gamepak.Record, bool) {
	return s.pending, s.hasPending
}

// Cartridge returns information about the running cartridge.
func (s *Session) Cartridge() cartridge.Cartridge {
	return s.cart
}

// Loader returns the loader used to start the session.
func (s *Session) Loader() cartridgeloader.Loader {
	return s.loader
}

// Source returns where the save type and hardware came from.
func (s *Session) Source() Source {
	return s.source
}
