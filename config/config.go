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

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/jetsetilly/gamepak/curated"
	"github.com/jetsetilly/gamepak/paths"
	"github.com/jetsetilly/gamepak/prefs"
)

// List of valid values for the Store preference.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreNone   = "none"
)

// default file names for the override databases. the file is placed in the
// resource path
const (
	defaultFileDatabase   = "overrides"
	defaultSQLiteDatabase = "overrides.db"
)

// Preferences defines and collates all the preference values used by the
// application.
type Preferences struct {
	dsk *prefs.Disk

	// which override store to use
	Store prefs.String

	// path to the override database. an empty string means the default
	// database for the store in the resource path
	Database prefs.String

	// forget cartridge identity when the session stops
	ClearIdentityOnStop prefs.Bool

	// echo log entries to stderr as they are created
	EchoLog prefs.Bool
}

// environment overrides. pointer fields are left nil if the variable is not
// set
type environment struct {
	Store               *string `env:"STORE"`
	Database            *string `env:"DB"`
	ClearIdentityOnStop *bool   `env:"CLEAR_IDENTITY"`
	EchoLog             *bool   `env:"ECHO_LOG"`
}

const envPrefix = "GAMEPAK_"

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file, the
// process environment and the command line stack.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("config: %v", err)
	}

	p, err := NewPreferencesFromFile(pth)
	if err != nil {
		return nil, err
	}

	err = p.Load(env.ToMap(os.Environ()))
	if err != nil {
		return nil, err
	}

	return p, nil
}

// NewPreferencesFromFile creates a Preferences instance backed by the named
// file. Default values are set but nothing is loaded. Call Load() to load
// values.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.Store.SetHookPre(func(v prefs.Value) error {
		switch strings.ToLower(v.(string)) {
		case StoreFile, StoreSQLite, StoreNone:
			return nil
		}
		return curated.Errorf("config: unrecognised store (%v)", v)
	})

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("config: %v", err)
	}

	err = p.dsk.Add("gamepak.store", &p.Store)
	if err != nil {
		return nil, curated.Errorf("config: %v", err)
	}
	err = p.dsk.Add("gamepak.database", &p.Database)
	if err != nil {
		return nil, curated.Errorf("config: %v", err)
	}
	err = p.dsk.Add("gamepak.clearIdentityOnStop", &p.ClearIdentityOnStop)
	if err != nil {
		return nil, curated.Errorf("config: %v", err)
	}
	err = p.dsk.Add("gamepak.echolog", &p.EchoLog)
	if err != nil {
		return nil, curated.Errorf("config: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.Store.Set(StoreFile); err != nil {
		return err
	}
	if err := p.Database.Set(""); err != nil {
		return err
	}
	if err := p.ClearIdentityOnStop.Set(false); err != nil {
		return err
	}
	return p.EchoLog.Set(false)
}

// Load preferences from disk, then from the environment and finally from the
// command line stack. The environ argument is a map of environment variable
// names to values and can be nil. A missing preferences file is not an error.
func (p *Preferences) Load(environ map[string]string) error {
	err := p.dsk.LoadFile()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return curated.Errorf("config: %v", err)
	}

	// a nil map would cause the process environment to be used
	if environ == nil {
		environ = map[string]string{}
	}

	var e environment
	err = env.ParseWithOptions(&e, env.Options{
		Environment: environ,
		Prefix:      envPrefix,
	})
	if err != nil {
		return curated.Errorf("config: environment: %v", err)
	}

	if e.Store != nil {
		if err := p.Store.Set(*e.Store); err != nil {
			return curated.Errorf("config: %sSTORE: %v", envPrefix, err)
		}
	}
	if e.Database != nil {
		if err := p.Database.Set(*e.Database); err != nil {
			return curated.Errorf("config: %sDB: %v", envPrefix, err)
		}
	}
	if e.ClearIdentityOnStop != nil {
		if err := p.ClearIdentityOnStop.Set(*e.ClearIdentityOnStop); err != nil {
			return curated.Errorf("config: %sCLEAR_IDENTITY: %v", envPrefix, err)
		}
	}
	if e.EchoLog != nil {
		if err := p.EchoLog.Set(*e.EchoLog); err != nil {
			return curated.Errorf("config: %sECHO_LOG: %v", envPrefix, err)
		}
	}

	if err := p.dsk.LoadCommandLine(); err != nil {
		return curated.Errorf("config: %v", err)
	}

	return nil
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if err := p.dsk.Save(); err != nil {
		return curated.Errorf("config: %v", err)
	}
	return nil
}

// StoreKind returns the normalised value of the Store preference.
func (p *Preferences) StoreKind() string {
	return strings.ToLower(p.Store.String())
}

// DatabasePath returns the path to the override database. If the Database
// preference is empty the default file for the selected store, in the
// resource path, is returned.
func (p *Preferences) DatabasePath() (string, error) {
	if db := p.Database.String(); db != "" {
		return db, nil
	}

	var fn string
	switch p.StoreKind() {
	case StoreFile:
		fn = defaultFileDatabase
	case StoreSQLite:
		fn = defaultSQLiteDatabase
	default:
		return "", curated.Errorf("config: no database for store (%s)", p.StoreKind())
	}

	pth, err := paths.ResourcePath("", fn)
	if err != nil {
		return "", curated.Errorf("config: %v", err)
	}
	return pth, nil
}

// Summary returns a one line description of the effective configuration.
func (p *Preferences) Summary() string {
	return fmt.Sprintf("store=%s database=%q clearIdentityOnStop=%v echolog=%v",
		p.StoreKind(), p.Database.String(), p.ClearIdentityOnStop.String(), p.EchoLog.String())
}
