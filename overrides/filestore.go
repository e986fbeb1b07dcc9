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
	"io"
	"sort"

	"github.com/jetsetilly/gamepak/curated"
	"github.com/jetsetilly/gamepak/database"
	"github.com/jetsetilly/gamepak/gamepak"
)

const overrideEntryType = "override"

// overrideEntry is the database.Entry for a single override record
type overrideEntry struct {
	rec gamepak.Record
}

func (ent *overrideEntry) EntryType() string {
	return overrideEntryType
}

func (ent *overrideEntry) String() string {
	return ent.rec.String()
}

func (ent *overrideEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		ent.rec.Identity,
		EncodeSaveType(ent.rec.SaveType),
		formatHardware(ent.rec.Hardware),
	}, nil
}

func (ent *overrideEntry) CleanUp() error {
	return nil
}

func deserialiseOverrideEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != 3 {
		return nil, curated.Errorf("overrides: wrong number of fields in override entry (%d)", len(fields))
	}

	if err := ValidIdentity(fields[0]); err != nil {
		return nil, err
	}

	st, err := DecodeSaveType(fields[1])
	if err != nil {
		return nil, err
	}

	hw, err := parseHardware(fields[2])
	if err != nil {
		return nil, err
	}

	return &overrideEntry{
		rec: gamepak.Record{
			Identity: fields[0],
			SaveType: st,
			Hardware: hw,
		},
	}, nil
}

func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(overrideEntryType, deserialiseOverrideEntry)
}

// FileStore keeps override records in a flat file database. A database session
// is started for every operation so the file is never held open.
type FileStore struct {
	path string
}

// NewFileStore is the preferred method of initialisation for the FileStore
// type. The file is created when the first record is saved.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// find the key of the entry with the identity. returns -1 if there is no entry
func findKey(db *database.Session, identity string) (int, *overrideEntry) {
	key := -1
	var found *overrideEntry
	_, _ = db.SelectAll(func(k int, ent database.Entry) error {
		if o, ok := ent.(*overrideEntry); ok && o.rec.Identity == identity {
			key = k
			found = o
		}
		return nil
	})
	return key, found
}

// SaveOverride implements the Store and gamepak.Store interfaces.
func (fs *FileStore) SaveOverride(rec gamepak.Record) error {
	if err := ValidIdentity(rec.Identity); err != nil {
		return err
	}

	db, err := database.StartSession(fs.path, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf("overrides: %v", err)
	}

	if key, _ := findKey(db, rec.Identity); key >= 0 {
		if err := db.Delete(key); err != nil {
			db.EndSession(false)
			return curated.Errorf("overrides: %v", err)
		}
	}

	if _, err := db.Add(&overrideEntry{rec: rec}); err != nil {
		db.EndSession(false)
		return curated.Errorf("overrides: %v", err)
	}

	if err := db.EndSession(true); err != nil {
		return curated.Errorf("overrides: %v", err)
	}

	return nil
}

// read-only session. a missing file is the same as an empty database and
// the returned session will be nil
func (fs *FileStore) reader() (*database.Session, error) {
	db, err := database.StartSession(fs.path, database.ActivityReading, initDBSession)
	if err != nil {
		if fileMissing(fs.path) {
			return nil, nil
		}
		return nil, curated.Errorf("overrides: %v", err)
	}
	return db, nil
}

// LoadOverride implements the Lookup interface.
func (fs *FileStore) LoadOverride(identity string) (gamepak.Record, error) {
	db, err := fs.reader()
	if err != nil {
		return gamepak.Record{}, err
	}
	if db == nil {
		return gamepak.Record{}, curated.Errorf(NotFound, identity)
	}
	defer db.EndSession(false)

	_, ent := findKey(db, identity)
	if ent == nil {
		return gamepak.Record{}, curated.Errorf(NotFound, identity)
	}

	return ent.rec, nil
}

// DeleteOverride implements the Store interface.
func (fs *FileStore) DeleteOverride(identity string) error {
	if fileMissing(fs.path) {
		return curated.Errorf(NotFound, identity)
	}

	db, err := database.StartSession(fs.path, database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf("overrides: %v", err)
	}

	key, _ := findKey(db, identity)
	if key < 0 {
		db.EndSession(false)
		return curated.Errorf(NotFound, identity)
	}

	if err := db.Delete(key); err != nil {
		db.EndSession(false)
		return curated.Errorf("overrides: %v", err)
	}

	if err := db.EndSession(true); err != nil {
		return curated.Errorf("overrides: %v", err)
	}

	return nil
}

// Records implements the Store interface.
func (fs *FileStore) Records() ([]gamepak.Record, error) {
	db, err := fs.reader()
	if err != nil {
		return nil, err
	}
	if db == nil {
		return nil, nil
	}
	defer db.EndSession(false)

	var recs []gamepak.Record
	_, err = db.SelectAll(func(_ int, ent database.Entry) error {
		if o, ok := ent.(*overrideEntry); ok {
			recs = append(recs, o.rec)
		}
		return nil
	})
	if err != nil {
		return nil, curated.Errorf("overrides: %v", err)
	}

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Identity < recs[j].Identity
	})

	return recs, nil
}

// List implements the Store interface.
func (fs *FileStore) List(output io.Writer) error {
	recs, err := fs.Records()
	if err != nil {
		return err
	}
	return ListRecords(output, recs)
}

// Close implements the Store interface. The FileStore holds no resources
// between operations so Close does nothing.
func (fs *FileStore) Close() error {
	return nil
}
