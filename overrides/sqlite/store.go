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

// Package sqlite provides an SQLite backed override store. The database is
// created on first use. The store satisfies the overrides.Store interface.
package sqlite

import (
	"database/sql"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/jetsetilly/gamepak/curated"
	"github.com/jetsetilly/gamepak/gamepak"
	"github.com/jetsetilly/gamepak/overrides"
	"github.com/jonboulle/clockwork"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS overrides (
	identity   TEXT PRIMARY KEY NOT NULL,
	save_type  TEXT NOT NULL,
	hardware   INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
)`

// Store persists override records in SQLite.
type Store struct {
	sqlDB *sql.DB

	// timestamps of saved records are taken from the clock
	clock clockwork.Clock
}

// Option configures a Store when it is opened.
type Option func(*Store)

// WithClock sets the clock used to timestamp saved records. The default is
// the real clock.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// Open opens (creating if necessary) the SQLite database at path.
func Open(path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, curated.Errorf("sqlite: storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, curated.Errorf("sqlite: open: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, curated.Errorf("sqlite: ping: %v", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, curated.Errorf("sqlite: schema: %v", err)
	}

	s := &Store{
		sqlDB: sqlDB,
		clock: clockwork.NewRealClock(),
	}
	for _, o := range opts {
		o(s)
	}

	return s, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	err := s.sqlDB.Close()
	s.sqlDB = nil
	return err
}

func (s *Store) ready() error {
	if s == nil || s.sqlDB == nil {
		return curated.Errorf("sqlite: storage is not open")
	}
	return nil
}

// SaveOverride implements the overrides.Store interface. An existing record
// for the identity is replaced.
func (s *Store) SaveOverride(rec gamepak.Record) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := overrides.ValidIdentity(rec.Identity); err != nil {
		return err
	}

	_, err := s.sqlDB.Exec(
		`INSERT INTO overrides (identity, save_type, hardware, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(identity) DO UPDATE SET
		   save_type = excluded.save_type,
		   hardware = excluded.hardware,
		   updated_at = excluded.updated_at`,
		rec.Identity,
		overrides.EncodeSaveType(rec.SaveType),
		int64(overrides.EncodeHardware(rec.Hardware)),
		toMillis(s.clock.Now()),
	)
	if err != nil {
		return curated.Errorf("sqlite: save override: %v", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (gamepak.Record, error) {
	var rec gamepak.Record
	var st string
	var hw int64

	if err := row.Scan(&rec.Identity, &st, &hw); err != nil {
		return gamepak.Record{}, err
	}

	var err error
	rec.SaveType, err = overrides.DecodeSaveType(st)
	if err != nil {
		return gamepak.Record{}, err
	}
	if hw < 0 || hw > 0xffff {
		return gamepak.Record{}, curated.Errorf("sqlite: invalid hardware value (%d)", hw)
	}
	rec.Hardware, err = overrides.DecodeHardware(uint16(hw))
	if err != nil {
		return gamepak.Record{}, err
	}

	return rec, nil
}

// LoadOverride implements the overrides.Lookup interface.
func (s *Store) LoadOverride(identity string) (gamepak.Record, error) {
	if err := s.ready(); err != nil {
		return gamepak.Record{}, err
	}

	row := s.sqlDB.QueryRow(
		`SELECT identity, save_type, hardware FROM overrides WHERE identity = ?`,
		identity,
	)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return gamepak.Record{}, curated.Errorf(overrides.NotFound, identity)
		}
		return gamepak.Record{}, curated.Errorf("sqlite: load override: %v", err)
	}
	return rec, nil
}

// UpdatedAt returns the time the record for the identity was last saved.
func (s *Store) UpdatedAt(identity string) (time.Time, error) {
	if err := s.ready(); err != nil {
		return time.Time{}, err
	}

	var ms int64
	err := s.sqlDB.QueryRow(`SELECT updated_at FROM overrides WHERE identity = ?`, identity).Scan(&ms)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, curated.Errorf(overrides.NotFound, identity)
		}
		return time.Time{}, curated.Errorf("sqlite: updated at: %v", err)
	}
	return time.UnixMilli(ms).UTC(), nil
}

// DeleteOverride implements the overrides.Store interface.
func (s *Store) DeleteOverride(identity string) error {
	if err := s.ready(); err != nil {
		return err
	}

	res, err := s.sqlDB.Exec(`DELETE FROM overrides WHERE identity = ?`, identity)
	if err != nil {
		return curated.Errorf("sqlite: delete override: %v", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return curated.Errorf("sqlite: delete override: %v", err)
	}
	if n == 0 {
		return curated.Errorf(overrides.NotFound, identity)
	}
	return nil
}

// Records implements the overrides.Store interface.
func (s *Store) Records() ([]gamepak.Record, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.Query(`SELECT identity, save_type, hardware FROM overrides ORDER BY identity`)
	if err != nil {
		return nil, curated.Errorf("sqlite: list overrides: %v", err)
	}
	defer rows.Close()

	var recs []gamepak.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, curated.Errorf("sqlite: list overrides: %v", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, curated.Errorf("sqlite: list overrides: %v", err)
	}

	return recs, nil
}

// List implements the overrides.Store interface.
func (s *Store) List(output io.Writer) error {
	recs, err := s.Records()
	if err != nil {
		return err
	}
	return overrides.ListRecords(output, recs)
}
