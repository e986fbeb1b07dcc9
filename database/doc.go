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

// Package database is a very simple way of storing structured and arbitrary
// entry types. It's as simple as simple can be but is still useful in helping
// to organise what is essentially a flat file.
//
// Use of a database requires starting a "session". We do this with the
// StartSession() function, coupled with an EndSession() once we're done. For
// example (error handling removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityModifying, initDBSession)
//	defer db.EndSession(true)
//
// The first argument is the path to the database file. The second argument is
// the type of activity that will be happening during the session. With
// ActivityCreating the file is created if it does not already exist. With
// ActivityReading the database can not be changed and EndSession() will never
// write to the file.
//
// The third argument is the initialisation function. It is used to register
// the entry types that might be found in the database:
//
//	func initDBSession(db *database.Session) error {
//		return db.RegisterEntryType("override", deserialiseOverride)
//	}
//
// Each line of the database file is an entry. The first two fields of every
// line are the key and the entry type. The remaining fields are passed to the
// deserialiser registered for the entry type.
//
//	000,override,AXVE,FLASH1M,0x0001
//
// Fields are separated by commas. Entry types must make sure their fields do
// not contain commas or new lines.
package database
