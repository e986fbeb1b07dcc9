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

package curated_test

import (
	"errors"
	"os"
	"testing"

	"github.com/jetsetilly/gamepak/curated"
	"github.com/jetsetilly/gamepak/test"
)

const testPattern = "test: %v"
const notFound = "not found: %s"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test: foo")

	// wrapping errors of the same type next to each other causes one of
	// them to be dropped
	f := curated.Errorf(testPattern, e)
	test.ExpectEquality(t, f.Error(), "test: foo")

	g := curated.Errorf("outer: %v", f)
	test.ExpectEquality(t, g.Error(), "outer: test: foo")
}

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(notFound, "AXVE")
	f := curated.Errorf(testPattern, e)

	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))

	test.ExpectSuccess(t, curated.Is(e, notFound))
	test.ExpectFailure(t, curated.Is(f, notFound))
	test.ExpectSuccess(t, curated.Has(f, notFound))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectFailure(t, curated.Has(f, "other"))
	test.ExpectFailure(t, curated.Has(nil, notFound))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("store: %v", os.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(e, os.ErrNotExist))

	f := curated.Errorf("store: %s", "no error value")
	test.ExpectSuccess(t, errors.Unwrap(f) == nil)
}
