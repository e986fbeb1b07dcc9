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

package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gamepak/cartridgeloader"
	"github.com/jetsetilly/gamepak/curated"
	"github.com/jetsetilly/gamepak/test"
)

func TestExtensions(t *testing.T) {
	cl, err := cartridgeloader.NewLoader("roms/Game.gba")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, cl.Multiboot)
	test.ExpectEquality(t, cl.ShortName(), "Game")

	cl, err = cartridgeloader.NewLoader("roms/demo.Mb")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, cl.Multiboot)

	_, err = cartridgeloader.NewLoader("roms/pitfall.a26")
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnsupportedExtension))
}

func TestLoadFile(t *testing.T) {
	data := []byte("not really a rom")
	fn := filepath.Join(t.TempDir(), "test.gba")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0600))

	cl, err := cartridgeloader.NewLoader(fn)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cl.HasLoaded())

	test.ExpectSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, string(cl.Data), string(data))
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))

	// loading again is not an error
	test.ExpectSuccess(t, cl.Load())

	// hash mismatch
	cl, _ = cartridgeloader.NewLoader(fn)
	cl.Hash = "0000"
	err = cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnexpectedHash))
	test.ExpectFailure(t, cl.HasLoaded())

	// missing file
	cl, _ = cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.gba"))
	test.ExpectFailure(t, cl.Load())
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game.gba" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("rom data"))
	}))
	defer srv.Close()

	cl, err := cartridgeloader.NewLoader(srv.URL + "/game.gba")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, string(cl.Data), "rom data")

	cl, err = cartridgeloader.NewLoader(srv.URL + "/other.gba")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cl.Load())
}

func TestUnsupportedScheme(t *testing.T) {
	cl, err := cartridgeloader.NewLoader("ftp://example.com/game.gba")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cl.Load())
}
