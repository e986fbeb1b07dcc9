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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/jetsetilly/gamepak/curated"
)

// Sentinal error patterns.
const (
	UnsupportedExtension = "cartridgeloader: unsupported file extension (%s)"
	UnexpectedHash       = "cartridgeloader: unexpected hash value (%s)"
	TooLarge             = "cartridgeloader: data is too large (%d bytes)"
)

// the largest cartridge ROM that can be addressed by the console
const maxSize = 32 * 1024 * 1024

// timeout for loading over HTTP
const httpTimeout = 30 * time.Second

// Loader is used to specify the cartridge to load into the session.
type Loader struct {
	// filename or URL of the cartridge
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte

	// multiboot images are small programs transferred over the link cable.
	// they have a cartridge header but no save hardware
	Multiboot bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The filename extension must be one of the extensions in FileExtensions.
// Alphabetic characters in file extensions can be in upper or lower case.
func NewLoader(filename string) (Loader, error) {
	cl := Loader{
		Filename: filename,
	}

	ext := strings.ToUpper(path.Ext(filename))

	supported := false
	for _, e := range FileExtensions {
		if e == ext {
			supported = true
			break // for loop
		}
	}
	if !supported {
		return Loader{}, curated.Errorf(UnsupportedExtension, ext)
	}

	for _, e := range multibootExtensions {
		if e == ext {
			cl.Multiboot = true
		}
	}

	return cl, nil
}

// ShortName returns a shortened version of the CartridgeLoader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(filepath.ToSlash(cl.Filename))
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(shortCartName))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Filenames with a URL scheme will use that method to
// load the data. Currently supported schemes are HTTP(S) and local files.
//
// Calling Load() on a Loader that has already loaded is not an error and
// does nothing.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil && len(u.Scheme) > 1 {
		// a single letter scheme is a windows drive letter
		scheme = strings.ToLower(u.Scheme)
	}

	var data []byte
	var err error

	switch scheme {
	case "http", "https":
		data, err = loadHTTP(cl.Filename)
	case "file":
		data, err = loadFile(strings.TrimPrefix(cl.Filename, "file://"))
	default:
		return curated.Errorf("cartridgeloader: unsupported URL scheme (%s)", scheme)
	}
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	if len(data) > maxSize {
		return curated.Errorf(TooLarge, len(data))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}

func loadHTTP(u string) ([]byte, error) {
	client := http.Client{Timeout: httpTimeout}

	resp, err := client.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s", resp.Status)
	}

	// read one byte more than the maximum so that oversized data is noticed
	return io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
}

func loadFile(fn string) ([]byte, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, maxSize+1))
}
