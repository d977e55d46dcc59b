// This file is part of kxomon.
//
// kxomon is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// kxomon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with kxomon.  If not, see <https://www.gnu.org/licenses/>.

// Package status checks that the kxo kernel module is ready before the
// monitor starts.
package status

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/kxomon/kxomon/curated"
)

// Live is the content of the status file when the module is ready.
const Live = "live"

// InvalidStatus is the error pattern returned by Check().
const InvalidStatus = "kxo status : %s"

// NotLoaded is the status reported when the status file does not exist.
const NotLoaded = "not loaded"

// Check reads the first line of the status file. Returns an error unless the
// line is exactly Live.
func Check(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(InvalidStatus, NotLoaded)
		}
		return curated.Errorf(InvalidStatus, err)
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	var line string
	if s.Scan() {
		line = s.Text()
	}
	if err := s.Err(); err != nil {
		return curated.Errorf(InvalidStatus, err)
	}

	line = strings.TrimRight(line, "\r")
	if line != Live {
		return curated.Errorf(InvalidStatus, line)
	}

	return nil
}
