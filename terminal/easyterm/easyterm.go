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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It puts the
// controlling terminal into the mode needed by the monitor, where single key
// presses are delivered immediately and without echo, and restores the
// original mode afterwards.
package easyterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the input terminal of the monitor.
type Terminal struct {
	fd uintptr

	canAttr unix.Termios
	monAttr unix.Termios
}

// Initialise the Terminal. The current terminal attributes are remembered and
// will be restored by CanonicalMode().
func (pt *Terminal) Initialise(input *os.File) error {
	if input == nil {
		return fmt.Errorf("easyterm: Terminal requires an input file")
	}
	pt.fd = input.Fd()

	if err := termios.Tcgetattr(pt.fd, &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	// disable software flow control so that ctrl-q and ctrl-s reach the
	// program. disable echo and line buffering
	pt.monAttr = pt.canAttr
	pt.monAttr.Iflag &^= unix.IXON
	pt.monAttr.Lflag &^= unix.ECHO | unix.ICANON

	return nil
}

// MonitorMode puts the terminal into the mode described in Initialise().
func (pt *Terminal) MonitorMode() error {
	return termios.Tcsetattr(pt.fd, termios.TCSAFLUSH, &pt.monAttr)
}

// CanonicalMode restores the terminal attributes that were in effect when
// Initialise() was called.
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.fd, termios.TCSAFLUSH, &pt.canAttr)
}
