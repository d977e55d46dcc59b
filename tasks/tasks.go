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

// Package tasks contains the two units of work driven by the scheduler: the
// keyboard task and the display task.
//
// Each task is a hand written coroutine. A call to Resume() runs the task
// until it would have to wait for input, at which point it records where it
// is and returns. The next call to Resume() continues from the recorded
// point. Anything that must survive between calls is kept in the task's own
// struct.
//
// No task ever blocks. Input sources are polled with a zero timeout and an
// unready source means the task suspends and tries again on the next resume.
//
// Both tasks finish only when they see the End flag at the top of their
// loop. Errors are logged to the central logger and never returned.
package tasks

import (
	"github.com/kxomon/kxomon/curated"
	"github.com/kxomon/kxomon/logger"
	"github.com/kxomon/kxomon/pollfd"
)

// Source is an input that can be polled without blocking.
type Source interface {
	// Ready returns true if a call to Read() will not block.
	Ready() (bool, error)
	Read(p []byte) (int, error)
}

// Controller is the interface to the control channel used by the keyboard
// task.
type Controller interface {
	ToggleDisplay() error
	RequestTerminate() error
}

// logs the error unless it only means that there was nothing to read
func logTransient(tag string, err error) {
	if curated.Is(err, pollfd.NotReady) {
		return
	}
	logger.Log(logger.Allow, tag, err)
}
