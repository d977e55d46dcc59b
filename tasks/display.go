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

package tasks

import (
	"io"

	"github.com/kxomon/kxomon/control"
	"github.com/kxomon/kxomon/logger"
	"github.com/kxomon/kxomon/movelog"
	"github.com/kxomon/kxomon/protocol"
	"github.com/kxomon/kxomon/render"
)

type displayPoint int

// resume points of the display task
const (
	displayTop displayPoint = iota
	displayPoll
	displayRead
	displayRender
)

// Display reads frames from the device, updates the move log and draws the
// board.
type Display struct {
	device Source
	flags  *control.Flags
	moves  *movelog.Reconstructor
	output io.Writer

	point    displayPoint
	finished bool

	// frame data carried from displayRead to displayRender
	buf   [protocol.FrameSize]byte
	frame protocol.Frame
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(device Source, flags *control.Flags, moves *movelog.Reconstructor, output io.Writer) *Display {
	return &Display{
		device: device,
		flags:  flags,
		moves:  moves,
		output: output,
	}
}

func (d *Display) String() string {
	return "display"
}

// Finished returns true once the task has seen the End flag.
func (d *Display) Finished() bool {
	return d.finished
}

// Resume the task from where it last suspended.
func (d *Display) Resume() {
	for !d.finished {
		switch d.point {
		case displayTop:
			if d.flags.End {
				d.finished = true
				return
			}

			// the device is not polled while the display is off
			if !d.flags.Display {
				return
			}
			d.point = displayPoll

		case displayPoll:
			d.point = displayTop

			ready, err := d.device.Ready()
			if err != nil {
				logTransient("display", err)
				return
			}
			if !ready {
				return
			}
			d.point = displayRead

		case displayRead:
			// a failed read or a bad frame is skipped. the task tries again
			// on the next resume
			d.point = displayTop

			n, err := d.device.Read(d.buf[:])
			if err != nil {
				logTransient("display", err)
				return
			}

			d.frame, err = protocol.Decode(d.buf[:n])
			if err != nil {
				logger.Log(logger.Allow, "display", err)
				return
			}
			d.point = displayRender

		case displayRender:
			d.point = displayTop

			d.moves.Observe(d.frame.Board)
			if err := render.Frame(d.output, d.frame); err != nil {
				logger.Log(logger.Allow, "display", err)
			}
			return
		}
	}
}
