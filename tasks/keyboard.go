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
	"fmt"
	"io"

	"github.com/kxomon/kxomon/control"
	"github.com/kxomon/kxomon/logger"
	"github.com/kxomon/kxomon/terminal/easyterm"
)

type keyboardPoint int

// resume points of the keyboard task
const (
	keyboardTop keyboardPoint = iota
	keyboardPoll
	keyboardDispatch
)

// Keyboard reads key presses and sends commands to the control channel.
type Keyboard struct {
	input  Source
	ctrl   Controller
	flags  *control.Flags
	output io.Writer

	point    keyboardPoint
	finished bool

	// the key read in keyboardPoll and handled in keyboardDispatch
	key [1]byte
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
// Messages about the effect of a key press are written to output.
func NewKeyboard(input Source, ctrl Controller, flags *control.Flags, output io.Writer) *Keyboard {
	return &Keyboard{
		input:  input,
		ctrl:   ctrl,
		flags:  flags,
		output: output,
	}
}

func (k *Keyboard) String() string {
	return "keyboard"
}

// Finished returns true once the task has seen the End flag.
func (k *Keyboard) Finished() bool {
	return k.finished
}

// Resume the task from where it last suspended.
func (k *Keyboard) Resume() {
	for !k.finished {
		switch k.point {
		case keyboardTop:
			if k.flags.End {
				k.finished = true
				return
			}
			k.point = keyboardPoll

		case keyboardPoll:
			// whatever happens next, a suspension from here restarts at the top
			k.point = keyboardTop

			ready, err := k.input.Ready()
			if err != nil {
				logTransient("keyboard", err)
				return
			}
			if !ready {
				return
			}

			n, err := k.input.Read(k.key[:])
			if err != nil {
				logTransient("keyboard", err)
				return
			}
			if n != len(k.key) {
				return
			}
			k.point = keyboardDispatch

		case keyboardDispatch:
			k.dispatch(k.key[0])
			k.point = keyboardTop
			if k.flags.End {
				k.finished = true
			}
			return
		}
	}
}

func (k *Keyboard) dispatch(key byte) {
	switch key {
	case easyterm.KeyCtrlP:
		if err := k.ctrl.ToggleDisplay(); err != nil {
			logger.Log(logger.Allow, "keyboard", err)
		}
		if !k.flags.Display {
			fmt.Fprint(k.output, "Stopping to display the chess board...\n")
		}

	case easyterm.KeyCtrlQ, easyterm.KeyInterrupt:
		if err := k.ctrl.RequestTerminate(); err != nil {
			logger.Log(logger.Allow, "keyboard", err)
		}
		fmt.Fprint(k.output, "Stopping the kernel space tic-tac-toe game...\n")
	}
}
