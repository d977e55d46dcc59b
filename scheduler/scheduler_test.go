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

package scheduler_test

import (
	"os"
	"syscall"
	"testing"

	"github.com/kxomon/kxomon/control"
	"github.com/kxomon/kxomon/curated"
	"github.com/kxomon/kxomon/movelog"
	"github.com/kxomon/kxomon/pollfd"
	"github.com/kxomon/kxomon/protocol"
	"github.com/kxomon/kxomon/scheduler"
	"github.com/kxomon/kxomon/tasks"
	"github.com/kxomon/kxomon/terminal/easyterm"
	"github.com/kxomon/kxomon/test"
)

type source struct {
	polls int
	data  [][]byte
}

func (s *source) Ready() (bool, error) {
	s.polls++
	return len(s.data) > 0, nil
}

func (s *source) Read(p []byte) (int, error) {
	if len(s.data) == 0 {
		return 0, curated.Errorf(pollfd.NotReady, "source")
	}
	d := s.data[0]
	s.data = s.data[1:]
	return copy(p, d), nil
}

type record struct {
	rec []byte
}

func (r *record) ReadAt(p []byte, off int64) (int, error) {
	return copy(p, r.rec[off:]), nil
}

func (r *record) WriteAt(p []byte, off int64) (int, error) {
	return copy(r.rec[off:], p), nil
}

func (r *record) Close() error {
	return nil
}

// monitor is the keyboard and display tasks wired together in the same way
// as the kxomon program
type monitor struct {
	keys   *source
	device *source
	rec    *record
	ctrl   *control.Client
	moves  *movelog.Reconstructor
	kb     *tasks.Keyboard
	disp   *tasks.Display
	sched  *scheduler.Scheduler
	out    *test.CompareWriter
}

func newMonitor() *monitor {
	m := &monitor{
		keys:   &source{},
		device: &source{},
		rec:    &record{rec: []byte("1 0 0\n")},
		moves:  &movelog.Reconstructor{},
		out:    &test.CompareWriter{},
	}
	m.ctrl = control.NewClient(func() (control.Resource, error) {
		return m.rec, nil
	})
	m.kb = tasks.NewKeyboard(m.keys, m.ctrl, m.ctrl.Flags(), m.out)
	m.disp = tasks.NewDisplay(m.device, m.ctrl.Flags(), m.moves, m.out)
	m.sched = scheduler.NewScheduler(0, m.kb, m.disp)
	return m
}

func frame(cells map[int]protocol.Cell) []byte {
	var f protocol.Frame
	for i, c := range cells {
		f.Board[i] = c
	}
	return protocol.Encode(f)
}

func TestDisplayToggle(t *testing.T) {
	m := newMonitor()

	// display is on so the device is polled every tick
	test.ExpectSuccess(t, m.sched.Tick())
	test.ExpectEquality(t, m.device.polls, 1)

	// the keyboard task runs first so the display is off for the rest of the
	// tick
	m.keys.data = append(m.keys.data, []byte{easyterm.KeyCtrlP})
	for n := 0; n < 5; n++ {
		test.ExpectSuccess(t, m.sched.Tick())
	}
	test.ExpectEquality(t, m.device.polls, 1)
	test.ExpectEquality(t, m.keys.polls, 6)

	// turning the display back on resumes polling straight away
	m.keys.data = append(m.keys.data, []byte{easyterm.KeyCtrlP})
	test.ExpectSuccess(t, m.sched.Tick())
	test.ExpectEquality(t, m.device.polls, 2)
}

func TestTerminate(t *testing.T) {
	m := newMonitor()

	m.device.data = append(m.device.data, frame(map[int]protocol.Cell{5: protocol.PlayerO}))
	test.ExpectSuccess(t, m.sched.Tick())
	test.ExpectEquality(t, m.moves.Log().String(), "Game 0:")

	m.keys.data = append(m.keys.data, []byte{easyterm.KeyCtrlQ})

	// both tasks see the End flag in the same tick and the scheduler stops
	m.sched.Run()
	test.ExpectEquality(t, m.sched.Ticks(), 2)
	test.ExpectSuccess(t, m.kb.Finished())
	test.ExpectSuccess(t, m.disp.Finished())
	test.ExpectEquality(t, string(m.rec.rec), "1 0 1\n")
}

func TestEndFlagSetOutsideTasks(t *testing.T) {
	m := newMonitor()
	test.ExpectSuccess(t, m.sched.Tick())

	// the End flag set between ticks is seen by both tasks on their next
	// resume
	m.ctrl.Flags().End = true
	test.ExpectFailure(t, m.sched.Tick())
	test.ExpectSuccess(t, m.kb.Finished())
	test.ExpectSuccess(t, m.disp.Finished())
	test.ExpectEquality(t, m.keys.polls, 1)
	test.ExpectEquality(t, m.device.polls, 1)
}

func TestInterrupt(t *testing.T) {
	m := newMonitor()

	sig := make(chan os.Signal, 1)
	m.sched.SetInterrupt(sig, func() {
		m.ctrl.RequestTerminate()
	})

	test.ExpectSuccess(t, m.sched.Tick())

	sig <- syscall.SIGINT
	m.sched.Run()
	test.ExpectEquality(t, m.sched.Ticks(), 2)
	test.ExpectEquality(t, string(m.rec.rec), "1 0 1\n")
}
