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

// Package scheduler drives the monitor's tasks. It is a single threaded round
// robin: every tick resumes each unfinished task once, in the order the tasks
// were given, and then sleeps for a short idle period so that tasks that are
// only polling do not use all of the CPU.
//
// There is no preemption. A task that blocked would stall every other task.
package scheduler

import (
	"os"
	"time"

	"github.com/kxomon/kxomon/assert"
	"github.com/kxomon/kxomon/logger"
)

// Task is a unit of work that can be resumed repeatedly until it is finished.
type Task interface {
	Resume()
	Finished() bool
}

// Scheduler resumes tasks in turn until all of them have finished.
type Scheduler struct {
	tasks []Task
	idle  time.Duration

	// interrupt signals are delivered here. they are checked once per tick
	// and onInterrupt is called on the scheduler's thread
	interrupt   <-chan os.Signal
	onInterrupt func()

	ticks int

	// tasks share state without locks so every tick must come from the same
	// goroutine
	owner *assert.Owner
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. Tasks are resumed in the order they are listed.
func NewScheduler(idle time.Duration, tasks ...Task) *Scheduler {
	return &Scheduler{
		tasks: tasks,
		idle:  idle,
		owner: assert.NewOwner("scheduler"),
	}
}

// SetInterrupt arranges for onInterrupt to be called during the tick after a
// signal arrives on the channel. The callback should cause the tasks to
// finish.
func (s *Scheduler) SetInterrupt(interrupt <-chan os.Signal, onInterrupt func()) {
	s.interrupt = interrupt
	s.onInterrupt = onInterrupt
}

// Ticks returns the number of ticks run so far.
func (s *Scheduler) Ticks() int {
	return s.ticks
}

// Tick resumes each unfinished task once. Returns false if all tasks are
// finished.
func (s *Scheduler) Tick() bool {
	s.owner.Claim()

	if s.interrupt != nil {
		select {
		case sig := <-s.interrupt:
			logger.Logf(logger.Allow, "scheduler", "%v signal", sig)
			if s.onInterrupt != nil {
				s.onInterrupt()
			}
		default:
		}
	}

	s.ticks++

	running := false
	for _, t := range s.tasks {
		if t.Finished() {
			continue
		}
		t.Resume()
		if !t.Finished() {
			running = true
		}
	}

	return running
}

// Run ticks until every task has finished.
func (s *Scheduler) Run() {
	for s.Tick() {
		time.Sleep(s.idle)
	}
	logger.Logf(logger.Allow, "scheduler", "all tasks finished after %d ticks", s.ticks)
}
