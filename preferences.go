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

package main

import (
	"time"

	"github.com/kxomon/kxomon/logger"
	"github.com/kxomon/kxomon/modalflag"
	"github.com/kxomon/kxomon/prefs"
)

// default locations of the kxo kernel module's files
const (
	defaultDevice = "/dev/kxo"
	defaultAttr   = "/sys/class/kxo/kxo/kxo_state"
	defaultStatus = "/sys/module/kxo/initstate"
)

// default idle time of the scheduler in milliseconds
const defaultIdle = 1

// the board is shown from the start by default
const defaultDisplay = true

// preferences for the monitor. values are taken, in order of priority, from
// command line flags, the -prefs string and the defaults above.
type preferences struct {
	group *prefs.Group

	device  prefs.String
	attr    prefs.String
	status  prefs.String
	idle    prefs.Int
	display prefs.Bool
}

func newPreferences() (*preferences, error) {
	p := &preferences{
		group: prefs.NewGroup(),
	}

	// no hooks have been set yet so these cannot fail
	_ = p.device.Set(defaultDevice)
	_ = p.attr.Set(defaultAttr)
	_ = p.status.Set(defaultStatus)

	_ = p.display.Set(defaultDisplay)

	p.idle.SetRange(0, 1000)
	if err := p.idle.Set(defaultIdle); err != nil {
		return nil, err
	}

	// changes after the defaults are logged
	p.device.SetHookPost(logChange("device"))
	p.attr.SetHookPost(logChange("attr"))
	p.status.SetHookPost(logChange("status"))
	p.idle.SetHookPost(logChange("idle"))
	p.display.SetHookPost(logChange("display"))

	if err := p.group.Add("device", &p.device); err != nil {
		return nil, err
	}
	if err := p.group.Add("attr", &p.attr); err != nil {
		return nil, err
	}
	if err := p.group.Add("status", &p.status); err != nil {
		return nil, err
	}
	if err := p.group.Add("idle", &p.idle); err != nil {
		return nil, err
	}
	if err := p.group.Add("display", &p.display); err != nil {
		return nil, err
	}

	return p, nil
}

// apply the prefs string and then any flags that were set explicitly. the
// values map holds the parsed value of every flag that shares its name with a
// preference. returns the unused part of the prefs string.
func (p *preferences) apply(md *modalflag.Modes, prefsString string, values map[string]prefs.Value) (string, error) {
	prefs.PushCommandLineStack(prefsString)
	err := p.group.ApplyCommandLine()
	unused := prefs.PopCommandLineStack()
	if err != nil {
		return unused, err
	}

	md.Visit(func(flag string) {
		if err != nil {
			return
		}
		if v, ok := values[flag]; ok {
			err = p.group.Set(flag, v)
		}
	})
	return unused, err
}

func logChange(key string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		logger.Logf(logger.Allow, "prefs", "%s set to %v", key, v)
		return nil
	}
}

func (p *preferences) displayOn() bool {
	return p.display.Get().(bool)
}

func (p *preferences) idleDuration() time.Duration {
	return time.Duration(p.idle.Get().(int)) * time.Millisecond
}
