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

package prefs_test

import (
	"testing"

	"github.com/kxomon/kxomon/prefs"
	"github.com/kxomon/kxomon/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// single value but with additional space
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// remaining string will be sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// invalid prefs string
	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// partially invalid prefs string
	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestGroup(t *testing.T) {
	var device prefs.String
	var idle prefs.Int
	var echo prefs.Bool

	idle.SetRange(1, 1000)

	g := prefs.NewGroup()
	test.DemandSuccess(t, g.Add("device", &device))
	test.DemandSuccess(t, g.Add("idle", &idle))
	test.DemandSuccess(t, g.Add("log", &echo))
	test.ExpectFailure(t, g.Add("idle", &idle))

	test.ExpectSuccess(t, g.Set("device", "/dev/kxo"))
	test.ExpectSuccess(t, g.Set("idle", 1))
	test.ExpectFailure(t, g.Set("idle", 0))
	test.ExpectFailure(t, g.Set("missing", 0))
	test.ExpectEquality(t, g.String(), "device::/dev/kxo; idle::1; log::false")

	// values on the command line stack override the group and are consumed
	prefs.PushCommandLineStack("idle::5; log::TRUE; unused::x")
	test.ExpectSuccess(t, g.ApplyCommandLine())
	test.ExpectEquality(t, idle.Get().(int), 5)
	test.ExpectEquality(t, echo.Get().(bool), true)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::x")

	// bad value on the command line
	prefs.PushCommandLineStack("idle::fast")
	test.ExpectFailure(t, g.ApplyCommandLine())
	prefs.PopCommandLineStack()
}

func TestHook(t *testing.T) {
	var b prefs.Bool
	var seen bool
	b.SetHookPost(func(v prefs.Value) error {
		seen = v.(bool)
		return nil
	})
	test.ExpectSuccess(t, b.Set("true"))
	test.ExpectEquality(t, seen, true)
	test.ExpectFailure(t, b.Set(10))
}
