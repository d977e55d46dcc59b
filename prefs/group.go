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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Group is a named collection of preference values.
type Group struct {
	entries map[string]pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]pref),
	}
}

// Add a preference value to the group. The key must be unique in the group.
func (g *Group) Add(key string, p pref) error {
	if _, ok := g.entries[key]; ok {
		return fmt.Errorf("prefs: key %q already in group", key)
	}
	g.entries[key] = p
	return nil
}

// Set the value of the named preference.
func (g *Group) Set(key string, v Value) error {
	p, ok := g.entries[key]
	if !ok {
		return fmt.Errorf("prefs: no such key %q", key)
	}
	return p.Set(v)
}

// ApplyCommandLine sets the values of the group from the top of the command
// line stack. Values that are used are removed from the stack.
func (g *Group) ApplyCommandLine() error {
	for _, key := range g.keys() {
		if ok, v := GetCommandLinePref(key); ok {
			if err := g.entries[key].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
		}
	}
	return nil
}

func (g *Group) keys() []string {
	keys := make([]string, 0, len(g.entries))
	for key := range g.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// String returns the group as a prefs string.
func (g *Group) String() string {
	s := make([]string, 0, len(g.entries))
	for _, key := range g.keys() {
		s = append(s, fmt.Sprintf("%s::%s", key, g.entries[key]))
	}
	return strings.Join(s, "; ")
}
