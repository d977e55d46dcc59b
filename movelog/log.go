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

package movelog

import (
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Log is the append-only list of entries in the order they were detected.
type Log struct {
	entries []Entry
}

func (l *Log) append(e Entry) {
	l.entries = append(l.entries, e)
}

// Len returns the number of entries in the log.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the log entries.
func (l *Log) Entries() []Entry {
	c := make([]Entry, len(l.entries))
	copy(c, l.entries)
	return c
}

// String returns the entire log as a single line. Moves are joined by an
// arrow and games are separated by the pipe character. For example:
//
//	Game 0: B2 -> C3 -> A1 | Game 1: D4
func (l *Log) String() string {
	s := strings.Builder{}
	sep := ""
	for _, e := range l.entries {
		if e.Start {
			if s.Len() > 0 {
				s.WriteString(" | ")
			}
			s.WriteString(e.String())
			sep = " "
			continue
		}
		s.WriteString(sep)
		s.WriteString(e.String())
		sep = " -> "
	}
	return s.String()
}

// the structure of the YAML document written by WriteYAML(). moves seen
// before the first game-start entry have no game number
type yamlGame struct {
	Game  *int     `yaml:"game,omitempty"`
	Moves []string `yaml:"moves"`
}

// WriteYAML writes the log as a YAML document, one list item per game.
func (l *Log) WriteYAML(w io.Writer) error {
	games := make([]yamlGame, 0)
	for _, e := range l.entries {
		if e.Start {
			n := e.Game
			games = append(games, yamlGame{Game: &n, Moves: []string{}})
			continue
		}
		if len(games) == 0 {
			games = append(games, yamlGame{Moves: []string{}})
		}
		g := &games[len(games)-1]
		g.Moves = append(g.Moves, e.String())
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]yamlGame{"games": games}); err != nil {
		return err
	}
	return enc.Close()
}
