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

package tasks_test

import (
	"github.com/kxomon/kxomon/control"
	"github.com/kxomon/kxomon/curated"
	"github.com/kxomon/kxomon/pollfd"
)

// source is a Source that returns queued data, one entry per read
type source struct {
	polls int
	reads int
	data  [][]byte
}

func (s *source) queue(data ...[]byte) {
	s.data = append(s.data, data...)
}

func (s *source) Ready() (bool, error) {
	s.polls++
	return len(s.data) > 0, nil
}

func (s *source) Read(p []byte) (int, error) {
	s.reads++
	if len(s.data) == 0 {
		return 0, curated.Errorf(pollfd.NotReady, "source")
	}
	d := s.data[0]
	s.data = s.data[1:]
	return copy(p, d), nil
}

// record is an in-memory control resource
type record struct {
	rec    []byte
	closed int
}

func (r *record) ReadAt(p []byte, off int64) (int, error) {
	return copy(p, r.rec[off:]), nil
}

func (r *record) WriteAt(p []byte, off int64) (int, error) {
	return copy(r.rec[off:], p), nil
}

func (r *record) Close() error {
	r.closed++
	return nil
}

func newClient() (*control.Client, *record) {
	r := &record{rec: []byte("1 0 0\n")}
	c := control.NewClient(func() (control.Resource, error) {
		return r, nil
	})
	return c, r
}
