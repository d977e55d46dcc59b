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

// Package assert holds run time checks of invariants that the type system
// cannot express.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for the calling goroutine. The result is
// different between goroutines and consistent for a given goroutine. It should
// only be used for checking threading assumptions, never for control flow.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner remembers the first goroutine to claim it. Later claims from any other
// goroutine panic.
type Owner struct {
	name string
	id   uint64
}

// NewOwner is the preferred method of initialisation for the Owner type. The
// name is used in the panic message.
func NewOwner(name string) *Owner {
	return &Owner{name: name}
}

// Claim records the calling goroutine on first use and panics if a different
// goroutine claims the Owner later.
func (o *Owner) Claim() {
	id := GoroutineID()
	if o.id == 0 {
		o.id = id
		return
	}
	if o.id != id {
		panic(fmt.Sprintf("%s: used from goroutine %d (owned by %d)", o.name, id, o.id))
	}
}
