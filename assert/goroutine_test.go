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

package assert_test

import (
	"testing"

	"github.com/kxomon/kxomon/assert"
	"github.com/kxomon/kxomon/test"
)

func TestGoroutineID(t *testing.T) {
	id := assert.GoroutineID()
	test.ExpectInequality(t, id, uint64(0))
	test.ExpectEquality(t, assert.GoroutineID(), id)

	other := make(chan uint64)
	go func() { other <- assert.GoroutineID() }()
	test.ExpectInequality(t, <-other, id)
}

func TestOwner(t *testing.T) {
	o := assert.NewOwner("test")
	o.Claim()
	o.Claim()

	panicked := make(chan bool)
	go func() {
		defer func() { panicked <- recover() != nil }()
		o.Claim()
	}()
	test.ExpectEquality(t, <-panicked, true)
}
