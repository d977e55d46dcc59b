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

// Package test bundles helper functions that remove common boilerplate from
// tests written with the standard go test harness.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions stop the test immediately. Demand functions should be used
// when later parts of the test depend on the value being correct.
//
// Note how the success and failure functions treat nil. A nil value is
// considered a success because that is how error values work. A nil error
// means there was no error.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison with an expected string.
package test
