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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and remember the pattern they
// were created with.
//
// Curated errors are created with the Errorf() function, which is similar to
// the Errorf() function in the fmt package:
//
//	e := curated.Errorf(protocol.ShortRead, 5, 8)
//
// The pattern is the identity of the error. The Is() function checks the
// outermost pattern and the Has() function searches the whole chain:
//
//	f := curated.Errorf("display: %v", e)
//
//	curated.Is(f, protocol.ShortRead)  // false
//	curated.Has(f, protocol.ShortRead) // true
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts. Code can therefore wrap an error with its own context
// without worrying about whether the callee has already done so.
//
// Curated errors also implement Unwrap() so that they cooperate with the
// standard errors package, in particular errors.Is() against sentinel values
// such as io.EOF or syscall errors.
package curated
