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

// Package logger is the central log for kxomon. Entries are tagged with the
// component that made them, adjacent repeats are collapsed into a single
// entry, and the number of entries is bounded.
//
// The log is the destination for transient errors that should not disturb
// the board display. By default nothing is echoed. Use SetEcho() to see log
// entries as they are made.
package logger
