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

// Package prefs holds typed preference values. Preferences are grouped with
// the Group type and can be overridden from the command line with a prefs
// string of the form:
//
//	"device::/dev/kxo; idle::2"
//
// The command line stack allows nested groups of overrides. Values are taken
// from the top of the stack and removed as they are used, so that unused
// entries can be reported back to the user.
package prefs
