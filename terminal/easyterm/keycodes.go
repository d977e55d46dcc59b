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

package easyterm

// list of ASCII codes for the control keys used by the monitor
const (
	KeyInterrupt = 3  // ctrl-c when the terminal does not raise a signal for it
	KeyCtrlP     = 16 // toggle display
	KeyCtrlQ     = 17 // terminate
)
