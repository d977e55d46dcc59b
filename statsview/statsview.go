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

//go:build statsview

package statsview

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the statistics server.
const Address = "localhost:12680"

const url = "/debug/statsview"

// the monitor's scheduler ticks every millisecond or so and a session is
// short. sample more often than the statsview default and keep a longer
// history so that a whole game fits on a chart
const (
	interval  = 500
	maxPoints = 240
)

// Launch the statistics server in a new goroutine. The server only reads
// runtime statistics and never touches monitor state. The returned function
// shuts the server down and should be called before the monitor exits.
func Launch(output io.Writer) func() {
	viewer.SetConfiguration(
		viewer.WithAddr(Address),
		viewer.WithInterval(interval),
		viewer.WithMaxPoints(maxPoints),
	)
	mgr := statsview.New()

	go func() {
		err := mgr.Start()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(output, "stats server: %v\n", err)
		}
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)

	return mgr.Stop
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
