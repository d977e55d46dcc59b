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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bradleyjkemp/memviz"

	"github.com/kxomon/kxomon/control"
	"github.com/kxomon/kxomon/curated"
	"github.com/kxomon/kxomon/logger"
	"github.com/kxomon/kxomon/modalflag"
	"github.com/kxomon/kxomon/movelog"
	"github.com/kxomon/kxomon/pollfd"
	"github.com/kxomon/kxomon/prefs"
	"github.com/kxomon/kxomon/render"
	"github.com/kxomon/kxomon/scheduler"
	"github.com/kxomon/kxomon/statsview"
	"github.com/kxomon/kxomon/status"
	"github.com/kxomon/kxomon/tasks"
	"github.com/kxomon/kxomon/terminal/easyterm"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// error pattern for problems with the command line of a mode
const argumentError = "argument error: %v"

// number of log entries shown after a fatal error when logging is enabled
const logTail = 10

// launch returns the exit value of the program. argument errors return 10 and
// all other errors return 1.
func launch(args []string, output io.Writer) int {
	logger.Clear()

	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("MONITOR", "STATUS")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "MONITOR":
		err = monitor(md, output)

	case "STATUS":
		err = statusOnly(md, output)
	}

	if err != nil {
		if curated.Is(err, argumentError) {
			fmt.Fprintf(output, "* error: %v\n", err)
			return 10
		}

		// a failed status check is reported as it is, without decoration
		if curated.Is(err, status.InvalidStatus) {
			fmt.Fprintf(output, "%v\n", err)
		} else {
			fmt.Fprintf(output, "* error: %v\n", err)
		}
		return 1
	}

	return 0
}

func statusOnly(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	statusFile := md.AddString("status", defaultStatus, "kxo module status file")

	p, err := md.Parse()
	if err != nil {
		return curated.Errorf(argumentError, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(argumentError, fmt.Errorf("too many arguments for %s mode: %s", md, md.GetArg(0)))
	}

	if err := status.Check(*statusFile); err != nil {
		return err
	}

	fmt.Fprintf(output, status.InvalidStatus+"\n", status.Live)
	return nil
}

func monitor(md *modalflag.Modes, output io.Writer) (rerr error) {
	md.NewMode()

	pr, err := newPreferences()
	if err != nil {
		return err
	}

	device := md.AddString("device", defaultDevice, "kxo game device")
	attr := md.AddString("attr", defaultAttr, "kxo control attribute file")
	statusFile := md.AddString("status", defaultStatus, "kxo module status file")
	idle := md.AddInt("idle", defaultIdle, "scheduler idle time between ticks in milliseconds")
	display := md.AddBool("display", defaultDisplay, "show the board from the start")
	prefsString := md.AddString("prefs", "", "preferences string. eg. \"device::/dev/kxo; idle::2\"")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	stats := md.AddBool("statsview", false, "run stats server")
	memvizFile := md.AddString("memviz", "", "write graphviz of monitor state to file on exit")
	movelogFile := md.AddString("movelog", "", "write move log as YAML to file on exit")

	p, err := md.Parse()
	if err != nil {
		return curated.Errorf(argumentError, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(argumentError, fmt.Errorf("too many arguments for %s mode: %s", md, md.GetArg(0)))
	}

	unused, err := pr.apply(md, *prefsString, map[string]prefs.Value{
		"device":  *device,
		"attr":    *attr,
		"status":  *statusFile,
		"idle":    *idle,
		"display": *display,
	})
	if err != nil {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)

		// echoed entries are lost under the board so the most recent ones
		// are repeated if the monitor fails
		defer func() {
			if rerr != nil {
				logger.Tail(os.Stderr, logTail)
			}
		}()
	} else {
		logger.SetEcho(nil)
	}

	if unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
	}
	logger.Logf(logger.Allow, "prefs", "%s", pr.group)

	// the monitor does not start unless the module is live
	if err := status.Check(pr.status.String()); err != nil {
		return err
	}

	if *stats {
		if statsview.Available() {
			stop := statsview.Launch(os.Stderr)
			defer stop()
		} else {
			logger.Log(logger.Allow, "statsview", "not available in this build")
		}
	}

	dev, err := pollfd.Open(pr.device.String())
	if err != nil {
		return err
	}
	defer dev.Close()

	var term easyterm.Terminal
	if err := term.Initialise(os.Stdin); err != nil {
		return err
	}
	if err := term.MonitorMode(); err != nil {
		return err
	}
	defer term.CanonicalMode()

	stdin := pollfd.FromFd("stdin", int(os.Stdin.Fd()))
	restore, err := stdin.SetNonblock()
	if err != nil {
		return err
	}
	defer restore()

	// the record's display flag is brought into line with the preference
	ctrl := control.NewClient(control.FileOpener(pr.attr.String()))
	if err := ctrl.SetDisplay(pr.displayOn()); err != nil {
		logger.Log(logger.Allow, "monitor", err)
	}
	moves := &movelog.Reconstructor{}

	kb := tasks.NewKeyboard(stdin, ctrl, ctrl.Flags(), output)
	disp := tasks.NewDisplay(dev, ctrl.Flags(), moves, output)
	sched := scheduler.NewScheduler(pr.idleDuration(), kb, disp)

	// interrupt and terminate signals end the monitor in the same way as the
	// terminate key
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(intChan)
	sched.SetInterrupt(intChan, func() {
		if err := ctrl.RequestTerminate(); err != nil {
			logger.Log(logger.Allow, "monitor", err)
		}
	})

	sched.Run()

	if err := render.MoveLog(output, moves.Log()); err != nil {
		return err
	}

	if *movelogFile != "" {
		if err := writeFile(*movelogFile, moves.Log().WriteYAML); err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		err := writeFile(*memvizFile, func(w io.Writer) error {
			memviz.Map(w, sched)
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// create the named file and pass it to the write function
func writeFile(path string, write func(io.Writer) error) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); rerr == nil {
			rerr = err
		}
	}()
	return write(f)
}
