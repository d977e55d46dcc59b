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

package control

import (
	"io"
	"os"

	"github.com/kxomon/kxomon/curated"
)

// Layout of the control record.
const (
	RecordSize      = 6
	DisplayOffset   = 0
	TerminateOffset = 4
)

// Error patterns.
const (
	DeviceUnavailable = "control: cannot open %s: %v"
	ShortRecord       = "control: short record: %d bytes (wanted %d)"
	ReadFailed        = "control: cannot read record: %v"
	WriteFailed       = "control: cannot write record: %v"
)

// Flags is shared by the tasks. The keyboard task changes it through the
// Client and the display task reads it.
type Flags struct {
	// whether the board should be shown
	Display bool

	// the monitor should finish
	End bool
}

// Resource is the open control file.
type Resource interface {
	io.ReaderAt
	io.WriterAt
	io.Closer
}

// Opener returns a newly opened Resource.
type Opener func() (Resource, error)

// FileOpener returns an Opener for the named file.
func FileOpener(path string) Opener {
	return func() (Resource, error) {
		f, err := os.OpenFile(path, os.O_RDWR, 0)
		if err != nil {
			return nil, curated.Errorf(DeviceUnavailable, path, err)
		}
		return f, nil
	}
}

// Client performs read-modify-write commands on the control record.
type Client struct {
	open  Opener
	flags *Flags
}

// NewClient is the preferred method of initialisation for the Client type.
// The display flag starts as true, the same as the engine.
func NewClient(open Opener) *Client {
	return &Client{
		open: open,
		flags: &Flags{
			Display: true,
		},
	}
}

// Flags returns the process-local flags.
func (c *Client) Flags() *Flags {
	return c.flags
}

// ToggleDisplay flips the display flag in the record and in the local flags.
//
// The local flag is flipped even if the record could not be updated.
func (c *Client) ToggleDisplay() error {
	c.flags.Display = !c.flags.Display
	return c.modify(func(rec []byte) {
		if rec[DisplayOffset] != '0' {
			rec[DisplayOffset] = '0'
		} else {
			rec[DisplayOffset] = '1'
		}
	})
}

// SetDisplay writes the display flag to the record and to the local flags.
// Used at startup so that the record and the local flag agree.
//
// The local flag is set even if the record could not be updated.
func (c *Client) SetDisplay(on bool) error {
	c.flags.Display = on
	return c.modify(func(rec []byte) {
		if on {
			rec[DisplayOffset] = '1'
		} else {
			rec[DisplayOffset] = '0'
		}
	})
}

// RequestTerminate sets the terminate flag in the record and sets the End flag.
// The local display flag is turned off.
//
// The local flags are changed even if the record could not be updated.
func (c *Client) RequestTerminate() error {
	c.flags.Display = false
	c.flags.End = true
	return c.modify(func(rec []byte) {
		rec[TerminateOffset] = '1'
	})
}

func (c *Client) modify(mutate func(rec []byte)) (rerr error) {
	r, err := c.open()
	if err != nil {
		return err
	}
	defer func() {
		err := r.Close()
		if rerr == nil && err != nil {
			rerr = curated.Errorf(WriteFailed, err)
		}
	}()

	rec := make([]byte, RecordSize)
	n, err := r.ReadAt(rec, 0)
	if n < RecordSize {
		if err != nil && err != io.EOF {
			return curated.Errorf(ReadFailed, err)
		}
		return curated.Errorf(ShortRecord, n, RecordSize)
	}

	mutate(rec)

	n, err = r.WriteAt(rec, 0)
	if err != nil {
		return curated.Errorf(WriteFailed, err)
	}
	if n != RecordSize {
		return curated.Errorf(WriteFailed, io.ErrShortWrite)
	}

	return nil
}
