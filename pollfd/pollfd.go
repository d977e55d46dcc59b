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

// Package pollfd wraps a file descriptor with a zero-timeout readiness check
// and a read that never blocks the caller. It is how the monitor tasks look
// at stdin and the kxo device without stalling each other.
package pollfd

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/kxomon/kxomon/curated"
)

// Error patterns.
const (
	DeviceUnavailable = "pollfd: cannot open %s: %v"
	NotReady          = "pollfd: %s: not ready"
	PollFailed        = "pollfd: %s: poll: %v"
	ReadFailed        = "pollfd: %s: read: %v"
)

// File is a file descriptor that can be polled for input.
type File struct {
	name string
	fd   int
}

// New returns a File for the os.File. The os.File must remain open for as long
// as the File is in use.
func New(f *os.File) *File {
	return &File{
		name: f.Name(),
		fd:   int(f.Fd()),
	}
}

// FromFd returns a File for an already open file descriptor.
func FromFd(name string, fd int) *File {
	return &File{
		name: name,
		fd:   fd,
	}
}

// Open the named file for reading.
func Open(path string) (*File, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, curated.Errorf(DeviceUnavailable, path, err)
	}
	return FromFd(path, fd), nil
}

// Close the file descriptor. Only files returned by Open() should be closed.
func (f *File) Close() error {
	return unix.Close(f.fd)
}

func (f *File) String() string {
	return f.name
}

// Ready returns true if a read will not block. The check does not wait. An
// interrupted poll is reported as not ready.
func (f *File) Ready() (bool, error) {
	fds := []unix.PollFd{{Fd: int32(f.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, curated.Errorf(PollFailed, f.name, err)
	}
	if n == 0 {
		return false, nil
	}
	if fds[0].Revents&(unix.POLLERR|unix.POLLNVAL) != 0 {
		return false, curated.Errorf(PollFailed, f.name, unix.EIO)
	}
	return fds[0].Revents&(unix.POLLIN|unix.POLLHUP) != 0, nil
}

// Read from the file descriptor. If the descriptor is non-blocking and there is
// nothing to read the NotReady error is returned.
func (f *File) Read(p []byte) (int, error) {
	n, err := unix.Read(f.fd, p)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EINTR {
			return 0, curated.Errorf(NotReady, f.name)
		}
		return 0, curated.Errorf(ReadFailed, f.name, err)
	}
	return n, nil
}

// SetNonblock changes the blocking mode of the file descriptor. Returns a
// function that restores the previous mode.
func (f *File) SetNonblock() (func() error, error) {
	flags, err := unix.FcntlInt(uintptr(f.fd), unix.F_GETFL, 0)
	if err != nil {
		return nil, err
	}
	if err := unix.SetNonblock(f.fd, true); err != nil {
		return nil, err
	}
	return func() error {
		_, err := unix.FcntlInt(uintptr(f.fd), unix.F_SETFL, flags)
		return err
	}, nil
}
