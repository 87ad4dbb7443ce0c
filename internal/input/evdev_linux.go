//go:build linux

package input

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/fwdisplay/internal/logging"
)

// WatchKey polls every /dev/input/event* device and calls onPress once when
// the key is pressed on any of them. It returns immediately; the watchers
// stop with ctx. Missing devices are logged, not treated as errors.
func WatchKey(ctx context.Context, logger logging.Logger, code uint16, onPress func()) {
	if onPress == nil {
		return
	}
	tvSize := binary.Size(unix.Timeval{})

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if logger != nil {
			logger.Infof("input", "no evdev devices found for key %d", code)
		}
		return
	}

	var once sync.Once
	trigger := func() {
		once.Do(func() {
			if logger != nil {
				logger.Infof("input", "key %d pressed", code)
			}
			onPress()
		})
	}

	for _, path := range paths {
		go watch(ctx, logger, path, tvSize, code, trigger)
	}
}

func watch(ctx context.Context, logger logging.Logger, path string, tvSize int, code uint16, trigger func()) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		if logger != nil {
			logger.Errorf("input", "open %s: %v", path, err)
		}
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer f.Close()

	buf := make([]byte, 4096)
	for ctx.Err() == nil {
		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device went away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}
		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		if pressed(buf[:n], tvSize, code) {
			trigger()
			return
		}
	}
}
