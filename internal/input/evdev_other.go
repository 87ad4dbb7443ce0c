//go:build !linux

package input

import (
	"context"

	"github.com/rook-computer/fwdisplay/internal/logging"
)

func WatchKey(ctx context.Context, logger logging.Logger, code uint16, onPress func()) {
	if logger != nil {
		logger.Infof("input", "key watching is only supported on linux")
	}
}
