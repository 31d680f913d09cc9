//go:build !linux

package system

import "context"

// Evdev is Linux-only; elsewhere Ctrl-C on the controlling terminal works.
func StartExitOnEsc(ctx context.Context, logger Logger, onExit func()) {}
