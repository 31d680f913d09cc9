// Package system owns console state for the framebuffer target: console
// graphics mode and the VT cursor, plus the evdev exit key.
package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h.
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// Logger is satisfied by app.Logger; the package cannot import app.
type Logger interface {
	Infof(component, format string, args ...interface{})
	Errorf(component, format string, args ...interface{})
}

// SetGraphicsMode switches the active console to KD_GRAPHICS so the
// hardware cursor cannot blink over the framebuffer.
func SetGraphicsMode() error {
	return setConsoleMode(kdGraphics)
}

// RestoreTextMode returns the console to KD_TEXT.
func RestoreTextMode() error {
	return setConsoleMode(kdText)
}

func setConsoleMode(mode int) error {
	// Prefer /dev/tty (the active VT), fall back to /dev/tty0.
	var lastErr error
	for _, p := range []string{"/dev/tty", "/dev/tty0"} {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE on %s: %w", p, err)
			continue
		}
		return nil
	}
	return lastErr
}

// HideCursor writes the ANSI hide-cursor escape to the active VT.
func HideCursor() error { return writeVT("\x1b[?25l") }

// ShowCursor writes the ANSI show-cursor escape to the active VT.
func ShowCursor() error { return writeVT("\x1b[?25h") }

func writeVT(s string) error {
	var lastErr error
	for _, p := range []string{"/dev/tty", "/dev/tty0"} {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write VT: %w", lastErr)
}

func SetGraphicsModeWithLog(l Logger) error {
	err := SetGraphicsMode()
	if l != nil {
		if err != nil {
			l.Errorf("tty", "KD_GRAPHICS failed: %v", err)
		} else {
			l.Infof("tty", "KD_GRAPHICS set")
		}
	}
	return err
}

func RestoreTextModeWithLog(l Logger) error {
	err := RestoreTextMode()
	if l != nil {
		if err != nil {
			l.Errorf("tty", "KD_TEXT failed: %v", err)
		} else {
			l.Infof("tty", "KD_TEXT restored")
		}
	}
	return err
}

func HideCursorWithLog(l Logger) error {
	err := HideCursor()
	if l != nil && err != nil {
		l.Errorf("tty", "hide cursor failed: %v", err)
	}
	return err
}

func ShowCursorWithLog(l Logger) error {
	err := ShowCursor()
	if l != nil && err != nil {
		l.Errorf("tty", "show cursor failed: %v", err)
	}
	return err
}
