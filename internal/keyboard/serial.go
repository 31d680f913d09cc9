//go:build linux && !tinygo

package keyboard

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/lilykb/statusview/internal/events"
)

// SerialSource reads the status feed from the keyboard MCU's tty, e.g.
// /dev/ttyACM0, configured raw so the line discipline cannot mangle it.
type SerialSource struct {
	Device string
	Baud   int
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	f      *os.File
	ch     chan events.Event
	cancel context.CancelFunc
}

func NewSerialSource(device string, baud int) *SerialSource {
	if device == "" {
		device = "/dev/ttyACM0"
	}
	return &SerialSource{Device: device, Baud: baud, ch: make(chan events.Event, 16)}
}

func (s *SerialSource) Start(ctx context.Context) error {
	f, err := os.OpenFile(s.Device, os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return fmt.Errorf("open serial %s: %w", s.Device, err)
	}
	if err := configureRaw(int(f.Fd()), s.Baud); err != nil {
		f.Close()
		return fmt.Errorf("configure serial %s: %w", s.Device, err)
	}
	s.f = f
	if s.Logger != nil {
		s.Logger.Infof("serial", "open %s @ %d baud", s.Device, s.Baud)
	}

	readCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	go func() {
		defer close(s.ch)
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if readCtx.Err() != nil {
				return
			}
			ev, ok := ParseLine(scanner.Text())
			if !ok {
				continue
			}
			select {
			case s.ch <- ev:
			case <-readCtx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil && readCtx.Err() == nil && s.Logger != nil {
			s.Logger.Errorf("serial", "read loop ended: %v", err)
		}
	}()

	return nil
}

func (s *SerialSource) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	if s.f != nil {
		// Closing the fd unblocks the scanner.
		return s.f.Close()
	}
	return nil
}

func (s *SerialSource) Events() <-chan events.Event { return s.ch }

func configureRaw(fd, baud int) error {
	speed, err := baudFlag(baud)
	if err != nil {
		return err
	}
	tio := unix.Termios{
		Iflag:  unix.IGNPAR,
		Cflag:  unix.CREAD | unix.CLOCAL | unix.CS8 | speed,
		Ispeed: speed,
		Ospeed: speed,
	}
	tio.Cc[unix.VMIN] = 1
	tio.Cc[unix.VTIME] = 0
	return unix.IoctlSetTermios(fd, unix.TCSETS, &tio)
}

func baudFlag(baud int) (uint32, error) {
	switch baud {
	case 0, 115200:
		return unix.B115200, nil
	case 9600:
		return unix.B9600, nil
	case 19200:
		return unix.B19200, nil
	case 38400:
		return unix.B38400, nil
	case 57600:
		return unix.B57600, nil
	case 230400:
		return unix.B230400, nil
	default:
		return 0, fmt.Errorf("unsupported baud rate %d", baud)
	}
}
