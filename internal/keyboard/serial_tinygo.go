//go:build tinygo

package keyboard

import (
	"context"
	"machine"
	"time"

	"github.com/lilykb/statusview/internal/events"
)

// UARTSource parses the status feed from the split-link UART on the MCU
// build.
type UARTSource struct {
	uart *machine.UART
	ch   chan events.Event
	stop chan struct{}
}

func NewUARTSource(uart *machine.UART, baud uint32) *UARTSource {
	uart.Configure(machine.UARTConfig{BaudRate: baud})
	return &UARTSource{uart: uart, ch: make(chan events.Event, 16), stop: make(chan struct{})}
}

func (s *UARTSource) Start(ctx context.Context) error {
	go func() {
		defer close(s.ch)
		line := make([]byte, 0, 32)
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			default:
			}
			if s.uart.Buffered() == 0 {
				time.Sleep(time.Millisecond)
				continue
			}
			b, err := s.uart.ReadByte()
			if err != nil {
				continue
			}
			if b != '\n' {
				// Cap the accumulator; a line this long is link noise.
				if len(line) < cap(line) {
					line = append(line, b)
				}
				continue
			}
			if ev, ok := ParseLine(string(line)); ok {
				select {
				case s.ch <- ev:
				default:
				}
			}
			line = line[:0]
		}
	}()
	return nil
}

func (s *UARTSource) Stop() error {
	close(s.stop)
	return nil
}

func (s *UARTSource) Events() <-chan events.Event { return s.ch }
