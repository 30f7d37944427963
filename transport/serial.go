package transport

import (
	"context"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

// SerialSink drives the sender's Sink capability over a real OS serial
// port via go.bug.st/serial, the same library used for UART-attached
// radio/GNSS peripherals in the librescoot-bluetooth-service and
// projectqai-hydris reference repos.
//
// The underlying port exposes no discrete "radio ready" line over a
// generic USB-serial adapter, unlike the E22 module's AUX pin wired
// directly to a GPIO in the original firmware. WaitReady here instead
// tracks "is the previous write still in flight", which is the
// equivalent boundary condition the sender actually needs: it never
// issues two overlapping writes.
type SerialSink struct {
	port serial.Port

	mu   chan struct{} // 1-buffered: held while a write is in flight
}

// OpenSerial opens device at baud for sending FEC packets.
func OpenSerial(device string, baud int) (*SerialSink, error) {
	mode := &serial.Mode{BaudRate: baud}
	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, errors.Wrapf(err, "transport: open %s", device)
	}
	s := &SerialSink{port: port, mu: make(chan struct{}, 1)}
	s.mu <- struct{}{}
	return s, nil
}

// Close releases the underlying serial port.
func (s *SerialSink) Close() error {
	return s.port.Close()
}

func (s *SerialSink) WaitReady(ctx context.Context) error {
	select {
	case <-s.mu:
		s.mu <- struct{}{}
		return nil
	case <-ctx.Done():
		return ErrTimeout
	}
}

func (s *SerialSink) Transmit(ctx context.Context, data []byte) error {
	select {
	case <-s.mu:
	case <-ctx.Done():
		return ErrTimeout
	}
	done := make(chan error, 1)
	go func() {
		_, err := s.port.Write(data)
		s.mu <- struct{}{}
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return errors.Wrap(ErrIO, err.Error())
		}
		return nil
	case <-ctx.Done():
		return ErrTimeout
	}
}

// SerialSource adapts a real serial port to the receiver's byte-source
// role: ReadInto blocks for at least one byte and pushes everything it
// reads into dst.
type SerialSource struct {
	port serial.Port
	buf  []byte
}

// OpenSerialSource opens device at baud for receiving raw FEC bytes.
func OpenSerialSource(device string, baud int) (*SerialSource, error) {
	mode := &serial.Mode{BaudRate: baud}
	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, errors.Wrapf(err, "transport: open %s", device)
	}
	return &SerialSource{port: port, buf: make([]byte, 4096)}, nil
}

// Close releases the underlying serial port.
func (s *SerialSource) Close() error {
	return s.port.Close()
}

// ReadInto reads whatever is currently available and pushes each byte
// into push, the receiver's ring-buffer Push method.
func (s *SerialSource) ReadInto(push func(byte)) error {
	n, err := s.port.Read(s.buf)
	if err != nil {
		return errors.Wrap(ErrIO, err.Error())
	}
	for i := 0; i < n; i++ {
		push(s.buf[i])
	}
	return nil
}
