// Package transport defines the narrow capability sets the sender and
// receiver need from a radio link, so the core pipelines in package
// sender and package receiver can be exercised against an in-memory
// fake without any real serial hardware.
package transport

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrTimeout is returned when the radio did not become ready, or a
// transmit did not complete, within the caller's timeout.
var ErrTimeout = errors.New("transport: timed out")

// ErrIO is returned for any other transport failure (short write,
// closed port, device error).
var ErrIO = errors.New("transport: io error")

// Sink is everything the sender needs from the outbound radio link:
// a bounded wait for the radio to become ready to accept a new packet,
// and a bounded write of one packet's worth of bytes.
type Sink interface {
	// WaitReady blocks until the radio reports ready or ctx is done.
	// It returns ErrTimeout if ctx expires first.
	WaitReady(ctx context.Context) error

	// Transmit writes data to the radio, returning ErrTimeout if it
	// does not complete before ctx expires, or ErrIO on any other
	// write failure.
	Transmit(ctx context.Context, data []byte) error
}

// DefaultReadyTimeout is the sender's default bound on WaitReady, per
// spec.md §5 ("bounded timeout, default ~2s").
const DefaultReadyTimeout = 2 * time.Second

// DefaultInterPacketDelay is the sender's optional fixed pacing delay
// between packets (spec.md §4.6 step 5).
const DefaultInterPacketDelay = 50 * time.Millisecond
