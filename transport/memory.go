package transport

import (
	"context"
	"sync"
)

// MemorySink is an in-memory Sink used by tests and by the property
// based test suite: it records every transmitted packet and can be
// configured to simulate not-ready radios and write failures without
// any real hardware, the same role the "polymorphism over radio
// transports" design note in spec.md §9 calls for.
type MemorySink struct {
	mu      sync.Mutex
	packets [][]byte
	ready   bool

	// FailNext, if set, is consumed by the next Transmit call and
	// returned instead of succeeding.
	FailNext error
}

// NewMemorySink returns a MemorySink that is ready immediately.
func NewMemorySink() *MemorySink {
	return &MemorySink{ready: true}
}

// SetReady controls whether WaitReady succeeds immediately or blocks
// until ctx is cancelled.
func (m *MemorySink) SetReady(ready bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ready = ready
}

func (m *MemorySink) WaitReady(ctx context.Context) error {
	m.mu.Lock()
	ready := m.ready
	m.mu.Unlock()
	if ready {
		return nil
	}
	<-ctx.Done()
	return ErrTimeout
}

func (m *MemorySink) Transmit(ctx context.Context, data []byte) error {
	select {
	case <-ctx.Done():
		return ErrTimeout
	default:
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailNext != nil {
		err := m.FailNext
		m.FailNext = nil
		return err
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	m.packets = append(m.packets, cp)
	return nil
}

// Packets returns every packet transmitted so far, in send order.
func (m *MemorySink) Packets() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.packets))
	copy(out, m.packets)
	return out
}
