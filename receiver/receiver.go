// Package receiver implements the receive-side frame resynchroniser
// (C9): a byte ring buffer, a sync-byte scan state machine, and paired
// FEC-frame / telemetry-frame emission.
package receiver

import (
	"github.com/Yarik9008/LorettStratoLink/fecpacket"
	"github.com/Yarik9008/LorettStratoLink/ring"
	"github.com/Yarik9008/LorettStratoLink/telemetry"
)

// frameWithRSSI is one full RF frame on the wire: 256 FEC bytes
// followed by one trailing RSSI byte.
const frameWithRSSI = fecpacket.Size + 1

// Stats tracks cumulative receiver-side counters, carried forward from
// the original firmware's telem.c diagnostics (packets received, bytes
// discarded while resynchronising). These are host-side only and are
// never transmitted on the air.
type Stats struct {
	FramesEmitted  uint64
	BytesDiscarded uint64
}

// Frame is one emitted FEC frame paired with its telemetry sibling.
type Frame struct {
	FEC       [fecpacket.Size]byte
	Telemetry [telemetry.Size]byte
	RSSI      int16
}

// Receiver owns the ring buffer and the scan-state machine. It has no
// other state: there is no decoding, no CRC validation, and no
// cross-frame carry-over beyond Stats.
type Receiver struct {
	buf   *ring.Buffer
	Stats Stats
}

// New creates a Receiver with the given ring capacity (must be a power
// of two greater than frameWithRSSI).
func New(capacity int) *Receiver {
	return &Receiver{buf: ring.New(capacity)}
}

// Push feeds one byte arrived from the radio into the ring. This is
// the producer side of the SPSC contract (spec.md §5), called from the
// serial read loop or an interrupt-equivalent handler.
func (r *Receiver) Push(b byte) {
	r.buf.Push(b)
}

// PushSlice feeds a batch of bytes into the ring.
func (r *Receiver) PushSlice(p []byte) {
	r.buf.PushSlice(p)
}

// Poll runs one resync-state-machine step: while occupancy allows,
// discard bytes that are not a valid sync pair, and emit every full
// frame found. It returns the emitted frames found in this call, in
// arrival order, and reports progress the same way the state machine
// does internally — every loop iteration advances tail by at least one
// byte (discard) or consumes a full frame (emit).
func (r *Receiver) Poll() []Frame {
	var frames []Frame
	for r.buf.Len() >= frameWithRSSI {
		if r.buf.Peek(0) == fecpacket.SyncByte && r.buf.Peek(1) == fecpacket.TypeByte {
			frames = append(frames, r.emit())
			continue
		}
		r.buf.Discard(1)
		r.Stats.BytesDiscarded++
	}
	return frames
}

func (r *Receiver) emit() Frame {
	raw := r.buf.Pop(fecpacket.Size)
	rssiByte := r.buf.Pop(1)[0]

	var f Frame
	copy(f.FEC[:], raw)
	f.RSSI = telemetry.RSSIFromByte(rssiByte)
	f.Telemetry = telemetry.Build(telemetry.Info{RSSI: f.RSSI})

	r.Stats.FramesEmitted++
	return f
}
