package receiver

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yarik9008/LorettStratoLink/fecpacket"
	"github.com/Yarik9008/LorettStratoLink/filetype"
)

func validFrameBytes(blockID uint16, rssi byte) []byte {
	pkt := fecpacket.Build(fecpacket.Info{
		Callsign: 1, ImageID: 1, BlockID: blockID,
		KData: 1, NTotal: 1, FileSize: 1, FileType: filetype.RAW,
		Payload: []byte{byte(blockID)},
	})
	return append(pkt[:], rssi)
}

func TestFalseSyncIsDiscardedByteByByte(t *testing.T) {
	// spec.md §8 scenario 6: a spurious 0x55 followed by a byte that is
	// not the type byte must be discarded one byte at a time, not
	// mistaken for the start of a frame.
	r := New(4096)

	frame := validFrameBytes(0, 0x10)

	var stream []byte
	stream = append(stream, fecpacket.SyncByte, 0x33) // false sync: wrong second byte
	stream = append(stream, frame...)

	r.PushSlice(stream)
	frames := r.Poll()

	require.Len(t, frames, 1)
	require.Equal(t, uint64(2), r.Stats.BytesDiscarded)
	require.Equal(t, uint64(1), r.Stats.FramesEmitted)
	require.Equal(t, frame[:fecpacket.Size], frames[0].FEC[:])
}

func TestBackToBackFramesAllEmitted(t *testing.T) {
	r := New(4096)

	var stream []byte
	for i := uint16(0); i < 3; i++ {
		stream = append(stream, validFrameBytes(i, 0x80)...)
	}
	r.PushSlice(stream)

	frames := r.Poll()
	require.Len(t, frames, 3)
	require.Equal(t, uint64(0), r.Stats.BytesDiscarded)
	for i, f := range frames {
		require.Equal(t, byte(i), f.FEC[20])
	}
}

func TestTelemetrySiblingCarriesRSSI(t *testing.T) {
	r := New(4096)
	r.PushSlice(validFrameBytes(0, 0x00))

	frames := r.Poll()
	require.Len(t, frames, 1)
	require.Equal(t, int16(-256), frames[0].RSSI)
	require.Equal(t, int16(-256), int16(binary.LittleEndian.Uint16(frames[0].Telemetry[4:6])))
}

func TestPartialFrameWaitsForMoreBytes(t *testing.T) {
	r := New(4096)
	frame := validFrameBytes(0, 0x10)
	r.PushSlice(frame[:fecpacket.Size-1])

	frames := r.Poll()
	require.Empty(t, frames)
	require.Equal(t, uint64(0), r.Stats.BytesDiscarded)
}
