package telemetry

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yarik9008/LorettStratoLink/crc"
)

func TestBuildLayoutAndCRC(t *testing.T) {
	f := Build(Info{RSSI: -93, SNR: 7, TXPower: 20})

	require.Equal(t, byte(SyncLo), f[0])
	require.Equal(t, byte(SyncHi), f[1])
	require.Equal(t, byte(ProtocolVersion), f[2])
	require.Equal(t, byte(TypeID), f[3])
	require.Equal(t, int16(-93), int16(binary.LittleEndian.Uint16(f[4:6])))

	want := crc.CRC16CCITT(f[2:8])
	got := binary.LittleEndian.Uint16(f[8:10])
	require.Equal(t, want, got)
}

func TestRSSIFromByte(t *testing.T) {
	require.Equal(t, int16(-1), RSSIFromByte(0xFF))
	require.Equal(t, int16(-256), RSSIFromByte(0x00))
}
