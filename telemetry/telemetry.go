// Package telemetry builds the 10-byte out-of-band link-quality frame
// the receiver emits alongside every FEC frame.
package telemetry

import (
	"encoding/binary"

	"github.com/Yarik9008/LorettStratoLink/crc"
)

const (
	Size = 10

	SyncLo          = 0x5A
	SyncHi          = 0xA5
	ProtocolVersion = 0x01
	TypeID          = 0x30
)

// Info holds the per-frame link-quality fields.
type Info struct {
	RSSI    int16
	SNR     int8
	TXPower uint8
}

// Build assembles the 10-byte little-endian telemetry frame with its
// CRC-16/CCITT trailer computed over bytes [2..8).
func Build(info Info) [Size]byte {
	var f [Size]byte
	f[0] = SyncLo
	f[1] = SyncHi
	f[2] = ProtocolVersion
	f[3] = TypeID
	binary.LittleEndian.PutUint16(f[4:6], uint16(info.RSSI))
	f[6] = byte(info.SNR)
	f[7] = info.TXPower

	sum := crc.CRC16CCITT(f[2:8])
	binary.LittleEndian.PutUint16(f[8:10], sum)
	return f
}

// RSSIFromByte converts the radio's trailing RSSI byte into dBm, per
// the receiver resync state machine: rssi_dBm = byte - 256.
func RSSIFromByte(b byte) int16 {
	return int16(b) - 256
}
