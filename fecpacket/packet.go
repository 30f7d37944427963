// Package fecpacket assembles and parses the fixed 256-byte FEC frame
// that carries one data or parity block on the air.
package fecpacket

import (
	"encoding/binary"

	"github.com/Yarik9008/LorettStratoLink/crc"
	"github.com/Yarik9008/LorettStratoLink/filetype"
)

const (
	Size        = 256
	PayloadSize = 200

	offSync      = 0
	offType      = 1
	offCallsign  = 2
	offImageID   = 6
	offBlockID   = 7
	offKData     = 9
	offNTotal    = 11
	offFileSize  = 13
	offFileType  = 17
	offMPerGroup = 18
	offNumGroups = 19
	offPayload   = 20
	offCRC32     = 220

	SyncByte = 0x55
	TypeByte = 0x68
)

// Info carries the metadata needed to build one FEC packet; Payload
// must be exactly PayloadSize bytes (zero-padded by the caller) or
// shorter is copied in place and the remainder left zero.
type Info struct {
	Callsign   uint32
	ImageID    uint8
	BlockID    uint16
	KData      uint16
	NTotal     uint16
	FileSize   uint32
	FileType   filetype.Type
	MPerGroup  uint8
	NumGroups  uint8
	Payload    []byte
}

// Build assembles the 256-byte frame for info, computing and writing
// the trailing CRC-32. Build does no padding: a Payload shorter than
// PayloadSize leaves the remaining payload bytes zero.
func Build(info Info) [Size]byte {
	var pkt [Size]byte

	pkt[offSync] = SyncByte
	pkt[offType] = TypeByte
	binary.BigEndian.PutUint32(pkt[offCallsign:], info.Callsign)
	pkt[offImageID] = info.ImageID
	binary.BigEndian.PutUint16(pkt[offBlockID:], info.BlockID)
	binary.BigEndian.PutUint16(pkt[offKData:], info.KData)
	binary.BigEndian.PutUint16(pkt[offNTotal:], info.NTotal)
	binary.BigEndian.PutUint32(pkt[offFileSize:], info.FileSize)
	pkt[offFileType] = byte(info.FileType)
	pkt[offMPerGroup] = info.MPerGroup
	pkt[offNumGroups] = info.NumGroups

	n := len(info.Payload)
	if n > PayloadSize {
		n = PayloadSize
	}
	copy(pkt[offPayload:offPayload+n], info.Payload[:n])

	sum := crc.CRC32(pkt[1:offCRC32])
	binary.BigEndian.PutUint32(pkt[offCRC32:], sum)

	return pkt
}

// CRCValid reports whether the CRC-32 stored at [220..224) matches the
// CRC-32 recomputed over bytes [1..220). The receiver's resync state
// machine never calls this (it forwards frames unconditionally, per
// spec), but it is exposed for tests and for any host-adjacent tooling
// that wants to pre-filter frames.
func CRCValid(pkt []byte) bool {
	if len(pkt) != Size {
		return false
	}
	want := binary.BigEndian.Uint32(pkt[offCRC32:])
	got := crc.CRC32(pkt[1:offCRC32])
	return want == got
}
