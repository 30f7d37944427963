// Package filetype classifies a file's contents by magic bytes for the
// FEC packet header's file_type field.
package filetype

// Type is the on-wire file_type byte carried in the FEC packet header.
type Type byte

const (
	RAW  Type = 0x00
	JPEG Type = 0x01
	WebP Type = 0x02
)

// Detect classifies data by its leading magic bytes. Anything that does
// not match a known signature is RAW.
func Detect(data []byte) Type {
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8 {
		return JPEG
	}
	if len(data) >= 12 &&
		data[0] == 'R' && data[1] == 'I' && data[2] == 'F' && data[3] == 'F' &&
		data[8] == 'W' && data[9] == 'E' && data[10] == 'B' && data[11] == 'P' {
		return WebP
	}
	return RAW
}
