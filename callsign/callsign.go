// Package callsign implements the base-40 station-callsign codec used
// by the FEC packet header: up to six ASCII characters packed into a
// 32-bit word.
package callsign

import "strings"

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-_. "

const length = 6

// index returns the base-40 index of an uppercase alphabet character,
// or 0 ('0') for anything outside the alphabet.
func index(c byte) uint32 {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return uint32(i)
		}
	}
	return 0
}

// Encode uppercases s, right-pads it with spaces to exactly six
// characters (truncating anything longer), and packs it base-40,
// most-significant character first, into a 32-bit word.
func Encode(s string) uint32 {
	s = strings.ToUpper(s)
	if len(s) > length {
		s = s[:length]
	}
	for len(s) < length {
		s += " "
	}

	var v uint32
	for i := 0; i < length; i++ {
		v = v*40 + index(s[i])
	}
	return v
}

// Decode expands a base-40 packed word back into its six-character,
// space-padded, uppercase form.
func Decode(v uint32) string {
	var out [length]byte
	for i := length - 1; i >= 0; i-- {
		out[i] = alphabet[v%40]
		v /= 40
	}
	return string(out[:])
}
