package rs

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Yarik9008/LorettStratoLink/gf"
)

func evalPoly(codeword []byte, root byte) byte {
	var acc byte
	for _, c := range codeword {
		acc = gf.Mul(acc, root) ^ c
	}
	return acc
}

func TestSystematicProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nsym := rapid.IntRange(1, 64).Draw(t, "nsym")
		msg := rapid.SliceOfN(rapid.Uint8(), 1, 64).Draw(t, "msg")

		enc := New(nsym)
		parity := enc.Encode(msg)
		require.Len(t, parity, nsym)

		codeword := append(append([]byte{}, msg...), parity...)
		for i := 0; i < nsym; i++ {
			root := gf.ExpAt(i)
			require.Equal(t, byte(0), evalPoly(codeword, root), "root alpha^%d", i)
		}
	})
}

func TestEncodeDeterministic(t *testing.T) {
	enc := New(4)
	msg := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	p1 := enc.Encode(msg)
	p2 := enc.Encode(msg)
	require.Equal(t, p1, p2)
}

func TestSmallestFileVector(t *testing.T) {
	// spec.md §8 scenario 1: K=1, nsym=1, message [0xAB].
	enc := New(1)
	parity := enc.Encode([]byte{0xAB})
	require.Len(t, parity, 1)

	codeword := []byte{0xAB, parity[0]}
	require.Equal(t, byte(0), evalPoly(codeword, gf.ExpAt(0)))
}
