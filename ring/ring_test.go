package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFIFOOrderUnderInterleaving(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := New(16)
		var model []byte

		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for s := 0; s < steps; s++ {
			if b.Len() < 16-1 && rapid.Bool().Draw(t, "push") {
				c := rapid.Uint8().Draw(t, "byte")
				b.Push(c)
				model = append(model, c)
			} else if b.Len() > 0 {
				n := rapid.IntRange(1, b.Len()).Draw(t, "popn")
				got := b.Pop(n)
				require.Equal(t, model[:n], got)
				model = model[n:]
			}
		}
		require.Equal(t, len(model), b.Len())
		for i, want := range model {
			require.Equal(t, want, b.Peek(i))
		}
	})
}

func TestNewPanicsOnNonPowerOfTwo(t *testing.T) {
	require.Panics(t, func() { New(3) })
}
