package callsign

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncodeKnownVector(t *testing.T) {
	require.Equal(t, uint32(2213591589), Encode("LORETT"))
}

func TestRoundTripAlphabetChars(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 6).Draw(t, "n")
		var b strings.Builder
		for i := 0; i < n; i++ {
			idx := rapid.IntRange(0, len(alphabet)-1).Draw(t, "idx")
			b.WriteByte(alphabet[idx])
		}
		s := b.String()

		want := strings.ToUpper(s)
		for len(want) < length {
			want += " "
		}
		require.Equal(t, want, Decode(Encode(s)))
	})
}

func TestEncodeTruncatesLongInput(t *testing.T) {
	require.Equal(t, Encode("LORETTSTRATO"), Encode("LORETT"))
}
