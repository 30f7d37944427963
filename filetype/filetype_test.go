package filetype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectJPEG(t *testing.T) {
	require.Equal(t, JPEG, Detect([]byte{0xFF, 0xD8, 0xFF, 0xE0}))
}

func TestDetectWebP(t *testing.T) {
	data := []byte("RIFF\x00\x00\x00\x00WEBPVP8 ")
	require.Equal(t, WebP, Detect(data))
}

func TestDetectRAW(t *testing.T) {
	require.Equal(t, RAW, Detect([]byte{0x00, 0x01, 0x02}))
	require.Equal(t, RAW, Detect(nil))
}
