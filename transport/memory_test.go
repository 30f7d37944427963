package transport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemorySinkRecordsPackets(t *testing.T) {
	sink := NewMemorySink()
	require.NoError(t, sink.WaitReady(context.Background()))
	require.NoError(t, sink.Transmit(context.Background(), []byte{1, 2, 3}))
	require.Equal(t, [][]byte{{1, 2, 3}}, sink.Packets())
}

func TestMemorySinkNotReadyTimesOut(t *testing.T) {
	sink := NewMemorySink()
	sink.SetReady(false)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	err := sink.WaitReady(ctx)
	require.ErrorIs(t, err, ErrTimeout)
}

func TestMemorySinkFailNextConsumedOnce(t *testing.T) {
	sink := NewMemorySink()
	sink.FailNext = ErrIO

	err := sink.Transmit(context.Background(), []byte{1})
	require.ErrorIs(t, err, ErrIO)

	err = sink.Transmit(context.Background(), []byte{2})
	require.NoError(t, err)
	require.Equal(t, [][]byte{{2}}, sink.Packets())
}
