// Package sender implements the transmitter pipeline (C8): for each
// file, plan RS groups, emit data packets in block-id order, then emit
// parity packets group by group via column-wise Reed-Solomon encoding.
package sender

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Yarik9008/LorettStratoLink/callsign"
	"github.com/Yarik9008/LorettStratoLink/fecpacket"
	"github.com/Yarik9008/LorettStratoLink/filetype"
	"github.com/Yarik9008/LorettStratoLink/groupplan"
	"github.com/Yarik9008/LorettStratoLink/rs"
	"github.com/Yarik9008/LorettStratoLink/transport"
)

// Options configures a Sender.
type Options struct {
	Callsign         string
	Ratio            groupplan.Ratio
	ReadyTimeout     time.Duration
	InterPacketDelay time.Duration
	// OnPacketSent, if set, is called after every successful packet
	// transmission; it stands in for the original firmware's
	// per-packet status-LED toggle (spec.md §6, cosmetic and optional).
	OnPacketSent func(blockID uint16)
	Logger       *log.Logger
}

// Sender owns the scratch state for a run: the image counter persists
// across files, everything else is per-file.
type Sender struct {
	sink     transport.Sink
	opts     Options
	callsign uint32
	imageID  uint8
	log      *log.Logger
}

// New creates a Sender transmitting over sink.
func New(sink transport.Sink, opts Options) *Sender {
	if opts.ReadyTimeout == 0 {
		opts.ReadyTimeout = transport.DefaultReadyTimeout
	}
	l := opts.Logger
	if l == nil {
		l = log.Default()
	}
	return &Sender{
		sink:     sink,
		opts:     opts,
		callsign: callsign.Encode(opts.Callsign),
		log:      l,
	}
}

// SendFile transmits one file's data and parity blocks end to end,
// advancing the image counter whether or not the file fully succeeds.
// Per-packet transport failures are logged and skipped (spec.md §7);
// only a planning failure (bad K or ratio) aborts the whole file before
// anything is sent.
func (s *Sender) SendFile(ctx context.Context, data []byte) error {
	imageID := s.imageID
	s.imageID++ // wraps at 256 by virtue of uint8 overflow

	ft := filetype.Detect(data)
	k := ceilDiv(len(data), fecpacket.PayloadSize)
	if k < 1 {
		k = 1
	}

	plan, err := groupplan.Compute(k, s.opts.Ratio)
	if err != nil {
		s.log.Error("group planning failed, file abandoned", "err", err)
		return err
	}

	n := k + plan.G*plan.M
	base := fecpacket.Info{
		Callsign:  s.callsign,
		ImageID:   imageID,
		KData:     uint16(k),
		NTotal:    uint16(n),
		FileSize:  uint32(len(data)),
		FileType:  ft,
		MPerGroup: uint8(plan.M),
		NumGroups: uint8(plan.G),
	}

	s.sendDataBlocks(ctx, base, data, k)
	s.sendParityGroups(ctx, base, data, k, plan)
	return nil
}

func (s *Sender) sendDataBlocks(ctx context.Context, base fecpacket.Info, data []byte, k int) {
	for i := 0; i < k; i++ {
		payload := blockWindow(data, i)
		info := base
		info.BlockID = uint16(i)
		info.Payload = payload
		s.send(ctx, info)
	}
}

func (s *Sender) sendParityGroups(ctx context.Context, base fecpacket.Info, data []byte, k int, plan groupplan.Plan) {
	enc := rs.New(plan.M)

	for g := 0; g < plan.G; g++ {
		members := groupplan.Members(k, g, plan.G)
		padCount := plan.GS - len(members)

		parityRows := make([][]byte, plan.M)
		for p := range parityRows {
			parityRows[p] = make([]byte, fecpacket.PayloadSize)
		}

		for c := 0; c < fecpacket.PayloadSize; c++ {
			msg := make([]byte, 0, plan.GS)
			for _, bi := range members {
				msg = append(msg, blockByte(data, bi, c))
			}
			for i := 0; i < padCount; i++ {
				msg = append(msg, 0)
			}
			parity := enc.Encode(msg)
			for p := 0; p < plan.M; p++ {
				parityRows[p][c] = parity[p]
			}
		}

		for p := 0; p < plan.M; p++ {
			info := base
			info.BlockID = uint16(k + g*plan.M + p)
			info.Payload = parityRows[p]
			s.send(ctx, info)
		}
	}
}

func (s *Sender) send(ctx context.Context, info fecpacket.Info) {
	pkt := fecpacket.Build(info)

	readyCtx, cancel := context.WithTimeout(ctx, s.opts.ReadyTimeout)
	defer cancel()
	if err := s.sink.WaitReady(readyCtx); err != nil {
		s.log.Warn("radio not ready, packet skipped", "block_id", info.BlockID, "err", err)
		return
	}

	if err := s.sink.Transmit(readyCtx, pkt[:]); err != nil {
		s.log.Warn("transmit failed, packet skipped", "block_id", info.BlockID, "err", err)
		return
	}

	if s.opts.OnPacketSent != nil {
		s.opts.OnPacketSent(info.BlockID)
	}
	if s.opts.InterPacketDelay > 0 {
		select {
		case <-time.After(s.opts.InterPacketDelay):
		case <-ctx.Done():
		}
	}
}

// blockWindow returns block i's 200-byte window of data, zero-padded
// past EOF.
func blockWindow(data []byte, i int) []byte {
	start := i * fecpacket.PayloadSize
	out := make([]byte, fecpacket.PayloadSize)
	if start >= len(data) {
		return out
	}
	end := start + fecpacket.PayloadSize
	if end > len(data) {
		end = len(data)
	}
	copy(out, data[start:end])
	return out
}

// blockByte returns the byte at column c of block i, or 0 past EOF.
func blockByte(data []byte, i, c int) byte {
	idx := i*fecpacket.PayloadSize + c
	if idx >= len(data) {
		return 0
	}
	return data[idx]
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
