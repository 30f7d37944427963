package receiver

import (
	"io"

	"github.com/pkg/errors"

	"github.com/Yarik9008/LorettStratoLink/transport"
)

// WriteFrame forwards one emitted Frame to the host channel: a
// blocking write of the 256-byte FEC frame, then the 10-byte telemetry
// frame, per spec.md §6. The rx command passes a Unix domain socket
// connected to the host decoder, or stdout when no socket is configured.
func WriteFrame(w io.Writer, f Frame) error {
	if _, err := w.Write(f.FEC[:]); err != nil {
		return errors.Wrap(transport.ErrIO, err.Error())
	}
	if _, err := w.Write(f.Telemetry[:]); err != nil {
		return errors.Wrap(transport.ErrIO, err.Error())
	}
	return nil
}
