// Command rx is the receiver binary: it drains a serial radio link,
// resynchronises on the FEC sync pair, and forwards each reconstructed
// frame plus its telemetry sibling to a host channel.
package main

import (
	"io"
	"net"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Yarik9008/LorettStratoLink/config"
	"github.com/Yarik9008/LorettStratoLink/receiver"
	"github.com/Yarik9008/LorettStratoLink/transport"
)

// version is stamped at build time via -ldflags "-X main.version=...";
// it defaults to "dev" for local builds, matching the teacher's lack of
// any version string at all (it has no --version flag to begin with).
var version = "dev"

var (
	flagConfig string
	flagDevice string
	flagBaud   int
	flagRing   int
	flagHost   string
)

func main() {
	logger := log.Default()

	root := &cobra.Command{
		Use:     "rx",
		Short:   "Receive FEC frames from the radio link and forward them to a host channel",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, logger)
		},
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&flagDevice, "device", "", "serial device path")
	root.PersistentFlags().IntVar(&flagBaud, "baud", 0, "serial baud rate")
	root.PersistentFlags().IntVar(&flagRing, "ring-capacity", 0, "ring buffer capacity (power of two)")
	root.PersistentFlags().StringVar(&flagHost, "host", "", "unix socket path to forward frames to; empty writes to stdout")

	if err := root.Execute(); err != nil {
		logger.Fatal("rx failed", "err", err)
	}
}

func run(cmd *cobra.Command, logger *log.Logger) error {
	overrides := map[string]any{}
	if flagDevice != "" {
		overrides["device"] = flagDevice
	}
	if flagBaud != 0 {
		overrides["baud"] = flagBaud
	}
	if flagRing != 0 {
		overrides["ring_capacity"] = flagRing
	}
	if flagHost != "" {
		overrides["host_addr"] = flagHost
	}
	cfg, err := config.Load(flagConfig, overrides)
	if err != nil {
		return err
	}

	src, err := transport.OpenSerialSource(cfg.Device, cfg.Baud)
	if err != nil {
		return err
	}
	defer src.Close()

	host, err := openHostChannel(cfg.HostAddr)
	if err != nil {
		return err
	}
	defer host.Close()

	rcv := receiver.New(cfg.RingCapacity)

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := src.ReadInto(rcv.Push); err != nil {
			logger.Warn("serial read error", "err", err)
			continue
		}

		for _, f := range rcv.Poll() {
			logger.Debug("telemetry frame", "rssi", f.RSSI, "frames", rcv.Stats.FramesEmitted, "discarded", rcv.Stats.BytesDiscarded)
			if err := receiver.WriteFrame(host, f); err != nil {
				logger.Warn("host forward failed", "err", err)
			}
		}
	}
}

// hostChannel is the receiver's forwarding sink: a Unix domain socket
// when HostAddr is set, stdout otherwise, matching the "blocking write
// of the FEC frame, then the telemetry frame" contract of spec.md §6.
type hostChannel struct {
	io.Writer
	closer io.Closer
}

func (h hostChannel) Close() error {
	if h.closer != nil {
		return h.closer.Close()
	}
	return nil
}

func openHostChannel(addr string) (hostChannel, error) {
	if addr == "" {
		return hostChannel{Writer: os.Stdout}, nil
	}
	conn, err := net.Dial("unix", addr)
	if err != nil {
		return hostChannel{}, err
	}
	return hostChannel{Writer: conn, closer: conn}, nil
}
