// Command tx is the sender binary: it reads JPEG/WebP files from a
// directory, plans Reed-Solomon groups, and transmits FEC packets over
// a serial radio link.
package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Yarik9008/LorettStratoLink/config"
	"github.com/Yarik9008/LorettStratoLink/fileio"
	"github.com/Yarik9008/LorettStratoLink/sender"
	"github.com/Yarik9008/LorettStratoLink/transport"
)

// version is stamped at build time via -ldflags "-X main.version=...";
// it defaults to "dev" for local builds, matching the teacher's lack of
// any version string at all (it has no --version flag to begin with).
var version = "dev"

var (
	flagConfig   string
	flagDevice   string
	flagBaud     int
	flagCallsign string
	flagRatioNum int
	flagRatioDen int
	flagMaxSize  int
	flagDelayMS  int
)

func main() {
	logger := log.Default()

	root := &cobra.Command{
		Use:     "tx",
		Short:   "Transmit JPEG/WebP files over the FEC radio link",
		Version: version,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&flagDevice, "device", "", "serial device path")
	root.PersistentFlags().IntVar(&flagBaud, "baud", 0, "serial baud rate")
	root.PersistentFlags().StringVar(&flagCallsign, "callsign", "", "station callsign")
	root.PersistentFlags().IntVar(&flagRatioNum, "ratio-num", 0, "FEC ratio numerator")
	root.PersistentFlags().IntVar(&flagRatioDen, "ratio-den", 0, "FEC ratio denominator")
	root.PersistentFlags().IntVar(&flagMaxSize, "max-file-size", 0, "maximum source file size in bytes")
	root.PersistentFlags().IntVar(&flagDelayMS, "delay-ms", -1, "inter-packet delay in milliseconds")

	root.AddCommand(sendCmd(logger))
	root.AddCommand(watchCmd(logger))

	if err := root.Execute(); err != nil {
		logger.Fatal("tx failed", "err", err)
	}
}

func loadConfig() (config.Config, error) {
	overrides := map[string]any{}
	if flagDevice != "" {
		overrides["device"] = flagDevice
	}
	if flagBaud != 0 {
		overrides["baud"] = flagBaud
	}
	if flagCallsign != "" {
		overrides["callsign"] = flagCallsign
	}
	if flagRatioNum != 0 {
		overrides["ratio_num"] = flagRatioNum
	}
	if flagRatioDen != 0 {
		overrides["ratio_den"] = flagRatioDen
	}
	if flagMaxSize != 0 {
		overrides["max_file_size"] = flagMaxSize
	}
	return config.Load(flagConfig, overrides)
}

func buildSender(cfg config.Config, logger *log.Logger) (*sender.Sender, *transport.SerialSink, error) {
	sink, err := transport.OpenSerial(cfg.Device, cfg.Baud)
	if err != nil {
		return nil, nil, err
	}
	opts := sender.Options{
		Callsign:         cfg.Callsign,
		Ratio:            cfg.Ratio(),
		InterPacketDelay: transport.DefaultInterPacketDelay,
		Logger:           logger,
	}
	if flagDelayMS >= 0 {
		opts.InterPacketDelay = time.Duration(flagDelayMS) * time.Millisecond
	}
	return sender.New(sink, opts), sink, nil
}

func sendCmd(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "send <dir>",
		Short: "Scan a directory once and transmit every matching file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s, sink, err := buildSender(cfg, logger)
			if err != nil {
				return err
			}
			defer sink.Close()

			entries, err := fileio.Scan(args[0])
			if err != nil {
				return err
			}
			for _, e := range entries {
				data, err := fileio.Read(e.Path, int64(cfg.MaxFileSize))
				if err != nil {
					logger.Warn("skipping file", "path", e.Path, "err", err)
					continue
				}
				if err := s.SendFile(cmd.Context(), data); err != nil {
					logger.Warn("skipping file", "path", e.Path, "err", err)
				}
			}
			return nil
		},
	}
}

func watchCmd(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory and transmit files as they appear",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s, sink, err := buildSender(cfg, logger)
			if err != nil {
				return err
			}
			defer sink.Close()

			w, err := fileio.NewWatcher(args[0])
			if err != nil {
				return err
			}
			defer w.Close()

			ctx := cmd.Context()
			w.Run(func(path string) {
				data, err := fileio.Read(path, int64(cfg.MaxFileSize))
				if err != nil {
					logger.Warn("skipping file", "path", path, "err", err)
					return
				}
				if err := s.SendFile(ctx, data); err != nil {
					logger.Warn("skipping file", "path", path, "err", err)
				}
			}, func(err error) {
				logger.Error("watch error", "err", err)
			})
			return nil
		},
	}
}
