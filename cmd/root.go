package cmd

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ffang0224/project-computer-networks/adapter"
	"github.com/ffang0224/project-computer-networks/config"
	"github.com/ffang0224/project-computer-networks/logging"
	"github.com/ffang0224/project-computer-networks/usecase"
)

// NewRootCmd builds the plotting command. Diagnostics go to stdout, logs and
// errors to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var cfgFile string
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "thruplot",
		Short: "Plot throughput, link capacity and congestion window of an experiment",
		Long: `thruplot buckets a packet-arrival trace into link capacity per second,
a receiver delivery log into throughput per second, and renders both as
throughput.pdf in --dir. The congestion-window log is rendered as cwnd.pdf
when it can be read; otherwise the error is printed and the run still succeeds.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			log := logging.New(stderr, cfg.LogLevel)
			log.Debug("configuration", "dir", cfg.Dir, "delivery", cfg.DeliveryPath(), "trace", cfg.Trace, "cwnd", cfg.Cwnd)

			_, err = newPlotter(cfg, stdout, log).Run()
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json) providing the same keys as the flags")
	f.StringP(config.KeyDir, "d", "", "directory to store outputs, also holds the delivery log (required)")
	f.StringP(config.KeyName, "n", "", "delivery log file name relative to --dir (required)")
	f.String(config.KeyTrace, "", "capacity trace: one integer timestamp per line, or a .pcap/.pcapng capture; alias -tr (required)")
	f.StringP(config.KeyCwnd, "c", config.DefaultCwnd, "path to the congestion window log")
	f.Int(config.KeyTraceMinPayload, 0, "pcap traces only: minimum TCP/UDP payload bytes for a packet to count")
	f.Bool(config.KeyPNG, false, "also keep PNG renderings of the charts")
	f.Bool(config.KeyCSV, false, "also export the derived series as bandwidth.csv and throughput.csv")
	f.String(config.KeyLogLevel, "info", "log level: debug, info, warn, error")

	return cmd
}

// Execute runs the command with args and returns the process exit status.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(stdout, stderr)
	root.SetArgs(NormalizeArgs(args))
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

// NormalizeArgs rewrites the two-letter single-dash alias -tr to --trace,
// which pflag would otherwise read as the shorthands -t -r.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			return append(out, args[i:]...)
		}
		switch {
		case a == "-tr":
			a = "--" + config.KeyTrace
		case strings.HasPrefix(a, "-tr="):
			a = "--" + config.KeyTrace + "=" + strings.TrimPrefix(a, "-tr=")
		}
		out = append(out, a)
	}
	return out
}

func newPlotter(cfg *config.Config, stdout io.Writer, log *slog.Logger) *usecase.Plotter {
	var trace usecase.TraceRepository = adapter.NewTextTraceRepository(cfg.Trace)
	if adapter.IsCaptureFile(cfg.Trace) {
		trace = adapter.NewPcapTraceRepository(cfg.Trace, cfg.TraceMinPayload)
	}

	p := usecase.NewPlotter(
		trace,
		adapter.NewCsvDeliveryRepository(cfg.DeliveryPath()),
		adapter.NewCsvCwndRepository(cfg.Cwnd),
		adapter.NewChartRepository(cfg.Dir, cfg.KeepPNG),
		adapter.NewConsoleReporter(stdout),
		log,
	)
	if cfg.ExportCSV {
		p.WithSeriesExport(adapter.NewCsvSeriesRepository(cfg.Dir))
	}
	return p
}
