// Command replaytool scans, inspects and benchmarks marble replay files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	marblereplay "github.com/raniellyferreira/marble-replay"
	"github.com/raniellyferreira/marble-replay/metrics"
	"github.com/raniellyferreira/marble-replay/protocol"
)

// app carries state shared by subcommands for one invocation
type app struct {
	cfg       *Config
	logger    marblereplay.Logger
	encoding  protocol.StringEncoding
	decoder   *marblereplay.Decoder
	collector *metrics.Collector
}

// flushMetrics writes the metrics textfile, if one is configured. It runs
// after the command whether or not it failed.
func (a *app) flushMetrics() error {
	if a.collector == nil {
		return nil
	}
	return a.collector.WriteTextfile(a.cfg.MetricsFile)
}

// execute runs the command line args and then flushes metrics
func execute(cfg *Config, args []string, out, errOut io.Writer) error {
	a := &app{cfg: cfg}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.Execute()
	if ferr := a.flushMetrics(); ferr != nil && err == nil {
		err = fmt.Errorf("write metrics: %w", ferr)
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	cfg := a.cfg

	rootCmd := &cobra.Command{
		Use:           "replaytool",
		Short:         "Decode and analyze marble replay files",
		Long:          "Decode marble replay files: scan directory trees, inspect single replays, benchmark decoding and run Lua analysis scripts.",
		Version:       marblereplay.VersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Int64Var(&cfg.MaxInflated, "max-inflated", cfg.MaxInflated, "Maximum inflated payload size in bytes (0 = unlimited)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.StringEncoding, "string-encoding", cfg.StringEncoding, "Payload string length prefix (fixed32 or varint)")
	flags.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write Prometheus metrics to this file on exit")

	rootCmd.AddCommand(
		newScanCmd(a),
		newInspectCmd(a),
		newBenchCmd(a),
		newEvalCmd(a),
	)
	return rootCmd
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := execute(cfg, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
