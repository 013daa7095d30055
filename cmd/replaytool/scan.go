package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	marblereplay "github.com/raniellyferreira/marble-replay"
	"github.com/raniellyferreira/marble-replay/internal/batch"
)

var (
	okLabel   = color.New(color.FgGreen).Sprint("OK  ")
	dupLabel  = color.New(color.FgYellow).Sprint("DUP ")
	failLabel = color.New(color.FgRed).Sprint("FAIL")
)

// errScanFailures makes the process exit non-zero after a complete scan
// that found bad files
var errScanFailures = fmt.Errorf("some replays failed to decode")

func newScanCmd(a *app) *cobra.Command {
	var ext string

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Decode every replay file under a directory",
		Long:  "Recursively decodes every replay file under a directory, reporting each file's outcome and a summary. Files with identical content are decoded once.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &batch.Scanner{
				Decoder:  a.decoder,
				Workers:  a.cfg.Workers,
				Ext:      ext,
				FailFast: a.cfg.FailFast,
				Logger:   a.logger,
			}

			results, err := s.Scan(cmd.Context(), args[0])
			out := cmd.OutOrStdout()
			for _, r := range results {
				rel, relErr := filepath.Rel(args[0], r.Path)
				if relErr != nil {
					rel = r.Path
				}
				switch {
				case r.Duplicate:
					fmt.Fprintf(out, "%s %s (%016x)\n", dupLabel, rel, r.Fingerprint)
				case r.Err != nil:
					fmt.Fprintf(out, "%s %s: %s: %v\n", failLabel, rel, marblereplay.ErrorKind(r.Err), r.Err)
				default:
					fmt.Fprintf(out, "%s %s rewindables=%d elapsed=%s\n", okLabel, rel, r.Rewindables, r.Elapsed)
				}
			}
			if err != nil {
				return err
			}

			sum := batch.Summarize(results)
			fmt.Fprintf(out, "\n%d files, %d decoded, %d failed, %d duplicates, %d rewindables, %d bytes\n",
				sum.Files, sum.Decoded, sum.Failed, sum.Duplicates, sum.Rewindables, sum.Bytes)

			types := make([]string, 0, len(sum.Types))
			for name := range sum.Types {
				types = append(types, name)
			}
			sort.Strings(types)
			for _, name := range types {
				fmt.Fprintf(out, "  %-20s %d\n", name, sum.Types[name])
			}

			if sum.Failed > 0 {
				return errScanFailures
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ext, "ext", batch.DefaultExt, "Replay file extension")
	cmd.Flags().IntVarP(&a.cfg.Workers, "workers", "w", a.cfg.Workers, "Number of parallel decoders (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&a.cfg.FailFast, "fail-fast", a.cfg.FailFast, "Stop at the first file that fails to decode")
	return cmd
}
