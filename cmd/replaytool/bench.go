package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raniellyferreira/marble-replay/replay"
)

func newBenchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bench <file>",
		Short: "Compare envelope-only and full decode throughput",
		Long:  "Benchmarks parsing only the MessagePack envelope of a replay against a full decode of its replay buffer, reporting cost per operation and per input byte.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if _, _, err := a.decoder.DecodeReplay(data); err != nil {
				return err
			}

			envelope := testing.Benchmark(func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := replay.ParseReplay(data); err != nil {
						b.Fatal(err)
					}
				}
			})

			// bypass the stats and metrics of a.decoder
			dec := replay.NewDecoder(
				replay.WithMaxInflatedSize(a.cfg.MaxInflated),
				replay.WithStringEncoding(a.encoding),
			)

			full := testing.Benchmark(func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					rp, err := replay.ParseReplay(data)
					if err != nil {
						b.Fatal(err)
					}
					if _, err := dec.Decode(rp.Data.ReplayBuffer); err != nil {
						b.Fatal(err)
					}
				}
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "input: %d bytes\n", len(data))
			report(cmd, "envelope", envelope, len(data))
			report(cmd, "full", full, len(data))
			if envelope.NsPerOp() > 0 {
				fmt.Fprintf(out, "full decode costs %.1fx envelope parsing\n", float64(full.NsPerOp())/float64(envelope.NsPerOp()))
			}
			return nil
		},
	}
}

func report(cmd *cobra.Command, name string, r testing.BenchmarkResult, size int) {
	perByte := 0.0
	if size > 0 {
		perByte = float64(r.NsPerOp()) / float64(size)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%-9s %10d ns/op %8.2f ns/byte %8d B/op %6d allocs/op\n",
		name, r.NsPerOp(), perByte, r.AllocedBytesPerOp(), r.AllocsPerOp())
}
