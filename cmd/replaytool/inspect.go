package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/raniellyferreira/marble-replay/replay"
)

func newInspectCmd(a *app) *cobra.Command {
	var showFields bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the contents of one replay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			rp, buf, err := a.decoder.DecodeReplay(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "type id:     %d\n", rp.TypeID)
			fmt.Fprintf(out, "version:     %d\n", rp.Version)
			fmt.Fprintf(out, "updated at:  %s\n", rp.UpdatedAt)
			fmt.Fprintf(out, "level:       %s\n", rp.Data.Level)
			fmt.Fprintf(out, "player:      %s\n", rp.Data.Player)
			fmt.Fprintf(out, "score:       %g\n", rp.Data.Score)
			c := rp.Data.Cosmetics
			fmt.Fprintf(out, "cosmetics:   skin=%s trail=%s respawn=%s hat=%s blast=%s\n", c.Skin, c.Trail, c.Respawn, c.Hat, c.Blast)
			fmt.Fprintf(out, "session:     %d\n", buf.Header.Session)
			fmt.Fprintf(out, "buffer:      version %d, %d bytes, %d inflated\n", buf.Header.Version, len(rp.Data.ReplayBuffer), buf.InflatedSize)
			fmt.Fprintf(out, "rewindables: %d\n", buf.RewindableCount)

			counts := buf.TypeCounts()
			types := make([]string, 0, len(counts))
			for name := range counts {
				types = append(types, name)
			}
			sort.Strings(types)
			for _, name := range types {
				fmt.Fprintf(out, "  %-20s %d\n", name, counts[name])
			}

			if showFields {
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "\nOBJECT\tTYPE\tFIELD\tCURVE\tSAMPLES")
				for _, rw := range buf.Rewindables {
					for _, f := range rw.Fields {
						fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", rw.GameObjectName, rw.TypeName, f.Name, f.Type, f.Curve.SampleCount())
					}
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}

			return printMarble(cmd, buf)
		},
	}

	cmd.Flags().BoolVarP(&showFields, "fields", "f", false, "List every field of every rewindable")
	return cmd
}

// printMarble prints where the player's marble started and ended
func printMarble(cmd *cobra.Command, buf *replay.Buffer) error {
	out := cmd.OutOrStdout()

	m, err := buf.Marble()
	if err != nil {
		fmt.Fprintf(out, "marble:      %v\n", err)
		return nil
	}
	pos, err := m.Position()
	if err != nil {
		return err
	}
	if pos.Curve.Len() == 0 {
		fmt.Fprintln(out, "marble:      no position samples")
		return nil
	}

	t0, first, _ := pos.Curve.Sample(0)
	t1, last, _ := pos.Curve.Sample(pos.Curve.Len() - 1)
	fmt.Fprintf(out, "marble:      %d samples, (%.2f, %.2f, %.2f) at %.2fs to (%.2f, %.2f, %.2f) at %.2fs\n",
		pos.Curve.Len(), first.X, first.Y, first.Z, t0, last.X, last.Y, last.Z, t1)
	return nil
}
