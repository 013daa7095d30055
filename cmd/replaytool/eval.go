package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raniellyferreira/marble-replay/lua"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <file> <script|@script.lua> [args...]",
		Short: "Run a Lua script against a decoded replay",
		Long:  "Decodes a replay and runs a Lua script against its replay buffer. Prefix the script with @ to read it from a file. Extra arguments are available to the script as ARGV.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			_, buf, err := a.decoder.DecodeReplay(data)
			if err != nil {
				return err
			}

			script := args[1]
			if path, ok := strings.CutPrefix(script, "@"); ok {
				b, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				script = string(b)
			}

			result, err := lua.NewEngine(buf).Eval(script, args[2:])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			return nil
		},
	}
}
