// Copyright © 2024 The seqgen authors

package cmd

import (
	"os"
	"path/filepath"

	"github.com/luthersystems/seqgen/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive sequence evaluator",
	Long: `Start an interactive read-eval-print loop for sequence expressions.

Line editing and in-session command history are supported via readline.
Use Ctrl-D or Ctrl-C to exit.

Example session:
  seqgen> 1, 2, 3
  1 2 3
  seqgen> {0..=10, s:2}
  0 2 4 6 8 10
  seqgen> (2^10)
  1024
  seqgen> {1..=3, m:@*100}
  100 200 300`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.Run(filepath.Base(os.Args[0])+"> ", repl.WithColor(colorMode()))
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
