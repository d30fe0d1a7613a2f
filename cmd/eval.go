// Copyright © 2024 The seqgen authors

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/luthersystems/seqgen/parser"
	"github.com/spf13/cobra"
)

var evalSeparator string

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate sequence expressions",
	Long: `Evaluate each argument as a sequence expression and print the
resulting integers to stdout, one argument per line.

Examples:
  seqgen eval '1, 2, 3'
  seqgen eval '{10..=0, s:-2}'
  seqgen eval --separator=, '{1..=5, m:@*@}'`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, arg := range args {
			values, err := parser.Eval(arg)
			if err != nil {
				renderError(err)
				os.Exit(1)
			}
			fmt.Println(formatValues(values, evalSeparator))
		}
	},
}

func formatValues(values []int64, sep string) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(strs, sep)
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalSeparator, "separator", "s", " ",
		"String printed between output values")
}
