// Copyright © 2024 The seqgen authors

package cmd

import (
	"fmt"
	"os"

	"github.com/luthersystems/seqgen/parser/lexer"
	"github.com/spf13/cobra"
)

// tokensCmd represents the tokens command
var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Print the token stream for an expression",
	Long: `Lex each argument and print its token stream, one token per line.
Useful for debugging surprising parses.

Example:
  seqgen tokens '{1..=5, s:2}'`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, arg := range args {
			tokens, err := lexer.Lex(arg)
			if err != nil {
				renderError(err)
				os.Exit(1)
			}
			for _, tok := range tokens {
				fmt.Println(tok.String())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
