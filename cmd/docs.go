// Copyright © 2024 The seqgen authors

package cmd

import (
	"fmt"

	"github.com/luthersystems/seqgen/docs"
	"github.com/spf13/cobra"
)

// docsCmd represents the docs command
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the sequence expression language reference",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(docs.LangGuide)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
