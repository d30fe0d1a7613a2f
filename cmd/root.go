// Copyright © 2024 The seqgen authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	colorFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "seqgen",
	Short: "seqgen - integer sequence expression evaluator",
	Long: `seqgen evaluates integer sequence expressions into flat lists of
numbers. An expression is a comma-separated list of integers, parenthesized
arithmetic, and brace-delimited ranges.

Getting started:
  seqgen eval '1, 2, 3'              Evaluate literal items
  seqgen eval '{1..=10, s:2}'        Expand a stepped range
  seqgen eval '{0..5, m:@*@}'        Square each generated value
  seqgen eval '(2^10), -4'           Mix arithmetic and literals
  seqgen tokens '{1..=5}'            Show the token stream for an expression
  seqgen repl                        Start an interactive session

Expression overview:
  Items are separated by commas: 1, -2, (3*4), {0..10}.
  Arithmetic uses + - * / ^ % inside parentheses, with unary signs binding
  tightest, then ^, then * / %, then + and -.
  Ranges are written {start..end} (end exclusive) or {start..=end} (end
  inclusive), with optional arguments s:<step> and m:<mutation>. In a
  mutation, @ names the generated value, and a leading operator applies to
  the generated value implicitly: m:+2 and m:@+2 are the same mutation.
  Underscores may group digits: 1_000_000.

More information:
  Source code:     https://github.com/luthersystems/seqgen`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.seqgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored output: "auto", "always", or "never".`)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".seqgen" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".seqgen")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
