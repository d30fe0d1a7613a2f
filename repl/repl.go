// Copyright © 2024 The seqgen authors

package repl

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ergochat/readline"
	"github.com/luthersystems/seqgen/diagnostic"
	"github.com/luthersystems/seqgen/parser"
)

type config struct {
	stdin  io.ReadCloser
	stderr io.WriteCloser
	color  diagnostic.ColorMode
}

func newConfig(opts ...Option) *config {
	config := &config{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output to the REPL.
func WithStderr(stderr io.WriteCloser) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// WithColor controls ANSI color in rendered diagnostics.
func WithColor(mode diagnostic.ColorMode) Option {
	return func(c *config) {
		c.color = mode
	}
}

// Run reads sequence expressions line by line, evaluating each and
// printing the resulting values.  Errors render as annotated diagnostics
// and do not end the session.
func Run(prompt string, opts ...Option) {
	cfg := newConfig(opts...)

	var out io.Writer = os.Stderr
	if cfg.stderr != nil {
		out = cfg.stderr
	}

	histFile := historyPath()
	ensureHistoryFilePermissions(histFile)

	rlCfg := &readline.Config{
		Stdout:            out,
		Stderr:            out,
		Prompt:            prompt,
		HistoryFile:       histFile,
		HistorySearchFold: true,
		AutoComplete:      &rangeArgCompleter{},
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		panic(err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		values, err := parser.Eval(string(line))
		if err != nil {
			renderError(out, cfg.color, err)
			continue
		}
		fmt.Fprintln(out, formatValues(values)) //nolint:errcheck // best-effort REPL output
	}
}

func formatValues(values []int64) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(strs, " ")
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".seqgen_history")
}

// ensureHistoryFilePermissions creates the history file if needed and
// restricts it to mode 0600 so session history is not world-readable.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0600) //nolint:gosec // path is under the user's home
	if err != nil {
		return
	}
	f.Close() //nolint:errcheck,gosec // best-effort cleanup
	_ = os.Chmod(path, 0600)
}
