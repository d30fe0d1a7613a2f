// Copyright © 2024 The seqgen authors

package cmd

import (
	"os"

	"github.com/luthersystems/seqgen/diagnostic"
)

func colorMode() diagnostic.ColorMode {
	switch colorFlag {
	case "always":
		return diagnostic.ColorAlways
	case "never":
		return diagnostic.ColorNever
	default:
		return diagnostic.ColorAuto
	}
}

func newRenderer() *diagnostic.Renderer {
	return &diagnostic.Renderer{Color: colorMode()}
}

// renderError renders err with diagnostic formatting to stderr.
func renderError(err error) {
	d := diagnostic.FromError(err)
	r := newRenderer()
	_ = r.Render(os.Stderr, d)
}
