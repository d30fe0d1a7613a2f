// Copyright © 2024 The seqgen authors

// Package docs embeds the sequence expression language reference for use
// by the CLI.
package docs

import _ "embed"

//go:embed lang.md
var LangGuide string
