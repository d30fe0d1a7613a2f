// Copyright © 2024 The seqgen authors

package main

import "github.com/luthersystems/seqgen/cmd"

func main() {
	cmd.Execute()
}
