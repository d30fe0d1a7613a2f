// Copyright © 2024 The seqgen authors

package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func complete(line string) []string {
	c := &rangeArgCompleter{}
	suffixes, _ := c.Do([]rune(line), len(line))
	var out []string
	for _, s := range suffixes {
		out = append(out, line[len(line)-completePrefixLen(line):]+string(s))
	}
	return out
}

func completePrefixLen(line string) int {
	c := &rangeArgCompleter{}
	_, n := c.Do([]rune(line), len(line))
	return n
}

func TestCompleteMarkers(t *testing.T) {
	assert.Equal(t, []string{"s:"}, complete("{1..=5, s"))
	assert.Equal(t, []string{"m:"}, complete("{1..=5, m"))
}

func TestCompleteOutsideBrace(t *testing.T) {
	assert.Empty(t, complete("1, 2, s"))
	assert.Empty(t, complete("{1..=5}, s"))
}

func TestCompleteEmptyPrefix(t *testing.T) {
	assert.Empty(t, complete("{1..=5, "))
}

func TestCompleteFullMarker(t *testing.T) {
	// A fully typed marker has nothing left to append.
	assert.Empty(t, complete("{1..=5, s:"))
}
