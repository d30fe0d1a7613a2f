// Copyright © 2024 The seqgen authors

package repl

// rangeArgCompleter implements readline.AutoCompleter for the range
// argument markers that are only valid inside braces.
type rangeArgCompleter struct{}

var rangeArgMarkers = []string{"s:", "m:"}

func (c *rangeArgCompleter) Do(line []rune, pos int) ([][]rune, int) {
	if !insideBrace(line, pos) {
		return nil, 0
	}

	// Extract the word being typed (backwards from cursor to a separator).
	start := pos
	for start > 0 {
		ch := line[start-1]
		if ch == ' ' || ch == '\t' || ch == ',' || ch == '{' {
			break
		}
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}

	// Build completions: each entry is the suffix to append.
	var result [][]rune
	for _, marker := range rangeArgMarkers {
		if len(prefix) < len(marker) && marker[:len(prefix)] == prefix {
			result = append(result, []rune(marker[len(prefix):]))
		}
	}
	return result, len(prefix)
}

// insideBrace reports whether the cursor sits inside an unclosed range
// expression.
func insideBrace(line []rune, pos int) bool {
	depth := 0
	for _, ch := range line[:pos] {
		switch ch {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		}
	}
	return depth > 0
}
