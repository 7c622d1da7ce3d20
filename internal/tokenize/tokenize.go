// Package tokenize splits a finalized command line into an argument
// vector.
//
// Splitting happens on runs of unquoted spaces; a span wrapped in double
// or single quotes becomes a single token with the quotes stripped and
// any enclosed spaces preserved. Multiple consecutive spaces never
// produce empty tokens.
//
// Two rules are applied uniformly regardless of position in the line:
// a quote character always opens a quoted span, and a span whose closing
// quote is missing extends to the end of the input and yields the partial
// token.
package tokenize

// Split tokenizes line into an ordered argument vector. It returns an
// empty slice for an empty or all-whitespace line.
func Split(line string) []string {
	line = trimLeadingSpaces(line)

	var args []string
	var word []byte
	inWord := false

	flush := func() {
		if inWord {
			args = append(args, string(word))
			word = word[:0]
			inWord = false
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"' || c == '\'':
			// Quoted span: everything up to the matching quote, taken
			// verbatim. A missing close quote consumes to end of input.
			quote := c
			i++
			start := i
			for i < len(line) && line[i] != quote {
				i++
			}
			// An empty quoted span ("" or '') contributes nothing;
			// tokens are always non-empty.
			if i > start || inWord {
				word = append(word, line[start:i]...)
				inWord = true
			}

		case c == ' ':
			flush()

		default:
			word = append(word, c)
			inWord = true
		}
	}

	flush()
	return args
}

func trimLeadingSpaces(line string) string {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return line[i:]
}
