package argv

// expandTokens rewrites the raw command line into the stream the dispatchers
// scan. It is a pure function: the input slice is never mutated.
//
// When comp is active, the completion marker is appended to the target token
// first, so splitting a compound cluster leaves the marker on the correct
// sub-token. A compound short-option cluster (`-qlf`, `-j3`) is split into
// single-letter flag tokens; the first non-alphabetic byte ends the split and
// the remainder becomes one trailing token (`-j3` -> `-j`, `3`). Tokens after
// a literal `--` pass through untouched; the `--` itself stays in the stream
// for the parse loop to consume.
func expandTokens(tokens []string, comp *Completions) []string {
	marked := -1
	if comp != nil {
		marked = comp.Target() - 1
	}

	out := make([]string, 0, len(tokens))
	positionalOnly := false

	for i, tok := range tokens {
		if i == marked {
			tok += completionMarker
		}
		if positionalOnly {
			out = append(out, tok)
			continue
		}
		if tok == "--" {
			positionalOnly = true
			out = append(out, tok)
			continue
		}
		if len(tok) <= 2 || tok[0] != '-' || tok[1] == '-' || !isAlpha(tok[1]) {
			out = append(out, tok)
			continue
		}

		// Compound cluster: -qlf -> -q -l -f, -j3 -> -j 3.
		out = append(out, tok[:2])
		for j := 2; j < len(tok); j++ {
			if isAlpha(tok[j]) {
				out = append(out, "-"+string(tok[j]))
				continue
			}
			out = append(out, tok[j:])
			break
		}
	}

	return out
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
