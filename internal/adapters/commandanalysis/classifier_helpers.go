package commandanalysis

// indexOf returns the position of the first token exactly equal to delim, or -1.
// Substrings do not count: "a|b" is an ordinary word.
func indexOf(tokens []string, delim string) int {
	for i, tok := range tokens {
		if tok == delim {
			return i
		}
	}
	return -1
}
