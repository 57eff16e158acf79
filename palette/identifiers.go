package palette

import "github.com/beevik/prefixtree/v2"

// keywords resolves the one reserved word of the palette grammar —
// `gradient`, introducing the supplemented alternate grammar — the
// same abbreviation-resistant way expr's identifiers table resolves
// function names: a match is accepted only if the parsed word equals
// the stored name exactly, not merely a unique prefix of it.
var keywords = prefixtree.New[string]()

const gradientKeyword = "gradient"

func init() {
	keywords.Add(gradientKeyword, gradientKeyword)
}

// lookupKeyword reports whether word is exactly the reserved
// `gradient` keyword.
func lookupKeyword(word string) bool {
	name, err := keywords.FindValue(word)
	return err == nil && name == word
}
