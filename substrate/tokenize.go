// File: tokenize.go
// Role: the single tokenizer shared by Digester.Digest and the hybrid query
// engine (spec §4.8 Phase 1: "same tokenization as digestion").
package substrate

import "strings"

// MinTokenLength is the shortest token kept after stop-word filtering (spec
// §4.4 step 2: "drop... tokens shorter than 3 chars").
const MinTokenLength = 3

// stopWords is a small, fixed English stop-word list. It is intentionally
// short: spec §4.4 only requires stop-words be dropped, not that a specific
// corpus-grade list be used.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "of": {}, "to": {},
	"in": {}, "on": {}, "for": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "by": {}, "with": {}, "at": {}, "as": {}, "it": {}, "this": {},
	"that": {}, "from": {}, "into": {}, "than": {}, "then": {}, "which": {},
	"who": {}, "has": {}, "have": {}, "had": {}, "not": {}, "but": {},
	"its": {}, "their": {}, "they": {}, "these": {}, "those": {}, "can": {},
}

// Tokenize lowercases content, splits on non-alphanumeric boundaries, and
// drops stop-words and tokens shorter than MinTokenLength (spec §4.4 step 2
// and §4.8 Phase 1).
func Tokenize(content string) []string {
	lower := strings.ToLower(content)

	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		return !isAlnum
	})

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) < MinTokenLength {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}

	return out
}

// TermFrequency returns raw term counts for tokens, and the total token
// count (for normalization).
func TermFrequency(tokens []string) (counts map[string]int, total int) {
	counts = make(map[string]int)
	for _, tok := range tokens {
		counts[tok]++
		total++
	}
	return counts, total
}
