package dialects

import "regexp"

// Shared regex fragments used by more than one dialect's grammar. Lexer
// matcher patterns live in the embedded YAML; these are grammar-level
// patterns applied to an already-lexed token's Raw text (e.g. distinguishing
// a plain word from a reserved keyword is a Keyword lookup, not a regex,
// but picking which already-Word tokens are valid identifiers vs literals
// still wants a pattern).
var (
	wordPattern       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)
	anyPattern        = regexp.MustCompile(`^.*$`)
	numericPattern    = regexp.MustCompile(`^[0-9].*$`)
	comparisonPattern = regexp.MustCompile(`^(!=|<>|>=|<=|<|>)$`)
	arithmeticPattern = regexp.MustCompile(`^[+\-*/%]$`)
)
