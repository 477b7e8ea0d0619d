// Package dialect holds the per-SQL-dialect configuration: keyword sets,
// lexer matcher tables, bracket pairs, and the named grammar graph a
// parse walks starting from FileSegment. Keyword and lexer-matcher data
// is declarative and lives in embedded YAML; the grammar graph
// itself is Go code, since it is a graph of combinators, not data.
package dialect

import (
	"fmt"

	"github.com/tentacle-scylla/scql/pkg/grammar"
	"github.com/tentacle-scylla/scql/pkg/lexer"
	"github.com/tentacle-scylla/scql/pkg/token"
)

// BracketPair names an opening/closing token kind pair recognized as
// brackets by this dialect (parens, square brackets, curly braces).
type BracketPair struct {
	Name  string
	Open  token.SyntaxKind
	Close token.SyntaxKind
}

// Dialect is the full configuration for one SQL flavor. It implements
// grammar.Dialect, which is the only view pkg/grammar has of it (pkg/grammar
// never imports this package, avoiding a cycle: this package imports
// grammar, not the reverse).
type Dialect struct {
	Name    string
	Parent  *Dialect
	keywordSets map[string]map[string]struct{}
	grammars    map[string]grammar.Matchable
	Brackets    []BracketPair
	CaseFold    bool // true: keyword comparisons are case-insensitive (SQL default)

	lexMatchers []lexer.Matcher
	frozen      bool
}

// New builds an empty dialect with the given name, ready for Patch calls.
func New(name string) *Dialect {
	return &Dialect{
		Name:        name,
		keywordSets: make(map[string]map[string]struct{}),
		grammars:    make(map[string]grammar.Matchable),
		CaseFold:    true,
	}
}

// CopyFrom deep-copies parent's keyword sets, grammar map, and lexer
// matchers into d, then records parent as d's Parent for traceability.
// Dialect inheritance in this engine is deep-copy-then-patch, not runtime
// delegation, so a child dialect's Patch calls never perturb its parent's
// already-frozen tables.
func (d *Dialect) CopyFrom(parent *Dialect) *Dialect {
	d.Parent = parent
	for set, words := range parent.keywordSets {
		cp := make(map[string]struct{}, len(words))
		for w := range words {
			cp[w] = struct{}{}
		}
		d.keywordSets[set] = cp
	}
	for name, g := range parent.grammars {
		d.grammars[name] = g
	}
	d.Brackets = append([]BracketPair{}, parent.Brackets...)
	d.lexMatchers = append([]lexer.Matcher{}, parent.lexMatchers...)
	d.CaseFold = parent.CaseFold
	return d
}

// PatchGrammar replaces (or adds) the named grammar. Called during dialect
// construction, before the dialect is handed to a parser; panics if called
// after Freeze, since a frozen dialect's grammar graph may already be
// shared across concurrent parses.
func (d *Dialect) PatchGrammar(name string, g grammar.Matchable) {
	d.mustNotBeFrozen("PatchGrammar")
	d.grammars[name] = g
}

// PatchKeywordSet replaces (or adds) a named keyword set.
func (d *Dialect) PatchKeywordSet(setName string, words []string) {
	d.mustNotBeFrozen("PatchKeywordSet")
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[upper(w)] = struct{}{}
	}
	d.keywordSets[setName] = set
}

// AddKeywords merges words into the named keyword set without clearing
// existing entries (used for "unreserved_keywords plus these extras").
func (d *Dialect) AddKeywords(setName string, words []string) {
	d.mustNotBeFrozen("AddKeywords")
	set, ok := d.keywordSets[setName]
	if !ok {
		set = make(map[string]struct{})
		d.keywordSets[setName] = set
	}
	for _, w := range words {
		set[upper(w)] = struct{}{}
	}
}

// RemoveKeywords deletes words from the named keyword set (used when a
// dialect un-reserves a keyword its parent reserved).
func (d *Dialect) RemoveKeywords(setName string, words []string) {
	d.mustNotBeFrozen("RemoveKeywords")
	set, ok := d.keywordSets[setName]
	if !ok {
		return
	}
	for _, w := range words {
		delete(set, upper(w))
	}
}

// SetLexMatchers replaces the dialect's lexer matcher table.
func (d *Dialect) SetLexMatchers(matchers []lexer.Matcher) {
	d.mustNotBeFrozen("SetLexMatchers")
	d.lexMatchers = matchers
}

// Freeze marks the dialect immutable. A frozen dialect is safe to share
// across goroutines parsing concurrently.
func (d *Dialect) Freeze() *Dialect {
	d.frozen = true
	return d
}

func (d *Dialect) mustNotBeFrozen(op string) {
	if d.frozen {
		panic(fmt.Sprintf("dialect %q: %s called after Freeze", d.Name, op))
	}
}

// Grammar implements grammar.Dialect.
func (d *Dialect) Grammar(name string) (grammar.Matchable, bool) {
	g, ok := d.grammars[name]
	return g, ok
}

// Keywords implements grammar.Dialect.
func (d *Dialect) Keywords(setName string) map[string]struct{} {
	return d.keywordSets[setName]
}

// CaseSensitive implements grammar.Dialect.
func (d *Dialect) CaseSensitive() bool { return !d.CaseFold }

// IsKeyword reports whether word is in the keyword set named setName.
func (d *Dialect) IsKeyword(setName, word string) bool {
	set, ok := d.keywordSets[setName]
	if !ok {
		return false
	}
	_, found := set[upper(word)]
	return found
}

// Lexer builds a lexer.Lexer from this dialect's matcher table.
func (d *Dialect) Lexer() *lexer.Lexer {
	return lexer.New(d.lexMatchers)
}

// RootGrammar returns the FileSegment grammar, the entry point for a
// whole-file parse.
func (d *Dialect) RootGrammar() (grammar.Matchable, bool) {
	return d.Grammar("FileSegment")
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
