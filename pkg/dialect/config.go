package dialect

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/tentacle-scylla/scql/pkg/lexer"
	"github.com/tentacle-scylla/scql/pkg/token"
)

// lexMatcherConfig is the YAML shape of one lexer.Matcher entry. Pattern
// is compiled at load time; Literal matchers are assembled from the
// string as-is. Subdivider, when present, is the Name of another matcher
// defined in the same file, letting (e.g.) a
// multi-statement Whitespace-run matcher subdivide into individual
// Whitespace/Newline tokens.
type lexMatcherConfig struct {
	Name              string `yaml:"name"`
	Kind              string `yaml:"kind"`
	Literal           string `yaml:"literal,omitempty"`
	Pattern           string `yaml:"pattern,omitempty"`
	Subdivider        string `yaml:"subdivider,omitempty"`
	TrimPostSubdivide bool   `yaml:"trim_post_subdivide,omitempty"`
}

// dialectConfig is the YAML document shape for one dialect's declarative
// keyword/lexer tables.
type dialectConfig struct {
	Name          string              `yaml:"name"`
	Inherits      string              `yaml:"inherits,omitempty"`
	KeywordSets   map[string][]string `yaml:"keyword_sets"`
	LexerMatchers []lexMatcherConfig  `yaml:"lexer_matchers"`
}

// LoadConfig parses a dialectConfig document, merges its keyword sets into
// d's existing sets (so a dialect copied from a parent keeps the parent's
// words) and replaces d's lexer matchers with the document's list when it
// has one. Grammar construction (the combinator graph)
// is not data-driven and is left to dialect-specific Go code.
func LoadConfig(d *Dialect, doc []byte) error {
	var cfg dialectConfig
	if err := yaml.Unmarshal(doc, &cfg); err != nil {
		return fmt.Errorf("dialect %q: parsing config: %w", d.Name, err)
	}

	for setName, words := range cfg.KeywordSets {
		d.AddKeywords(setName, words)
	}

	byKind := make(map[string]*lexer.Matcher, len(cfg.LexerMatchers))
	matchers := make([]lexer.Matcher, 0, len(cfg.LexerMatchers))
	for _, mc := range cfg.LexerMatchers {
		m := lexer.Matcher{
			Name:              mc.Name,
			Kind:              kindByName(mc.Kind),
			Literal:           mc.Literal,
			TrimPostSubdivide: mc.TrimPostSubdivide,
		}
		if mc.Pattern != "" {
			re, err := regexp.Compile(mc.Pattern)
			if err != nil {
				return fmt.Errorf("dialect %q: matcher %q: compiling pattern: %w", d.Name, mc.Name, err)
			}
			m.Pattern = re
		}
		matchers = append(matchers, m)
		byKind[mc.Name] = &matchers[len(matchers)-1]
	}
	for i, mc := range cfg.LexerMatchers {
		if mc.Subdivider == "" {
			continue
		}
		sub, ok := byKind[mc.Subdivider]
		if !ok {
			return fmt.Errorf("dialect %q: matcher %q: unknown subdivider %q", d.Name, mc.Name, mc.Subdivider)
		}
		matchers[i].Subdivider = sub
	}
	if len(matchers) > 0 {
		d.SetLexMatchers(matchers)
	}
	return nil
}

func kindByName(name string) token.SyntaxKind {
	if k, ok := token.KindByName(name); ok {
		return k
	}
	return token.Unknown
}
