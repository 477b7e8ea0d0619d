// Package testtemplater is a minimal Jinja-flavored templater used only by
// tests to exercise TemplatedFile's non-literal slices. It recognizes
// `{{ expr }}` value substitutions and `{% tag %}` block directives, in
// the spirit of flosch/pongo2's `{{`/`{%`/`{#` delimiter scanning, but it
// does not evaluate expressions: `{{ expr }}` always renders as the
// literal text "x", and block tags always render as nothing. The real
// dbt/Jinja templater is an external collaborator; this
// package only needs to produce realistic TemplatedFile values.
package testtemplater

import (
	"regexp"
	"strings"

	"github.com/tentacle-scylla/scql/pkg/templatefile"
	"github.com/tentacle-scylla/scql/pkg/token"
)

var directive = regexp.MustCompile(`\{[{%#][-\s]?.*?[-\s]?[}%#]\}`)

// Expand scans source for `{{ ... }}`, `{% ... %}` and `{# ... #}`
// directives and produces a TemplatedFile whose templated_str has value
// substitutions rendered as "x" and block/comment directives rendered as
// nothing.
func Expand(source string) *templatefile.TemplatedFile {
	matches := directive.FindAllStringIndex(source, -1)

	var slices []templatefile.Slice
	var templated strings.Builder
	cursor := 0
	tCursor := 0

	flushLiteral := func(end int) {
		if end > cursor {
			text := source[cursor:end]
			slices = append(slices, templatefile.Slice{
				Type:           templatefile.Literal,
				SourceRange:    token.Range{Start: cursor, End: end},
				TemplatedRange: token.Range{Start: tCursor, End: tCursor + len(text)},
			})
			templated.WriteString(text)
			tCursor += len(text)
			cursor = end
		}
	}

	for _, m := range matches {
		start, end := m[0], m[1]
		flushLiteral(start)

		directiveText := source[start:end]
		switch {
		case strings.HasPrefix(directiveText, "{{"):
			templated.WriteString("x")
			slices = append(slices, templatefile.Slice{
				Type:           templatefile.Templated,
				SourceRange:    token.Range{Start: start, End: end},
				TemplatedRange: token.Range{Start: tCursor, End: tCursor + 1},
			})
			tCursor++
		case strings.HasPrefix(directiveText, "{#"):
			slices = append(slices, templatefile.Slice{
				Type:           templatefile.Comment,
				SourceRange:    token.Range{Start: start, End: end},
				TemplatedRange: token.Range{Start: tCursor, End: tCursor},
			})
		default:
			kind := templatefile.BlockMid
			switch {
			case strings.Contains(directiveText, "end"):
				kind = templatefile.BlockEnd
			default:
				kind = templatefile.BlockStart
			}
			slices = append(slices, templatefile.Slice{
				Type:           kind,
				SourceRange:    token.Range{Start: start, End: end},
				TemplatedRange: token.Range{Start: tCursor, End: tCursor},
			})
		}
		cursor = end
	}
	flushLiteral(len(source))

	tf, err := templatefile.New(source, templated.String(), slices)
	if err != nil {
		panic(err)
	}
	return tf
}
