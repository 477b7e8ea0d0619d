package fix

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tentacle-scylla/scql/pkg/segment"
	"github.com/tentacle-scylla/scql/pkg/templatefile"
	"github.com/tentacle-scylla/scql/pkg/token"
	"github.com/tentacle-scylla/scql/pkg/types"
)

// FixPatch is one resolved edit, positioned in both templated and source
// coordinates, ready to splice into the source string. TemplatedSlice is
// the zero Range for a patch that came from a SourceFix rather than an
// anchored LintFix. Brought over from the original's FixPatch, which
// additionally carries the surrounding templated/source text for
// debugging; this port keeps only the "before" slices actually used by
// callers wanting to show a diff.
type FixPatch struct {
	TemplatedSlice     token.Range
	SourceSlice        token.Range
	FixedRaw           string
	TemplatedStrBefore string
	SourceStrBefore    string
}

// dedupeKey groups patches for overlap detection, matching the original's
// dedupe_tuple: two patches that touch the same source range are in
// conflict regardless of how they were derived.
func (p FixPatch) dedupeKey() token.Range { return p.SourceSlice }

// rawPatch is an intermediate, anchor-relative patch before it has been
// checked against template protection.
type rawPatch struct {
	anchor    segment.Id
	templated token.Range
	fixedRaw  string
}

// Apply runs the full fix-application pipeline: aggregate fixes per
// anchor, turn each AnchorEditInfo into one or more templated-space
// patches, reject (with a TemplateProtection diagnostic) any patch that
// would land inside non-literal templated text, merge in direct
// SourceFixes, dedupe/overlap-check in source space, and splice the
// survivors into tf's source string.
func Apply(tree *segment.Segment, tf *templatefile.TemplatedFile, fixes []LintFix) (fixedSource string, patches []FixPatch, errs types.Errors) {
	byAnchor, aggErrs := aggregate(fixes)
	errs = append(errs, aggErrs...)

	byId := make(map[segment.Id]*segment.Segment)
	indexById(tree, byId)

	var rawPatches []rawPatch
	var sourceFixes []SourceFix

	for _, id := range sortedAnchorIds(byAnchor) {
		info := byAnchor[id]
		anchorSeg, ok := byId[id]
		if !ok {
			errs = append(errs, &types.Error{
				Kind:    types.FixConflict,
				Message: fmt.Sprintf("fix: anchor %d does not name a segment in this tree", id),
			})
			continue
		}
		sourceFixes = append(sourceFixes, info.SourceFixes...)

		aRange := anchorSeg.TemplatedRange()
		before := rawOf(info.CreateBefore)
		after := rawOf(info.CreateAfter)

		if info.HasReplace || info.Delete {
			replacement := ""
			if info.HasReplace {
				replacement = rawOf(info.Replace)
			}
			rawPatches = append(rawPatches, rawPatch{
				anchor:    id,
				templated: aRange,
				fixedRaw:  before + replacement + after,
			})
			continue
		}

		if before != "" {
			p := token.Range{Start: aRange.Start, End: aRange.Start}
			rawPatches = append(rawPatches, rawPatch{anchor: id, templated: p, fixedRaw: before})
		}
		if after != "" {
			p := token.Range{Start: aRange.End, End: aRange.End}
			rawPatches = append(rawPatches, rawPatch{anchor: id, templated: p, fixedRaw: after})
		}
	}

	for _, rp := range rawPatches {
		srcRange, ok := literalSourceRange(tf, rp.templated)
		if !ok {
			errs = append(errs, &types.Error{
				Kind:    types.TemplateProtection,
				Message: fmt.Sprintf("fix: anchor %d: edit at templated offset %s falls inside a non-literal template region and was suppressed", rp.anchor, rp.templated),
			})
			continue
		}
		patches = append(patches, FixPatch{
			TemplatedSlice:     rp.templated,
			SourceSlice:        srcRange,
			FixedRaw:           rp.fixedRaw,
			TemplatedStrBefore: sliceOrEmpty(tf.TemplatedStr(), rp.templated),
			SourceStrBefore:    sliceOrEmpty(tf.SourceStr(), srcRange),
		})
	}

	for _, sf := range sourceFixes {
		patches = append(patches, FixPatch{
			SourceSlice:     sf.SourceSlice,
			FixedRaw:        sf.EditRaw,
			SourceStrBefore: sliceOrEmpty(tf.SourceStr(), sf.SourceSlice),
		})
	}

	sort.Slice(patches, func(i, j int) bool {
		if patches[i].SourceSlice.Start != patches[j].SourceSlice.Start {
			return patches[i].SourceSlice.Start < patches[j].SourceSlice.Start
		}
		return patches[i].SourceSlice.End < patches[j].SourceSlice.End
	})

	patches, conflicts := dropOverlapping(patches)
	errs = append(errs, conflicts...)

	fixedSource = splice(tf.SourceStr(), patches)
	return fixedSource, patches, errs
}

// literalSourceRange projects a templated-space range into source space,
// succeeding only if that range lies entirely within a single literal
// slice - template protection: edits inside templated-only text
// (expanded macro output, loop bodies, etc.) have no stable source
// position to land on and must be rejected rather than silently
// misplaced.
func literalSourceRange(tf *templatefile.TemplatedFile, rng token.Range) (token.Range, bool) {
	if rng.Empty() {
		for _, s := range tf.Slices() {
			if !s.Type.IsLiteral() {
				continue
			}
			if rng.Start >= s.TemplatedRange.Start && rng.Start <= s.TemplatedRange.End {
				pos := s.SourceRange.Start + (rng.Start - s.TemplatedRange.Start)
				return token.Range{Start: pos, End: pos}, true
			}
		}
		return token.Range{}, false
	}

	for _, s := range tf.Slices() {
		if !s.Type.IsLiteral() {
			continue
		}
		if !templatefile.RangeContains(s.TemplatedRange, rng) {
			continue
		}
		start := s.SourceRange.Start + (rng.Start - s.TemplatedRange.Start)
		end := s.SourceRange.Start + (rng.End - s.TemplatedRange.Start)
		return token.Range{Start: start, End: end}, true
	}
	return token.Range{}, false
}

// dropOverlapping keeps the first patch of every mutually-overlapping
// (or identical) run in source-sorted order and reports a FixConflict for
// every patch it drops, mirroring the original's dedupe-by-source-slice
// behaviour. Zero-width patches (insertions) are never dropped, even when
// several share one offset.
func dropOverlapping(sorted []FixPatch) ([]FixPatch, types.Errors) {
	var kept []FixPatch
	var errs types.Errors
	var lastEnd = -1
	for _, p := range sorted {
		if p.SourceSlice.Len() > 0 && p.SourceSlice.Start < lastEnd {
			errs = append(errs, &types.Error{
				Kind:    types.FixConflict,
				Message: fmt.Sprintf("fix: patch at source offset %s overlaps an earlier patch and was dropped", p.SourceSlice),
			})
			continue
		}
		kept = append(kept, p)
		if p.SourceSlice.End > lastEnd {
			lastEnd = p.SourceSlice.End
		}
	}
	return kept, errs
}

// splice applies patches (already sorted, non-overlapping) to source,
// producing the fixed source string. This is build_up_fixed_source_string
//: every byte of source not covered by a patch is carried through
// unchanged, including the source-only slices templating stripped, since
// those were never touched by any patch in the first place.
func splice(source string, patches []FixPatch) string {
	var b strings.Builder
	cursor := 0
	for _, p := range patches {
		if p.SourceSlice.Start > cursor {
			b.WriteString(source[cursor:p.SourceSlice.Start])
		}
		b.WriteString(p.FixedRaw)
		if p.SourceSlice.End > cursor {
			cursor = p.SourceSlice.End
		}
	}
	if cursor < len(source) {
		b.WriteString(source[cursor:])
	}
	return b.String()
}

func sliceOrEmpty(s string, r token.Range) string {
	if r.Start < 0 || r.End > len(s) || r.Start > r.End {
		return ""
	}
	return s[r.Start:r.End]
}
