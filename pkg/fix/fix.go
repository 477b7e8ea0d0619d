// Package fix implements the fix-application pipeline: a rule's
// LintFix values are anchored to specific segments, aggregated per anchor,
// turned into templated-space patches, filtered against template-region
// protection, and finally spliced onto the original source string.
package fix

import (
	"fmt"
	"sort"

	"github.com/tentacle-scylla/scql/pkg/segment"
	"github.com/tentacle-scylla/scql/pkg/token"
	"github.com/tentacle-scylla/scql/pkg/types"
)

// EditType is the kind of edit a LintFix performs relative to its anchor.
type EditType int

const (
	CreateBefore EditType = iota
	CreateAfter
	Replace
	Delete
)

func (e EditType) String() string {
	switch e {
	case CreateBefore:
		return "create_before"
	case CreateAfter:
		return "create_after"
	case Replace:
		return "replace"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// SourceFix is a pre-resolved source-level edit that bypasses the usual
// templated-space anchor mapping entirely: its SourceSlice and EditRaw are
// applied directly against the original source string. Rules use this for
// edits inside a templated region they have independently proven safe to
// touch (e.g. a literal default value embedded in a templated block),
// since ordinary LintFix anchors are always rejected there by template
// protection.
type SourceFix struct {
	SourceSlice token.Range
	EditRaw     string
}

// LintFix is one rule-proposed edit, anchored to a specific segment by id.
// Edit carries the replacement content for CreateBefore/CreateAfter/Replace
// (nil for Delete). SourceFixes carries any direct source-level edits this
// fix also wants to apply regardless of the anchor's templated-space
// fate.
type LintFix struct {
	EditType    EditType
	Anchor      segment.Id
	Edit        []*segment.Segment
	SourceFixes []SourceFix
}

// AnchorEditInfo aggregates every fix targeting one anchor. At most one
// Replace or Delete may target a given anchor; CreateBefore/CreateAfter may accumulate
// from multiple fixes (e.g. two different rules each inserting a space).
type AnchorEditInfo struct {
	CreateBefore []*segment.Segment
	CreateAfter  []*segment.Segment
	Replace      []*segment.Segment
	HasReplace   bool
	Delete       bool
	SourceFixes  []SourceFix
}

// Add merges fix into a, returning an error if fix conflicts with an
// already-aggregated Replace/Delete on the same anchor.
func (a *AnchorEditInfo) Add(f LintFix) error {
	switch f.EditType {
	case CreateBefore:
		a.CreateBefore = append(a.CreateBefore, f.Edit...)
	case CreateAfter:
		a.CreateAfter = append(a.CreateAfter, f.Edit...)
	case Replace:
		if a.HasReplace || a.Delete {
			return fmt.Errorf("fix: anchor %d already has a replace or delete fix", f.Anchor)
		}
		a.Replace = f.Edit
		a.HasReplace = true
	case Delete:
		if a.HasReplace || a.Delete {
			return fmt.Errorf("fix: anchor %d already has a replace or delete fix", f.Anchor)
		}
		a.Delete = true
	default:
		return fmt.Errorf("fix: anchor %d: unknown edit type %d", f.Anchor, f.EditType)
	}
	a.SourceFixes = append(a.SourceFixes, f.SourceFixes...)
	return nil
}

// aggregate groups fixes by anchor, returning a FixConflict diagnostic for
// every fix that loses a same-anchor Replace/Delete collision (the first
// writer for a given anchor wins; later conflicting fixes are dropped).
func aggregate(fixes []LintFix) (map[segment.Id]*AnchorEditInfo, types.Errors) {
	byAnchor := make(map[segment.Id]*AnchorEditInfo)
	var errs types.Errors
	for _, f := range fixes {
		info, ok := byAnchor[f.Anchor]
		if !ok {
			info = &AnchorEditInfo{}
			byAnchor[f.Anchor] = info
		}
		if err := info.Add(f); err != nil {
			errs = append(errs, &types.Error{
				Kind:    types.FixConflict,
				Message: err.Error(),
			})
		}
	}
	return byAnchor, errs
}

// indexById builds a lookup from segment id to segment, walking the whole
// tree (leaves and interior nodes alike, since an anchor may name either).
func indexById(root *segment.Segment, into map[segment.Id]*segment.Segment) {
	into[root.Id] = root
	for _, c := range root.Children {
		indexById(c, into)
	}
}

func rawOf(segs []*segment.Segment) string {
	var out string
	for _, s := range segs {
		out += s.RawText()
	}
	return out
}

// sortedAnchorIds returns anchor ids in ascending order, so patch
// generation is deterministic regardless of map iteration order.
func sortedAnchorIds(byAnchor map[segment.Id]*AnchorEditInfo) []segment.Id {
	ids := make([]segment.Id, 0, len(byAnchor))
	for id := range byAnchor {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
