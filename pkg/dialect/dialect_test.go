package dialect

import "testing"

func TestPatchAndQueryKeywordSet(t *testing.T) {
	d := New("test")
	d.PatchKeywordSet("reserved_keywords", []string{"select", "FROM"})

	if !d.IsKeyword("reserved_keywords", "select") {
		t.Error("expected lowercase lookup to hit a keyword stored as upper")
	}
	if !d.IsKeyword("reserved_keywords", "from") {
		t.Error("expected case-insensitive match for FROM")
	}
	if d.IsKeyword("reserved_keywords", "users") {
		t.Error("users was never added as a keyword")
	}
}

func TestAddAndRemoveKeywords(t *testing.T) {
	d := New("test")
	d.PatchKeywordSet("unreserved_keywords", []string{"filtering"})
	d.AddKeywords("unreserved_keywords", []string{"allow"})

	if !d.IsKeyword("unreserved_keywords", "allow") || !d.IsKeyword("unreserved_keywords", "filtering") {
		t.Error("expected both the original and added keyword to be present")
	}

	d.RemoveKeywords("unreserved_keywords", []string{"filtering"})
	if d.IsKeyword("unreserved_keywords", "filtering") {
		t.Error("expected filtering to be removed")
	}
	if !d.IsKeyword("unreserved_keywords", "allow") {
		t.Error("removing one word shouldn't remove others")
	}
}

func TestCopyFromIsolatesChildFromParent(t *testing.T) {
	parent := New("parent")
	parent.PatchKeywordSet("reserved_keywords", []string{"select"})
	parent.Freeze()

	child := New("child")
	child.CopyFrom(parent)
	child.AddKeywords("reserved_keywords", []string{"insert"})

	if parent.IsKeyword("reserved_keywords", "insert") {
		t.Error("patching the child keyword set must not affect the frozen parent")
	}
	if !child.IsKeyword("reserved_keywords", "select") {
		t.Error("child should inherit parent's keywords via CopyFrom")
	}
	if child.Parent != parent {
		t.Error("expected CopyFrom to record the parent for traceability")
	}
}

func TestPatchAfterFreezePanics(t *testing.T) {
	d := New("test")
	d.Freeze()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected PatchKeywordSet after Freeze to panic")
		}
	}()
	d.PatchKeywordSet("reserved_keywords", []string{"select"})
}

func TestCaseSensitive(t *testing.T) {
	d := New("test")
	if d.CaseSensitive() {
		t.Error("CaseFold defaults true, so CaseSensitive() should default false")
	}
	d.CaseFold = false
	if !d.CaseSensitive() {
		t.Error("expected CaseSensitive() to track !CaseFold")
	}
}

func TestGrammarLookup(t *testing.T) {
	d := New("test")
	if _, ok := d.Grammar("FileSegment"); ok {
		t.Error("expected no grammar registered yet")
	}
	if _, ok := d.RootGrammar(); ok {
		t.Error("RootGrammar should report absent until FileSegment is patched in")
	}
}
