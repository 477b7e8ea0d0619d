package token

import "testing"

func TestRangeLenAndEmpty(t *testing.T) {
	r := Range{Start: 3, End: 7}
	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4", r.Len())
	}
	if r.Empty() {
		t.Error("non-zero-width range reported as empty")
	}
	if (Range{Start: 5, End: 5}).Empty() != true {
		t.Error("zero-width range should report empty")
	}
}

func TestRangeString(t *testing.T) {
	if got := (Range{Start: 1, End: 9}).String(); got != "1..9" {
		t.Errorf("String() = %q, want %q", got, "1..9")
	}
}

func TestTokenIsCode(t *testing.T) {
	word := Token{Kind: Word}
	if !word.IsCode() {
		t.Error("Word token should count as code")
	}
	ws := Token{Kind: Whitespace}
	if ws.IsCode() {
		t.Error("Whitespace token should not count as code")
	}
}

func TestKindSet(t *testing.T) {
	s := NewKindSet(Keyword, FunctionName)
	if !s.Has(Keyword) || !s.Has(FunctionName) {
		t.Error("expected set to contain both kinds")
	}
	if s.Has(Comma) {
		t.Error("set should not contain Comma")
	}
}

func TestKindByName(t *testing.T) {
	k, ok := KindByName("select_statement")
	if !ok || k != SelectStatement {
		t.Errorf("KindByName(select_statement) = %v, %v; want SelectStatement, true", k, ok)
	}
	if _, ok := KindByName("not_a_real_kind"); ok {
		t.Error("expected lookup of an unknown name to fail")
	}
}

func TestKindStringRoundTrips(t *testing.T) {
	for name := range byName {
		k, ok := KindByName(name)
		if !ok {
			t.Fatalf("KindByName(%q) failed", name)
		}
		if k.String() != name {
			t.Errorf("String() for %q round-tripped to %q", name, k.String())
		}
	}
}

func TestIsMeta(t *testing.T) {
	if !Indent.IsMeta() || !Dedent.IsMeta() || !Implicit.IsMeta() {
		t.Error("Indent/Dedent/Implicit should be meta kinds")
	}
	if Word.IsMeta() {
		t.Error("Word should not be a meta kind")
	}
}
