package lint

import "testing"

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErrors bool
	}{
		{
			name:       "valid query",
			input:      "SELECT * FROM users;",
			wantErrors: false,
		},
		{
			name:       "invalid query",
			input:      "SELEC * FROM users;",
			wantErrors: true,
		},
		{
			name:       "typo in keyword",
			input:      "SELECT * FORM users;",
			wantErrors: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := Check(tt.input)
			if errors.HasErrors() != tt.wantErrors {
				t.Errorf("HasErrors() = %v, want %v", errors.HasErrors(), tt.wantErrors)
			}
		})
	}
}

func TestCheckMultiple(t *testing.T) {
	input := `
		SELECT * FROM users;
		SELEC * FROM invalid;
		INSERT INTO users (id) VALUES (1);
	`

	errors := CheckMultiple(input)

	if !errors.HasErrors() {
		t.Error("expected errors but got none")
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("SELECT * FROM users;") {
		t.Error("expected valid query to report valid")
	}
	if IsValid("SELEC * FROM users;") {
		t.Error("expected invalid query to report invalid")
	}
}

func TestAnalyzeFlagsBuiltinCasingViolation(t *testing.T) {
	result := Analyze("SELECT tointervalminute(1) FROM users;")

	if !result.IsValid() {
		t.Fatalf("expected no parse errors, got %v", result.Errors)
	}
	if len(result.Violations) != 1 {
		t.Fatalf("got %d violations, want 1", len(result.Violations))
	}
	if len(result.Fixes) != 1 {
		t.Fatalf("got %d fixes, want 1", len(result.Fixes))
	}
}

func TestFixAppliesBuiltinCasing(t *testing.T) {
	fixed, errs := Fix("SELECT tointervalminute(1) FROM users;")
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := "SELECT toIntervalMinute(1) FROM users;"
	if fixed != want {
		t.Fatalf("fixed = %q, want %q", fixed, want)
	}
}
