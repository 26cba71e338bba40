package identity

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain", raw: "bob", want: "bob"},
		{name: "trims whitespace", raw: "  Bob  ", want: "bob"},
		{name: "lowercases", raw: "BOB", want: "bob"},
		{name: "email", raw: " Alice@Example.COM ", want: "alice@example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   \t ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Normalize(%q) expected error, got %q", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{" Bob ", "ALICE@EXAMPLE.COM", "sam"}
	for _, raw := range inputs {
		once, err := Normalize(raw)
		if err != nil {
			t.Fatalf("Normalize(%q) error: %v", raw, err)
		}
		twice, err := Normalize(once)
		if err != nil {
			t.Fatalf("Normalize(Normalize(%q)) error: %v", raw, err)
		}
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}

func TestNormalizeCollision(t *testing.T) {
	a, _ := Normalize(" Bob ")
	b, _ := Normalize("bob")
	if a != b {
		t.Errorf("expected %q and %q to collide, got %q / %q", " Bob ", "bob", a, b)
	}
}
