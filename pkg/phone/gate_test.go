package phone

import "testing"

func TestGateAttempt(t *testing.T) {
	g := NewGate("735106")

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"correct secret", "735106", true},
		{"wrong secret", "000000", false},
		{"empty input", "", false},
		{"prefix only", "7351", false},
		{"trailing space rejected", "735106 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Attempt(tt.input); got != tt.expected {
				t.Errorf("Attempt(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGateIsPure(t *testing.T) {
	g := NewGate("LILITH_V")

	// Repeated failures never change the outcome of a later correct attempt.
	for i := 0; i < 5; i++ {
		if g.Attempt("wrong") {
			t.Fatal("wrong secret should never pass")
		}
	}
	if !g.Attempt("LILITH_V") {
		t.Error("correct secret should pass after any number of failures")
	}
}

func TestGateEmptySecretNeverOpens(t *testing.T) {
	g := NewGate("")
	if g.Attempt("") {
		t.Error("a gate with no secret must not open, even on empty input")
	}
}
