package textfilter

import "testing"

func TestScrub(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "I don't understand... Why are you asking me this again?",
			expected: "I don't understand... Why are you asking me this again?",
		},
		{
			name:     "stage direction removed",
			input:    "*sobs quietly* Please... don't hurt me.",
			expected: "Please... don't hurt me.",
		},
		{
			name:     "inline stage direction removed",
			input:    "Okay... *looks around the room* I see a panel.",
			expected: "Okay... I see a panel.",
		},
		{
			name:     "residual part break removed",
			input:    "I'm scared.||PART_BREAK||",
			expected: "I'm scared.",
		},
		{
			name:     "unterminated image prompt removed",
			input:    "Here... [IMAGE_PROMPT: a dark corner of",
			expected: "Here...",
		},
		{
			name:     "complete image prompt removed",
			input:    "See? [IMAGE_PROMPT: the keypad] That's it.",
			expected: "See? That's it.",
		},
		{
			name:     "collapses runs of blank lines",
			input:    "First.\n\n\n\nSecond.",
			expected: "First.\n\nSecond.",
		},
		{
			name:     "emphasis pairs spanning lines survive",
			input:    "It had 'Gallery Access' written *on\nthe page",
			expected: "It had 'Gallery Access' written *on\nthe page",
		},
		{
			name:     "only a stage direction yields empty",
			input:    "*cries*",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scrub(tt.input); got != tt.expected {
				t.Errorf("Scrub(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestHasStageDirections(t *testing.T) {
	if !HasStageDirections("*whispers* hello") {
		t.Error("expected stage direction to be detected")
	}
	if HasStageDirections("just a plain message") {
		t.Error("plain text should not be flagged")
	}
}
