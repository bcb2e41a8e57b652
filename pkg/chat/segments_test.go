package chat

import (
	"strings"
	"testing"
	"time"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []Segment
	}{
		{
			name: "single text chunk",
			raw:  "I'm here... please don't be angry.",
			expected: []Segment{
				{Type: SegmentText, Content: "I'm here... please don't be angry."},
			},
		},
		{
			name: "two text chunks",
			raw:  "Wait...||PART_BREAK||Who is this?",
			expected: []Segment{
				{Type: SegmentText, Content: "Wait..."},
				{Type: SegmentText, Content: "Who is this?"},
			},
		},
		{
			name:     "empty and whitespace chunks are discarded",
			raw:      "  ||PART_BREAK||\n\t||PART_BREAK||ok",
			expected: []Segment{{Type: SegmentText, Content: "ok"}},
		},
		{
			name: "image marker alone",
			raw:  "[IMAGE_PROMPT: a dim room with a single mattress]",
			expected: []Segment{
				{Type: SegmentImage, Content: "a dim room with a single mattress"},
			},
		},
		{
			name: "text before and after image marker",
			raw:  "Look... [IMAGE_PROMPT: a low metal panel] ...do you see it?",
			expected: []Segment{
				{Type: SegmentText, Content: "Look..."},
				{Type: SegmentImage, Content: "a low metal panel"},
				{Type: SegmentText, Content: "...do you see it?"},
			},
		},
		{
			name: "text chunk then image chunk",
			raw:  "Hi||PART_BREAK||[IMAGE_PROMPT: a dim room]",
			expected: []Segment{
				{Type: SegmentText, Content: "Hi"},
				{Type: SegmentImage, Content: "a dim room"},
			},
		},
		{
			name: "multiline image description",
			raw:  "[IMAGE_PROMPT: a cramped room,\nno windows,\na keypad near the floor]",
			expected: []Segment{
				{Type: SegmentImage, Content: "a cramped room,\nno windows,\na keypad near the floor"},
			},
		},
		{
			name:     "marker with empty description is plain text",
			raw:      "[IMAGE_PROMPT: ]",
			expected: []Segment{{Type: SegmentText, Content: "[IMAGE_PROMPT: ]"}},
		},
		{
			name:     "empty reply",
			raw:      "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReply(tt.raw)
			if len(got) != len(tt.expected) {
				t.Fatalf("ParseReply(%q) returned %d segments; want %d\n got: %#v",
					tt.raw, len(got), len(tt.expected), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("segment %d = %#v; want %#v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseReply_TextOnlyNeverYieldsImages(t *testing.T) {
	raw := strings.Repeat("just words||PART_BREAK||", 5)
	for i, seg := range ParseReply(raw) {
		if seg.Type != SegmentText {
			t.Errorf("segment %d has type %v; want SegmentText", i, seg.Type)
		}
	}
}

func TestTypingDelay(t *testing.T) {
	tests := []struct {
		length   int
		expected time.Duration
	}{
		{0, 700 * time.Millisecond},
		{5, 700 * time.Millisecond},
		{17, 700 * time.Millisecond},
		{18, 720 * time.Millisecond},
		{50, 2000 * time.Millisecond},
		{100, 4000 * time.Millisecond},
		{200, 4000 * time.Millisecond},
		{10000, 4000 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := TypingDelay(tt.length); got != tt.expected {
			t.Errorf("TypingDelay(%d) = %v; want %v", tt.length, got, tt.expected)
		}
	}
}

func TestTypingDelay_Monotonic(t *testing.T) {
	prev := time.Duration(0)
	for n := 0; n <= 300; n++ {
		d := TypingDelay(n)
		if d < prev {
			t.Fatalf("TypingDelay(%d) = %v is less than TypingDelay(%d) = %v", n, d, n-1, prev)
		}
		if d < MinTypingDelay || d > MaxTypingDelay {
			t.Fatalf("TypingDelay(%d) = %v outside [%v, %v]", n, d, MinTypingDelay, MaxTypingDelay)
		}
		prev = d
	}
}
