package chat

import (
	"regexp"
	"strings"
	"time"
)

// PartBreakMarker separates the bubbles of one multi-part reply.
const PartBreakMarker = "||PART_BREAK||"

const (
	MinTypingDelay     = 700 * time.Millisecond
	MaxTypingDelay     = 4000 * time.Millisecond
	TypingDelayPerRune = 40 * time.Millisecond
)

// SegmentType distinguishes plain text bubbles from image requests.
type SegmentType int

const (
	SegmentText SegmentType = iota
	SegmentImage
)

// Segment is one atomic unit of a reply after splitting: either the text of
// a single chat bubble, or the description of an image to generate.
type Segment struct {
	Type    SegmentType
	Content string
}

// The description may span lines, hence (?s).
var imagePromptRe = regexp.MustCompile(`(?s)\[IMAGE_PROMPT:\s*(.*?)\]`)

// ParseReply splits one raw backend reply into an ordered flat sequence of
// segments. Chunks are split on PartBreakMarker; empty chunks are discarded.
// Within a chunk, a single [IMAGE_PROMPT: ...] marker yields an image
// segment, with any non-empty text before and after it emitted as standalone
// text segments in left-to-right order.
func ParseReply(raw string) []Segment {
	var segments []Segment
	for _, chunk := range strings.Split(raw, PartBreakMarker) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		loc := imagePromptRe.FindStringSubmatchIndex(chunk)
		if loc == nil {
			segments = append(segments, Segment{Type: SegmentText, Content: chunk})
			continue
		}

		desc := strings.TrimSpace(chunk[loc[2]:loc[3]])
		if desc == "" {
			// A marker with no description is not an image request.
			segments = append(segments, Segment{Type: SegmentText, Content: chunk})
			continue
		}

		if before := strings.TrimSpace(chunk[:loc[0]]); before != "" {
			segments = append(segments, Segment{Type: SegmentText, Content: before})
		}
		segments = append(segments, Segment{Type: SegmentImage, Content: desc})
		if after := strings.TrimSpace(chunk[loc[1]:]); after != "" {
			segments = append(segments, Segment{Type: SegmentText, Content: after})
		}
	}
	return segments
}

// TypingDelay returns the reveal delay for a text segment of n runes:
// proportional to length, clamped to [MinTypingDelay, MaxTypingDelay].
func TypingDelay(n int) time.Duration {
	d := time.Duration(n) * TypingDelayPerRune
	if d < MinTypingDelay {
		return MinTypingDelay
	}
	if d > MaxTypingDelay {
		return MaxTypingDelay
	}
	return d
}
