package textfilter

import (
	"regexp"
	"strings"
)

// The persona prompt forbids third-person narration, but models still leak
// *asterisk-delimited stage directions* and occasionally echo the reply
// protocol markers. The scrubber removes both before text reaches the
// transcript.

var (
	// *sobs quietly*, *looks around the room*: single line, no nesting.
	stageDirectionRe = regexp.MustCompile(`\*[^*\n]+\*`)

	// Residual protocol markers that survived segmentation, e.g. an
	// unterminated image prompt at the end of a truncated reply.
	residualMarkerRe = regexp.MustCompile(`(?s)\[IMAGE_PROMPT:[^\]]*\]?`)
	partBreakRe      = regexp.MustCompile(`\|\|PART_BREAK\|\|`)

	multiSpaceRe = regexp.MustCompile(`[ \t]{2,}`)
	multiBlankRe = regexp.MustCompile(`\n{3,}`)
)

// Scrub removes stage directions and residual protocol markers from a text
// segment and normalizes the whitespace left behind.
func Scrub(text string) string {
	out := stageDirectionRe.ReplaceAllString(text, "")
	out = residualMarkerRe.ReplaceAllString(out, "")
	out = partBreakRe.ReplaceAllString(out, "")
	out = multiSpaceRe.ReplaceAllString(out, " ")
	out = multiBlankRe.ReplaceAllString(out, "\n\n")

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// HasStageDirections reports whether the text contains asterisk-delimited
// narration the scrubber would remove.
func HasStageDirections(text string) bool {
	return stageDirectionRe.MatchString(text)
}
