// Package counter turns finalized transcript segments into an exact,
// non-duplicated repetition count for a single practice session.
package counter

import (
	"strings"

	"github.com/caffeinepub/naamjap-voice/internal/phrase"
)

// Counter accumulates phrase repetitions from a transcript stream. It is
// scoped to one practice session and must be Reset before the next one so
// the duplicate-segment guard does not suppress the new session's first
// segment.
type Counter struct {
	lastProcessedSegment string
	lastMatch            string
	count                int
}

// Count returns the running repetition total.
func (c *Counter) Count() int {
	return c.count
}

// LastMatch describes the most recent counting event for UI feedback.
func (c *Counter) LastMatch() string {
	return c.lastMatch
}

// ProcessSegment counts non-overlapping occurrences of target inside a
// finalized transcript segment and returns the delta added to the total.
// A segment whose normalized form equals the previously processed one is
// ignored, which guards against the transcript source re-delivering the
// same finalized segment. An empty target disables counting and returns 0.
func (c *Counter) ProcessSegment(rawSegment, target string) int {
	normalized := phrase.Normalize(rawSegment)

	if normalized == c.lastProcessedSegment {
		return 0
	}

	c.lastProcessedSegment = normalized

	normalizedTarget := phrase.Normalize(target)
	if normalizedTarget == "" {
		return 0
	}

	var occurrences int

	searchIndex := 0

	for searchIndex <= len(normalized)-len(normalizedTarget) {
		found := strings.Index(normalized[searchIndex:], normalizedTarget)
		if found == -1 {
			break
		}

		occurrences++
		// advance past the whole match so occurrences never overlap
		searchIndex += found + len(normalizedTarget)
	}

	if occurrences > 0 {
		c.count += occurrences
		c.lastMatch = rawSegment
	}

	return occurrences
}

// ManualIncrement adds exactly one repetition regardless of transcript
// state. It is the explicit user override path and is independent of
// normalization.
func (c *Counter) ManualIncrement() {
	c.count++
	c.lastMatch = "Manual increment"
}

// Reset zeroes the counter for a new practice session.
func (c *Counter) Reset() {
	c.count = 0
	c.lastMatch = ""
	c.lastProcessedSegment = ""
}
