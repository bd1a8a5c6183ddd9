package counter_test

import (
	"testing"

	"github.com/caffeinepub/naamjap-voice/internal/counter"
)

func TestProcessSegment(t *testing.T) {
	cases := []struct {
		name      string
		segment   string
		target    string
		wantDelta int
	}{
		{
			name:      "single occurrence",
			segment:   "om namah shivaya",
			target:    "Om Namah Shivaya",
			wantDelta: 1,
		},
		{
			name:      "two occurrences",
			segment:   "Om Namah Shivaya Om Namah Shivaya",
			target:    "Om Namah Shivaya",
			wantDelta: 2,
		},
		{
			name:      "non-overlapping scan",
			segment:   "aaaa",
			target:    "aa",
			wantDelta: 2,
		},
		{
			name:      "punctuation in transcript",
			segment:   "om, namah-shivaya!",
			target:    "om namah shivaya",
			wantDelta: 1,
		},
		{
			name:      "no match",
			segment:   "hare krishna",
			target:    "om namah shivaya",
			wantDelta: 0,
		},
		{
			name:      "empty target disables counting",
			segment:   "om namah shivaya",
			target:    "",
			wantDelta: 0,
		},
		{
			name:      "target longer than segment",
			segment:   "om",
			target:    "om namah shivaya",
			wantDelta: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c counter.Counter

			got := c.ProcessSegment(tc.segment, tc.target)
			if got != tc.wantDelta {
				t.Fatalf(
					"ProcessSegment(%q, %q) = %d, want %d",
					tc.segment,
					tc.target,
					got,
					tc.wantDelta,
				)
			}

			if c.Count() != tc.wantDelta {
				t.Fatalf("Count() = %d, want %d", c.Count(), tc.wantDelta)
			}
		})
	}
}

func TestProcessSegmentDuplicateDelivery(t *testing.T) {
	var c counter.Counter

	target := "om namah shivaya"

	if got := c.ProcessSegment("om namah shivaya", target); got != 1 {
		t.Fatalf("first delivery: got delta %d, want 1", got)
	}

	// the transcript source may re-deliver the same finalized segment;
	// the second delivery must not count
	if got := c.ProcessSegment("om namah shivaya", target); got != 0 {
		t.Fatalf("duplicate delivery: got delta %d, want 0", got)
	}

	if c.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", c.Count())
	}

	// a different segment counts again
	if got := c.ProcessSegment("om namah shivaya om namah shivaya", target); got != 2 {
		t.Fatalf("new segment: got delta %d, want 2", got)
	}

	if c.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", c.Count())
	}
}

func TestDuplicateGuardAppliesEvenWithoutMatch(t *testing.T) {
	var c counter.Counter

	// the guard records the segment before the target is considered, so a
	// re-delivered non-matching segment is still suppressed
	if got := c.ProcessSegment("hare krishna", "om namah shivaya"); got != 0 {
		t.Fatalf("got delta %d, want 0", got)
	}

	if got := c.ProcessSegment("hare krishna", "hare krishna"); got != 0 {
		t.Fatalf("re-delivered segment counted: got delta %d, want 0", got)
	}
}

func TestManualIncrement(t *testing.T) {
	var c counter.Counter

	c.ManualIncrement()
	c.ManualIncrement()

	if c.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", c.Count())
	}

	if c.LastMatch() != "Manual increment" {
		t.Fatalf("LastMatch() = %q", c.LastMatch())
	}
}

func TestReset(t *testing.T) {
	var c counter.Counter

	target := "om namah shivaya"

	c.ProcessSegment("om namah shivaya", target)
	c.Reset()

	if c.Count() != 0 {
		t.Fatalf("Count() after reset = %d, want 0", c.Count())
	}

	// resetting clears the duplicate guard so the first segment of a new
	// session is not suppressed
	if got := c.ProcessSegment("om namah shivaya", target); got != 1 {
		t.Fatalf("first segment after reset: got delta %d, want 1", got)
	}
}
