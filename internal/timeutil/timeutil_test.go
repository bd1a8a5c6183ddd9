package timeutil_test

import (
	"testing"
	"time"

	"github.com/caffeinepub/naamjap-voice/internal/timeutil"
)

func TestDayUsesOwnLocation(t *testing.T) {
	// 23:30 on May 1 in UTC+5:30 must report May 1, not the UTC day
	ist := time.FixedZone("IST", 5*3600+1800)

	late := time.Date(2024, 5, 1, 23, 30, 0, 0, ist)

	if got := timeutil.Day(late); got != "2024-05-01" {
		t.Fatalf("Day = %q, want 2024-05-01", got)
	}
}

func TestRoundToStartAndEnd(t *testing.T) {
	mid := time.Date(2024, 5, 1, 13, 45, 12, 999, time.UTC)

	start := timeutil.RoundToStart(mid)
	if !start.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("RoundToStart = %v", start)
	}

	end := timeutil.RoundToEnd(mid)
	if !end.Equal(time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("RoundToEnd = %v", end)
	}
}

func TestRangeCoversEveryPeriod(t *testing.T) {
	for _, p := range timeutil.PeriodCollection {
		if _, ok := timeutil.Range[p]; !ok {
			t.Errorf("period %q has no range entry", p)
		}
	}
}
