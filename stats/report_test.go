package stats

import (
	"testing"
	"time"

	"github.com/caffeinepub/naamjap-voice/internal/models"
	"github.com/caffeinepub/naamjap-voice/internal/testutil"
	"github.com/caffeinepub/naamjap-voice/ledger"
)

type reportCase struct {
	name       string
	goldenFile string
	sessions   []models.Session
	now        time.Time
}

func (c *reportCase) Output() ([]byte, string) {
	led := ledger.New(c.sessions)

	return []byte(renderSummary(summarize(led, c.now))), c.goldenFile
}

func TestRenderSummary(t *testing.T) {
	loc := time.UTC

	cases := []*reportCase{
		{
			name:       "populated log",
			goldenFile: "summary",
			sessions: []models.Session{
				{
					StartTime: time.Date(2024, 5, 1, 6, 30, 0, 0, loc),
					Phrase:    "Radhe Radhe",
					Count:     108,
					Duration:  30 * time.Minute,
				},
				{
					StartTime: time.Date(2024, 5, 2, 6, 30, 0, 0, loc),
					Phrase:    "Radhe Radhe",
					Count:     54,
					Duration:  15 * time.Minute,
				},
				{
					StartTime: time.Date(2024, 5, 3, 7, 0, 0, 0, loc),
					Phrase:    "Om Namah Shivaya",
					Count:     27,
					Duration:  5*time.Minute + 30*time.Second,
				},
			},
			now: time.Date(2024, 5, 3, 21, 0, 0, 0, loc),
		},
		{
			name:       "empty log",
			goldenFile: "summary_empty",
			sessions:   nil,
			now:        time.Date(2024, 5, 3, 21, 0, 0, 0, loc),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			testutil.CompareGoldenFile(t, tc)
		})
	}
}
