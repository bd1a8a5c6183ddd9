package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/hako/durafmt"

	"github.com/caffeinepub/naamjap-voice/internal/models"
	"github.com/caffeinepub/naamjap-voice/ledger"
)

type summary struct {
	streak       models.Streak
	totalTime    time.Duration
	sessions     int
	repetitions  int
	todayTotal   int
	phrasesCount int
}

func summarize(led *ledger.Ledger, now time.Time) summary {
	var s summary

	phrases := make(map[string]struct{})

	for _, sess := range led.Sessions() {
		s.sessions++
		s.repetitions += sess.Count
		s.totalTime += sess.Duration

		phrases[sess.Phrase] = struct{}{}
	}

	s.phrasesCount = len(phrases)
	s.todayTotal = led.TodayTotal(now)
	s.streak = Streak(led.DailyTotals(), now)

	return s
}

// renderSummary produces the plain-text summary block. It is deliberately
// free of styling so the output stays stable across terminals.
func renderSummary(s summary) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Repetitions: %d\n", s.repetitions)
	fmt.Fprintf(&builder, "Sessions completed: %d\n", s.sessions)
	fmt.Fprintf(&builder, "Phrases practised: %d\n", s.phrasesCount)

	//nolint:gomnd // limit to first 2 units
	fmt.Fprintf(
		&builder,
		"Time logged: %s\n",
		durafmt.Parse(s.totalTime).LimitFirstN(2),
	)

	fmt.Fprintf(&builder, "Today: %d\n", s.todayTotal)

	if s.streak.LastActiveDate == "" {
		fmt.Fprintf(&builder, "Current streak: 0 days\n")
	} else {
		fmt.Fprintf(
			&builder,
			"Current streak: %d days (last active %s)\n",
			s.streak.CurrentLength,
			s.streak.LastActiveDate,
		)
	}

	return builder.String()
}
