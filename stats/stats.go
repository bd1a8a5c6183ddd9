// Package stats reports practice statistics.
package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/caffeinepub/naamjap-voice/config"
	"github.com/caffeinepub/naamjap-voice/internal/timeutil"
	"github.com/caffeinepub/naamjap-voice/internal/ui"
	"github.com/caffeinepub/naamjap-voice/ledger"
	"github.com/caffeinepub/naamjap-voice/store"
)

var (
	opts *config.StatsConfig
	db   store.DB
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No sessions found for the specified time range"
)

const (
	defaultWeeklyWindow  = 4
	defaultMonthlyWindow = 6
	maxDailyWindow       = 31
)

func getBarChart(buckets []Bucket, title string) string {
	if len(buckets) == 0 {
		return ""
	}

	header := ui.Blue(fmt.Sprintf("\n%s breakdown (repetitions)", title))

	var bars pterm.Bars

	for _, b := range buckets {
		bars = append(bars, pterm.Bar{
			Value: b.Count,
			Label: b.Label,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// dailyWindow derives the daily chart span from the reporting period.
func dailyWindow(startTime, endTime time.Time) int {
	hours := endTime.Sub(startTime).Hours()

	days := int(hours)/timeutil.HoursInADay + 1
	if days < 1 {
		days = 1
	}

	if days > maxDailyWindow {
		days = maxDailyWindow
	}

	return days
}

// Show displays the relevant statistics for the set time period after
// making the necessary calculations.
func Show() error {
	defer db.Close()

	sessions, err := db.GetAllSessions()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	now := time.Now()

	// streaks and today's total are functions of the whole log, so the
	// ledger is built from every session regardless of the report window
	led := ledger.New(sessions)
	totals := led.DailyTotals()

	startTime := opts.StartTime
	if startTime.IsZero() {
		startTime = timeutil.RoundToStart(sessions[0].StartTime)
	}

	reportingStart := startTime.Format("January 02, 2006")
	reportingEnd := opts.EndTime.Format("January 02, 2006")
	timePeriod := "Reporting period: " + reportingStart + " - " + reportingEnd

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("%s", timePeriod)

	summary := summarize(led, now)

	output := fmt.Sprint(
		header,
		ui.Blue("Summary\n"),
		renderSummary(summary),
		getBarChart(
			BucketDaily(totals, dailyWindow(startTime, opts.EndTime), now),
			"Daily",
		),
		getBarChart(BucketWeekly(totals, defaultWeeklyWindow, now), "Weekly"),
		getBarChart(
			BucketMonthly(totals, defaultMonthlyWindow, now),
			"Monthly",
		),
	)

	fmt.Fprintln(
		opts.Stdout,
		strings.TrimSpace(output),
	)

	return nil
}

func Init(dbClient store.DB, cfg *config.StatsConfig) {
	db = dbClient
	opts = cfg
}
