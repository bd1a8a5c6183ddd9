package stats

import (
	"fmt"
	"time"

	"github.com/caffeinepub/naamjap-voice/internal/models"
	"github.com/caffeinepub/naamjap-voice/internal/timeutil"
)

// Bucket is a fixed time span with an aggregated repetition count, used for
// charting.
type Bucket struct {
	Label string
	Count int
}

func sumRange(totals []models.DailyTotal, from, to string) int {
	var sum int

	for i := range totals {
		if totals[i].Date >= from && totals[i].Date <= to {
			sum += totals[i].Count
		}
	}

	return sum
}

// BucketDaily returns one bucket per calendar day for a trailing window of
// windowDays ending on now's day, oldest first. Buckets are labeled with
// the weekday abbreviation, and days without data report 0.
func BucketDaily(
	totals []models.DailyTotal,
	windowDays int,
	now time.Time,
) []Bucket {
	buckets := make([]Bucket, 0, windowDays)

	for i := windowDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		day := timeutil.Day(date)

		buckets = append(buckets, Bucket{
			Label: date.Format("Mon"),
			Count: sumRange(totals, day, day),
		})
	}

	return buckets
}

// BucketWeekly returns one bucket per Sunday-aligned 7-day span for a
// trailing window of windowWeeks ending in the current week, oldest first.
// Buckets are labeled W1..Wn with W1 the oldest.
func BucketWeekly(
	totals []models.DailyTotal,
	windowWeeks int,
	now time.Time,
) []Bucket {
	buckets := make([]Bucket, 0, windowWeeks)

	for i := windowWeeks - 1; i >= 0; i-- {
		weekStart := now.AddDate(0, 0, -(int(now.Weekday()) + i*7))
		weekEnd := weekStart.AddDate(0, 0, 6)

		buckets = append(buckets, Bucket{
			Label: fmt.Sprintf("W%d", windowWeeks-i),
			Count: sumRange(
				totals,
				timeutil.Day(weekStart),
				timeutil.Day(weekEnd),
			),
		})
	}

	return buckets
}

// BucketMonthly returns one bucket per calendar month for a trailing window
// of windowMonths ending in the current month, oldest first, labeled with
// the month abbreviation.
func BucketMonthly(
	totals []models.DailyTotal,
	windowMonths int,
	now time.Time,
) []Bucket {
	buckets := make([]Bucket, 0, windowMonths)

	for i := windowMonths - 1; i >= 0; i-- {
		month := time.Date(
			now.Year(),
			now.Month()-time.Month(i),
			1,
			0,
			0,
			0,
			0,
			now.Location(),
		)

		first := timeutil.Day(month)
		last := timeutil.Day(month.AddDate(0, 1, -1))

		buckets = append(buckets, Bucket{
			Label: month.Format("Jan"),
			Count: sumRange(totals, first, last),
		})
	}

	return buckets
}

// Streak walks backwards from today while every day has recorded activity
// and reports the length of the unbroken run. A day with no activity yet
// breaks the run immediately, so the streak reads 0 the moment a new day
// begins until the user practices again; LastActiveDate still points at the
// most recent active day either way.
func Streak(totals []models.DailyTotal, today time.Time) models.Streak {
	active := make(map[string]struct{})

	var last string

	for i := range totals {
		if totals[i].Count <= 0 {
			continue
		}

		active[totals[i].Date] = struct{}{}

		if totals[i].Date > last {
			last = totals[i].Date
		}
	}

	var streak models.Streak

	streak.LastActiveDate = last

	for i := 0; ; i++ {
		day := timeutil.Day(today.AddDate(0, 0, -i))

		if _, ok := active[day]; !ok {
			break
		}

		streak.CurrentLength++
	}

	return streak
}
