package models

import (
	"fmt"
	"time"

	"github.com/caffeinepub/naamjap-voice/internal/timeutil"
)

// Session is one completed practice interval. It is immutable once created:
// the start time is chosen by the producing client when the session begins,
// and there is no server-assigned id.
type Session struct {
	StartTime time.Time     `json:"start_time"`
	Phrase    string        `json:"phrase"`
	Count     int           `json:"count"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// Key returns the identity used to deduplicate sessions across local and
// remote logs. Two sessions with the same phrase, count, and start
// nanosecond collapse into one on merge.
func (s Session) Key() string {
	return fmt.Sprintf("%d|%s|%d", s.StartTime.UnixNano(), s.Phrase, s.Count)
}

// Day returns the calendar day the session belongs to.
func (s Session) Day() string {
	return timeutil.Day(s.StartTime)
}

// DailyTotal is the repetition count for one phrase on one calendar day.
// It is derived from sessions and cached for read performance; it must
// always be recomputable from the session log alone.
type DailyTotal struct {
	Date   string `json:"date"`
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// Streak reports the current run of consecutive active days ending today,
// and the most recent active day irrespective of whether the run reached it.
type Streak struct {
	CurrentLength  int    `json:"current_length"`
	LastActiveDate string `json:"last_active_date,omitempty"`
}
