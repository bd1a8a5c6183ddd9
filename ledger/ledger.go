// Package ledger maintains the canonical, append-only log of completed
// practice sessions and the per-day, per-phrase totals derived from it.
package ledger

import (
	"sort"
	"time"

	"github.com/caffeinepub/naamjap-voice/internal/models"
	"github.com/caffeinepub/naamjap-voice/internal/timeutil"
)

type bucket struct {
	date   string
	phrase string
}

// Ledger is the sole writer of the session collection. Daily totals are a
// cached view: they are updated in place for the common single-append case
// and rebuilt from scratch whenever the collection changes any other way.
// Callers must serialize mutations; Append and Merge are not designed to
// run concurrently with each other.
type Ledger struct {
	totals   map[bucket]int
	sessions []models.Session
}

// New builds a ledger from previously persisted sessions. Totals are always
// recomputed from the sessions rather than trusted from storage.
func New(sessions []models.Session) *Ledger {
	l := &Ledger{
		sessions: make([]models.Session, len(sessions)),
	}

	copy(l.sessions, sessions)

	sort.SliceStable(l.sessions, func(i, j int) bool {
		return l.sessions[i].StartTime.Before(l.sessions[j].StartTime)
	})

	l.totals = rebuildTotals(l.sessions)

	return l
}

// Append adds a completed session and updates its daily bucket in place.
// The incremental update must produce results identical to a full rebuild.
func (l *Ledger) Append(sess models.Session) {
	l.sessions = append(l.sessions, sess)

	l.totals[bucket{date: sess.Day(), phrase: sess.Phrase}] += sess.Count
}

// Merge reconciles a remote session set into the ledger. Remote sessions
// whose identity key already exists locally are dropped, the union is
// sorted by start time, and the daily totals are rebuilt from scratch so
// that stale or double-counted buckets cannot survive. It returns the
// number of sessions adopted from the remote set, and is safe to call
// repeatedly with the same remote snapshot.
func (l *Ledger) Merge(remote []models.Session) int {
	merged := Merge(l.sessions, remote)

	added := len(merged) - len(l.sessions)

	l.sessions = merged
	l.totals = rebuildTotals(merged)

	return added
}

// Sessions returns a copy of the session log, sorted by start time.
func (l *Ledger) Sessions() []models.Session {
	out := make([]models.Session, len(l.sessions))
	copy(out, l.sessions)

	return out
}

// Len reports the number of sessions in the ledger.
func (l *Ledger) Len() int {
	return len(l.sessions)
}

// DailyTotals returns the derived daily totals, ordered by date then phrase.
func (l *Ledger) DailyTotals() []models.DailyTotal {
	out := make([]models.DailyTotal, 0, len(l.totals))

	for k, v := range l.totals {
		out = append(out, models.DailyTotal{
			Date:   k.date,
			Phrase: k.phrase,
			Count:  v,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}

		return out[i].Phrase < out[j].Phrase
	})

	return out
}

// TodayTotal sums the counts recorded on ref's calendar day across all
// phrases. The day boundary is the local wall clock of ref, not UTC.
func (l *Ledger) TodayTotal(ref time.Time) int {
	day := timeutil.Day(ref)

	var total int

	for k, v := range l.totals {
		if k.date == day {
			total += v
		}
	}

	return total
}

func rebuildTotals(sessions []models.Session) map[bucket]int {
	totals := make(map[bucket]int)

	for i := range sessions {
		sess := sessions[i]

		totals[bucket{date: sess.Day(), phrase: sess.Phrase}] += sess.Count
	}

	return totals
}
